package handler

import (
	"context"
	"sync"
	"time"

	"welltix/internal/model"
	apperrors "welltix/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

type EventServiceMock struct {
	mock.Mock
}

func (m *EventServiceMock) List(ctx context.Context) ([]*model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByID(ctx context.Context, id int) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TransaksiServiceMock struct {
	mock.Mock
}

func (m *TransaksiServiceMock) Create(ctx context.Context, params model.CreateTransaksiParams) (*model.Transaksi, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaksi), args.Error(1)
}

func (m *TransaksiServiceMock) ListAll(ctx context.Context) ([]*model.Transaksi, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaksi), args.Error(1)
}

func (m *TransaksiServiceMock) HistoryForUser(ctx context.Context, username string) ([]*model.Transaksi, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Transaksi), args.Error(1)
}

func (m *TransaksiServiceMock) MarkLunas(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeSessionManager is an in-memory stand-in for the redis-backed
// session store.
type fakeSessionManager struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{values: make(map[string]string)}
}

func (f *fakeSessionManager) Create(ctx context.Context, username string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New().String()
	f.values[id] = username
	return id, nil
}

func (f *fakeSessionManager) GetUsername(ctx context.Context, sessionID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	username, ok := f.values[sessionID]
	if !ok {
		return "", apperrors.ErrSessionNotFound
	}
	return username, nil
}

func (f *fakeSessionManager) Destroy(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, sessionID)
	return nil
}

func (f *fakeSessionManager) TTL() time.Duration {
	return time.Minute
}

package service

import (
	"context"

	"welltix/internal/model"
	"welltix/internal/repository"
)

type TransaksiService interface {
	// Create inserts a transaksi with status pending. Event stock is
	// NOT decremented here; reconciliation is manual by the admin.
	Create(ctx context.Context, params model.CreateTransaksiParams) (*model.Transaksi, error)
	ListAll(ctx context.Context) ([]*model.Transaksi, error)
	HistoryForUser(ctx context.Context, username string) ([]*model.Transaksi, error)
	// MarkLunas flips the payment status to lunas. Safe to repeat on a
	// row that is already lunas.
	MarkLunas(ctx context.Context, id int) error
}

type TransaksiServiceImpl struct {
	repo     repository.TransaksiRepository
	userRepo repository.UserRepository
}

func NewTransaksiService(repo repository.TransaksiRepository, userRepo repository.UserRepository) TransaksiService {
	return &TransaksiServiceImpl{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *TransaksiServiceImpl) Create(ctx context.Context, params model.CreateTransaksiParams) (*model.Transaksi, error) {
	return s.repo.Create(ctx, params)
}

func (s *TransaksiServiceImpl) ListAll(ctx context.Context) ([]*model.Transaksi, error) {
	return s.repo.ListAll(ctx)
}

func (s *TransaksiServiceImpl) HistoryForUser(ctx context.Context, username string) ([]*model.Transaksi, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUserID(ctx, user.ID)
}

func (s *TransaksiServiceImpl) MarkLunas(ctx context.Context, id int) error {
	return s.repo.UpdateStatus(ctx, id, model.TransaksiStatusLunas)
}

package repository

import (
	"context"
	"testing"
	"time"

	"welltix/internal/model"
	apperrors "welltix/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepositoryCreateAndFind(t *testing.T) {
	setupTestWithTruncate(t)
	repo := NewEventRepository(testDB)
	ctx := context.Background()

	poster := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02, 0x03}
	created := createTestEvent(t, "Konser Amal", poster)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Konser Amal", found.NamaEvent)
	assert.Equal(t, poster, found.Poster)
	assert.Equal(t, "Jakarta", found.Lokasi)
	assert.Equal(t, 150000, found.Harga)
	assert.Equal(t, "2026-10-01", found.TglFormatted())
	assert.Equal(t, 100, found.Stok)
}

func TestEventRepositoryFindMissing(t *testing.T) {
	setupTestWithTruncate(t)
	repo := NewEventRepository(testDB)

	_, err := repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestEventRepositoryUpdate(t *testing.T) {
	t.Run("nil poster keeps the stored bytes", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := NewEventRepository(testDB)
		ctx := context.Background()

		poster := []byte{0xff, 0xd8, 0xff, 0xe0}
		created := createTestEvent(t, "Konser Amal", poster)

		updated, err := repo.Update(ctx, created.ID, model.UpdateEventParams{
			NamaEvent: "Konser Amal 2",
			Lokasi:    "Bandung",
			Harga:     200000,
			Tgl:       time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
			Stok:      50,
			Poster:    nil,
		})
		require.NoError(t, err)
		assert.Equal(t, "Konser Amal 2", updated.NamaEvent)
		assert.Equal(t, poster, updated.Poster)
	})

	t.Run("new poster replaces the stored bytes", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := NewEventRepository(testDB)
		ctx := context.Background()

		created := createTestEvent(t, "Konser Amal", []byte{0xff, 0xd8})
		newPoster := []byte{0x89, 0x50, 0x4e, 0x47}

		updated, err := repo.Update(ctx, created.ID, model.UpdateEventParams{
			NamaEvent: created.NamaEvent,
			Lokasi:    created.Lokasi,
			Harga:     created.Harga,
			Tgl:       created.Tgl,
			Stok:      created.Stok,
			Poster:    newPoster,
		})
		require.NoError(t, err)
		assert.Equal(t, newPoster, updated.Poster)
	})

	t.Run("missing event", func(t *testing.T) {
		setupTestWithTruncate(t)
		repo := NewEventRepository(testDB)

		_, err := repo.Update(context.Background(), 999, model.UpdateEventParams{
			NamaEvent: "x",
			Tgl:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}

func TestEventRepositoryDelete(t *testing.T) {
	setupTestWithTruncate(t)
	repo := NewEventRepository(testDB)
	ctx := context.Background()

	created := createTestEvent(t, "Konser Amal", []byte{0x01})

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	// second delete affects no rows
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrEventNotFound)
}

package repository

import (
	"context"

	"welltix/internal/model"
	apperrors "welltix/pkg/app_errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransaksiRepository interface {
	Create(ctx context.Context, params model.CreateTransaksiParams) (*model.Transaksi, error)
	ListAll(ctx context.Context) ([]*model.Transaksi, error)
	ListByUserID(ctx context.Context, userID int) ([]*model.Transaksi, error)
	UpdateStatus(ctx context.Context, id int, status model.TransaksiStatus) error
}

type TransaksiRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewTransaksiRepository(pool *pgxpool.Pool) TransaksiRepository {
	return &TransaksiRepositoryImpl{
		pool: pool,
	}
}

func (r *TransaksiRepositoryImpl) Create(ctx context.Context, params model.CreateTransaksiParams) (*model.Transaksi, error) {
	query := `
		INSERT INTO transaksi (id_user, id_event, harga, jumlah, total, pembayaran, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, id_user, id_event, harga, jumlah, total, pembayaran, status
	`

	var transaksi model.Transaksi
	err := r.pool.QueryRow(ctx, query,
		params.IDUser, params.IDEvent, params.Harga, params.Jumlah, params.Total,
		params.Pembayaran, model.TransaksiStatusPending,
	).Scan(
		&transaksi.ID,
		&transaksi.IDUser,
		&transaksi.IDEvent,
		&transaksi.Harga,
		&transaksi.Jumlah,
		&transaksi.Total,
		&transaksi.Pembayaran,
		&transaksi.Status,
	)
	if err != nil {
		return nil, err
	}

	return &transaksi, nil
}

// ListAll returns every transaksi joined to its event's poster. Events
// can be deleted independently of their transaksi, so the join is left
// outer and a missing event yields an empty poster.
func (r *TransaksiRepositoryImpl) ListAll(ctx context.Context) ([]*model.Transaksi, error) {
	query := `
		SELECT t.id, t.id_user, t.id_event, t.harga, t.jumlah, t.total, t.pembayaran, t.status,
		       COALESCE(e.poster, '') AS poster
		FROM transaksi t
		LEFT JOIN event e ON t.id_event = e.id
		ORDER BY t.id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transaksis := make([]*model.Transaksi, 0)
	for rows.Next() {
		var transaksi model.Transaksi
		err := rows.Scan(
			&transaksi.ID,
			&transaksi.IDUser,
			&transaksi.IDEvent,
			&transaksi.Harga,
			&transaksi.Jumlah,
			&transaksi.Total,
			&transaksi.Pembayaran,
			&transaksi.Status,
			&transaksi.Poster,
		)
		if err != nil {
			return nil, err
		}
		transaksis = append(transaksis, &transaksi)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transaksis, nil
}

func (r *TransaksiRepositoryImpl) ListByUserID(ctx context.Context, userID int) ([]*model.Transaksi, error) {
	query := `
		SELECT t.id, t.id_user, t.id_event, t.harga, t.jumlah, t.total, t.pembayaran, t.status,
		       e.poster
		FROM transaksi t
		INNER JOIN event e ON t.id_event = e.id
		WHERE t.id_user = $1
		ORDER BY t.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transaksis := make([]*model.Transaksi, 0)
	for rows.Next() {
		var transaksi model.Transaksi
		err := rows.Scan(
			&transaksi.ID,
			&transaksi.IDUser,
			&transaksi.IDEvent,
			&transaksi.Harga,
			&transaksi.Jumlah,
			&transaksi.Total,
			&transaksi.Pembayaran,
			&transaksi.Status,
			&transaksi.Poster,
		)
		if err != nil {
			return nil, err
		}
		transaksis = append(transaksis, &transaksi)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transaksis, nil
}

// UpdateStatus sets the payment status unconditionally, so repeating
// the call on an already-lunas row still reports one affected row.
func (r *TransaksiRepositoryImpl) UpdateStatus(ctx context.Context, id int, status model.TransaksiStatus) error {
	query := `
		UPDATE transaksi
		SET status = $1
		WHERE id = $2
	`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrTransaksiNotFound
	}

	return nil
}

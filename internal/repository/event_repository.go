package repository

import (
	"context"

	"welltix/internal/model"
	apperrors "welltix/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO event (nama_event, poster, lokasi, harga, tgl, stok)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, nama_event, poster, lokasi, harga, tgl, stok
	`
	err := r.pool.QueryRow(ctx, query,
		event.NamaEvent, event.Poster, event.Lokasi, event.Harga, event.Tgl, event.Stok,
	).Scan(
		&event.ID,
		&event.NamaEvent,
		&event.Poster,
		&event.Lokasi,
		&event.Harga,
		&event.Tgl,
		&event.Stok,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT id, nama_event, poster, lokasi, harga, tgl, stok
		FROM event
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		err := rows.Scan(
			&event.ID,
			&event.NamaEvent,
			&event.Poster,
			&event.Lokasi,
			&event.Harga,
			&event.Tgl,
			&event.Stok,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `
		SELECT id, nama_event, poster, lokasi, harga, tgl, stok
		FROM event
		WHERE id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.NamaEvent,
		&event.Poster,
		&event.Lokasi,
		&event.Harga,
		&event.Tgl,
		&event.Stok,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	// The poster column is only touched when a new file was uploaded;
	// otherwise the stored bytes survive the full field replace.
	var query string
	args := []interface{}{params.NamaEvent, params.Lokasi, params.Harga, params.Tgl, params.Stok}

	if params.Poster != nil {
		query = `
			UPDATE event
			SET nama_event = $1, lokasi = $2, harga = $3, tgl = $4, stok = $5, poster = $6
			WHERE id = $7
			RETURNING id, nama_event, poster, lokasi, harga, tgl, stok
		`
		args = append(args, params.Poster, id)
	} else {
		query = `
			UPDATE event
			SET nama_event = $1, lokasi = $2, harga = $3, tgl = $4, stok = $5
			WHERE id = $6
			RETURNING id, nama_event, poster, lokasi, harga, tgl, stok
		`
		args = append(args, id)
	}

	var event model.Event
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&event.ID,
		&event.NamaEvent,
		&event.Poster,
		&event.Lokasi,
		&event.Harga,
		&event.Tgl,
		&event.Stok,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM event
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

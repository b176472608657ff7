package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rallypoint/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (title, description, date, location, slots_available, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		event.Title, event.Description, event.Date, event.Location,
		event.SlotsAvailable, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, slots_available, created_by, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.SlotsAvailable, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `
		SELECT id, title, description, date, location, slots_available, created_by, created_at, updated_at
		FROM events
		WHERE date >= $1
		ORDER BY date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
			&e.SlotsAvailable, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// Update applies a partial update. Nil patch fields map to NULL and COALESCE
// keeps the stored value; non-nil fields are written even when zero-valued.
func (r *eventRepository) Update(ctx context.Context, id string, patch domain.EventPatch, updatedAt time.Time) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    date = COALESCE($4, date),
		    location = COALESCE($5, location),
		    slots_available = COALESCE($6, slots_available),
		    updated_at = $7
		WHERE id = $1
		RETURNING id, title, description, date, location, slots_available, created_by, created_at, updated_at
	`
	e := &domain.Event{}
	err := r.DB.QueryRowContext(ctx, query,
		id, patch.Title, patch.Description, patch.Date, patch.Location, patch.SlotsAvailable, updatedAt,
	).Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location,
		&e.SlotsAvailable, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete removes the event; registrations, waitlist entries, and hour logs go
// with it via ON DELETE CASCADE.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"rallypoint/internal/domain"
)

type waitlistRepository struct {
	DB *sql.DB
}

func NewWaitlistRepository(db *sql.DB) domain.WaitlistRepository {
	return &waitlistRepository{DB: db}
}

func (r *waitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) error {
	query := `
		INSERT INTO waitlist_entries (event_id, user_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, entry.EventID, entry.UserID, entry.CreatedAt).Scan(&entry.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyWaitlisted
		}
		return err
	}
	return nil
}

func (r *waitlistRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.WaitlistEntry, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM waitlist_entries
		WHERE event_id = $1 AND user_id = $2
	`
	entry := &domain.WaitlistEntry{}
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&entry.ID, &entry.EventID, &entry.UserID, &entry.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (r *waitlistRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.WaitlistEntry, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM waitlist_entries
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.WaitlistEntry
	for rows.Next() {
		entry := &domain.WaitlistEntry{}
		if err := rows.Scan(&entry.ID, &entry.EventID, &entry.UserID, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.WaitlistEntry{}
	}
	return entries, nil
}

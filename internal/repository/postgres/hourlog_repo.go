package postgres

import (
	"context"
	"database/sql"

	"rallypoint/internal/domain"
)

type hourLogRepository struct {
	DB *sql.DB
}

func NewHourLogRepository(db *sql.DB) domain.HourLogRepository {
	return &hourLogRepository{DB: db}
}

func (r *hourLogRepository) Create(ctx context.Context, log *domain.HourLog) error {
	query := `
		INSERT INTO hour_logs (event_id, user_id, hours, date_worked, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		log.EventID, log.UserID, log.Hours, log.DateWorked, log.Status, log.SubmittedAt,
	).Scan(&log.ID)
}

func (r *hourLogRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.HourLog, error) {
	query := `
		SELECT id, event_id, user_id, hours, date_worked, status, submitted_at
		FROM hour_logs
		WHERE user_id = $1
		ORDER BY date_worked DESC
	`
	return r.list(ctx, query, userID)
}

func (r *hourLogRepository) ListPending(ctx context.Context) ([]*domain.HourLog, error) {
	// Oldest submission first: the review queue is fair.
	query := `
		SELECT id, event_id, user_id, hours, date_worked, status, submitted_at
		FROM hour_logs
		WHERE status = 'pending'
		ORDER BY submitted_at ASC
	`
	return r.list(ctx, query)
}

func (r *hourLogRepository) list(ctx context.Context, query string, args ...any) ([]*domain.HourLog, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []*domain.HourLog
	for rows.Next() {
		l := &domain.HourLog{}
		if err := rows.Scan(&l.ID, &l.EventID, &l.UserID, &l.Hours, &l.DateWorked, &l.Status, &l.SubmittedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*domain.HourLog{}
	}
	return logs, nil
}

func (r *hourLogRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE hour_logs SET status = $1 WHERE id = $2`, status, id)
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

package postgres

import (
	"context"
	"database/sql"
	"time"

	"rallypoint/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

// Collect runs the four dashboard counts. The reads are independent queries,
// not a transactional snapshot.
func (r *statsRepository) Collect(ctx context.Context, now time.Time) (*domain.AdminStats, error) {
	stats := &domain.AdminStats{}

	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'volunteer'`).
		Scan(&stats.TotalVolunteers)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = 'volunteer' AND status = 'pending'`).
		Scan(&stats.PendingVolunteers)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE date >= $1`, now).
		Scan(&stats.UpcomingEvents)
	if err != nil {
		return nil, err
	}

	err = r.DB.QueryRowContext(ctx, `SELECT COALESCE(SUM(hours), 0) FROM hour_logs WHERE status = 'approved'`).
		Scan(&stats.ApprovedHours)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

package domain

import (
	"context"
	"time"
)

// AdminStats are the dashboard counters. They are recomputed on every call;
// the four counts are point-in-time reads, not a transactional snapshot.
// swagger:model AdminStats
type AdminStats struct {
	TotalVolunteers   int     `json:"total_volunteers"`
	PendingVolunteers int     `json:"pending_volunteers"`
	UpcomingEvents    int     `json:"upcoming_events"`
	ApprovedHours     float64 `json:"approved_hours"`
}

// StatsRepository computes the dashboard counters from the other collections.
type StatsRepository interface {
	Collect(ctx context.Context, now time.Time) (*AdminStats, error)
}

// StatsService exposes the admin dashboard counters.
type StatsService interface {
	Collect(ctx context.Context) (*AdminStats, error)
}

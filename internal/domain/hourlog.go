package domain

import (
	"context"
	"errors"
	"time"
)

// ErrFutureEvent is returned when hours are submitted against an event that
// has not started yet.
var ErrFutureEvent = errors.New("future event")

// Hour log review statuses.
const (
	HourLogPending  = "pending"
	HourLogApproved = "approved"
	HourLogRejected = "rejected"
)

// HourLog is a volunteer's self-reported time against a past event,
// subject to admin approval.
// swagger:model HourLog
type HourLog struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	Hours       float64   `json:"hours"`
	DateWorked  time.Time `json:"date_worked"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewHourLog creates a pending HourLog. ID is typically set by the repository on create.
func NewHourLog(eventID, userID string, hours float64, dateWorked, submittedAt time.Time) *HourLog {
	return &HourLog{
		EventID:     eventID,
		UserID:      userID,
		Hours:       hours,
		DateWorked:  dateWorked,
		Status:      HourLogPending,
		SubmittedAt: submittedAt,
	}
}

// HourLogRepository defines storage operations for hour logs.
type HourLogRepository interface {
	Create(ctx context.Context, log *HourLog) error
	// ListByUserID returns the volunteer's logs, newest date_worked first.
	ListByUserID(ctx context.Context, userID string) ([]*HourLog, error)
	// ListPending returns pending logs, oldest submission first.
	ListPending(ctx context.Context) ([]*HourLog, error)
	// UpdateStatus overwrites the status unconditionally. Returns ErrNotFound
	// when no log has the given id.
	UpdateStatus(ctx context.Context, id, status string) error
}

// HourLogService defines submission and the admin review workflow.
type HourLogService interface {
	Submit(ctx context.Context, eventID, userID string, hours float64, dateWorked time.Time) (*HourLog, error)
	ListMine(ctx context.Context, userID string) ([]*HourLog, error)
	ListPending(ctx context.Context) ([]*HourLog, error)
	SetStatus(ctx context.Context, logID, status string) error
}

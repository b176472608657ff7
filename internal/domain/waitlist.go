package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for waitlist operations.
var (
	ErrAlreadyWaitlisted = errors.New("already waitlisted")
	ErrEventNotFull      = errors.New("event is not full")
)

// WaitlistEntry represents a queued request for a seat at a full event.
// CreatedAt is the sole ordering key: earlier entries are promoted first.
// swagger:model WaitlistEntry
type WaitlistEntry struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewWaitlistEntry creates a new WaitlistEntry. ID is typically set by the repository on create.
func NewWaitlistEntry(eventID, userID string, createdAt time.Time) *WaitlistEntry {
	return &WaitlistEntry{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// WaitlistRepository defines storage operations for waitlist entries.
type WaitlistRepository interface {
	// Create inserts the entry; returns ErrAlreadyWaitlisted when the
	// (event, user) pair already exists.
	Create(ctx context.Context, entry *WaitlistEntry) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*WaitlistEntry, error)
	ListByEventID(ctx context.Context, eventID string) ([]*WaitlistEntry, error)
}

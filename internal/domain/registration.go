package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for seat management.
var (
	ErrEventFull         = errors.New("event full")
	ErrAlreadyRegistered = errors.New("already registered")
)

// Registration represents a volunteer's confirmed seat at an event.
// A volunteer holds at most one seat per event.
// swagger:model Registration
type Registration struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRegistration creates a new Registration. ID is typically set by the repository on create.
func NewRegistration(eventID, userID string, createdAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		CreatedAt: createdAt,
	}
}

// RegistrationWithEvent bundles a registration with its related event.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// CreateIfCapacity inserts the registration only while the event's
	// confirmed count is below capacity; the check and insert are atomic with
	// respect to concurrent registrations for the same event. Returns
	// ErrEventFull when no seat is left and ErrAlreadyRegistered when the
	// (event, user) pair already exists.
	CreateIfCapacity(ctx context.Context, reg *Registration, capacity int) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	CountByEventID(ctx context.Context, eventID string) (int, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	// DeleteAndPromote releases the volunteer's seat and, in the same
	// transaction, converts the earliest waitlist entry for the event into a
	// registration. Returns the promoted registration, or nil if the waitlist
	// was empty. Returns ErrNotFound if the volunteer held no seat.
	DeleteAndPromote(ctx context.Context, eventID, userID string) (*Registration, error)
}

// RegistrationService defines seat and waitlist operations for volunteers.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID string) (*Registration, error)
	// Unregister releases the seat and returns the waitlist registration
	// promoted into it, if any.
	Unregister(ctx context.Context, eventID, userID string) (*Registration, error)
	JoinWaitlist(ctx context.Context, eventID, userID string) (*WaitlistEntry, error)
	ListMyEvents(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
}

package domain

import (
	"context"
	"time"
)

// DefaultSlots is the event capacity used when none is supplied on create.
const DefaultSlots = 10

// Event represents a volunteer event posted by an admin.
// swagger:model Event
type Event struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	SlotsAvailable int       `json:"slots_available"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, location, createdBy string, date time.Time, slots int, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:          title,
		Description:    description,
		Location:       location,
		CreatedBy:      createdBy,
		Date:           date,
		SlotsAvailable: slots,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

// EventPatch is a partial event update. Nil fields keep their previous value;
// non-nil fields are applied even when falsy (e.g. slots_available 0).
type EventPatch struct {
	Title          *string
	Description    *string
	Date           *time.Time
	Location       *string
	SlotsAvailable *int
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// ListUpcoming returns events with date >= now, soonest first.
	ListUpcoming(ctx context.Context, now time.Time) ([]*Event, error)
	Update(ctx context.Context, id string, patch EventPatch, updatedAt time.Time) (*Event, error)
	// Delete removes the event. Registrations and waitlist entries for the
	// event are removed with it.
	Delete(ctx context.Context, id string) error
}

// EventService defines admin CRUD and the public catalog reads.
type EventService interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	ListUpcoming(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

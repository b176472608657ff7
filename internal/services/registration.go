package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rallypoint/internal/domain"
)

type registrationService struct {
	userRepo         domain.UserRepository
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	waitlistRepo     domain.WaitlistRepository
}

// NewRegistrationService creates a RegistrationService with the given repositories.
func NewRegistrationService(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	waitlistRepo domain.WaitlistRepository,
) domain.RegistrationService {
	return &registrationService{
		userRepo:         userRepo,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		waitlistRepo:     waitlistRepo,
	}
}

// Register grants the volunteer a seat. Only approved accounts may hold
// seats; capacity is enforced by the repository's conditional insert, so two
// racing requests cannot oversell the event.
func (s *registrationService) Register(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.Status != domain.StatusApproved {
		return nil, domain.ErrForbidden
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg := domain.NewRegistration(event.ID, user.ID, time.Now())
	if err := s.registrationRepo.CreateIfCapacity(ctx, reg, event.SlotsAvailable); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrAlreadyRegistered),
			errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	return reg, nil
}

// Unregister releases the seat and promotes the head of the event's waitlist,
// if anyone is queued. The promoted registration is returned so callers can
// surface it.
func (s *registrationService) Unregister(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	promoted, err := s.registrationRepo.DeleteAndPromote(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete registration: %w", err)
	}
	return promoted, nil
}

// JoinWaitlist queues the volunteer for a seat. Waitlisting only applies to
// full events; holders of a seat or an existing entry are turned away.
func (s *registrationService) JoinWaitlist(ctx context.Context, eventID, userID string) (*domain.WaitlistEntry, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	count, err := s.registrationRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if count < event.SlotsAvailable {
		return nil, domain.ErrEventNotFull
	}

	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	entry := domain.NewWaitlistEntry(eventID, userID, time.Now())
	if err := s.waitlistRepo.Create(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyWaitlisted) {
			return nil, domain.ErrAlreadyWaitlisted
		}
		return nil, fmt.Errorf("create waitlist entry: %w", err)
	}
	return entry, nil
}

func (s *registrationService) ListMyEvents(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, err := s.eventRepo.GetByID(ctx, reg.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Event deleted out from under the registration; skip it.
				continue
			}
			return nil, fmt.Errorf("get event for registration: %w", err)
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}

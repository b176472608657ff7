package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rallypoint/internal/domain"
)

type hourLogService struct {
	userRepo    domain.UserRepository
	eventRepo   domain.EventRepository
	hourLogRepo domain.HourLogRepository
}

// NewHourLogService creates a HourLogService with the given repositories.
func NewHourLogService(
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	hourLogRepo domain.HourLogRepository,
) domain.HourLogService {
	return &hourLogService{
		userRepo:    userRepo,
		eventRepo:   eventRepo,
		hourLogRepo: hourLogRepo,
	}
}

// Submit records pending hours against a past event. Only approved volunteers
// may log hours, and only once the event has started.
func (s *hourLogService) Submit(ctx context.Context, eventID, userID string, hours float64, dateWorked time.Time) (*domain.HourLog, error) {
	if hours <= 0 {
		return nil, domain.ErrInvalidInput
	}

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
	if !event.Date.Before(time.Now()) {
		return nil, domain.ErrFutureEvent
	}

	log := domain.NewHourLog(event.ID, user.ID, hours, dateWorked, time.Now())
	if err := s.hourLogRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("create hour log: %w", err)
	}
	return log, nil
}

func (s *hourLogService) ListMine(ctx context.Context, userID string) ([]*domain.HourLog, error) {
	logs, err := s.hourLogRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list hour logs: %w", err)
	}
	return logs, nil
}

func (s *hourLogService) ListPending(ctx context.Context) ([]*domain.HourLog, error) {
	logs, err := s.hourLogRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending hour logs: %w", err)
	}
	return logs, nil
}

// SetStatus overwrites the log's status. Re-approving an already-rejected log
// is allowed so admins can correct mistakes.
func (s *hourLogService) SetStatus(ctx context.Context, logID, status string) error {
	if status != domain.HourLogApproved && status != domain.HourLogRejected {
		return domain.ErrInvalidInput
	}
	if err := s.hourLogRepo.UpdateStatus(ctx, logID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update hour log status: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rallypoint/internal/domain"
)

type supportMessageService struct {
	messageRepo domain.SupportMessageRepository
}

// NewSupportMessageService creates a SupportMessageService with the given repository.
func NewSupportMessageService(messageRepo domain.SupportMessageRepository) domain.SupportMessageService {
	return &supportMessageService{messageRepo: messageRepo}
}

func (s *supportMessageService) Create(ctx context.Context, userID, subject, body string) (*domain.SupportMessage, error) {
	msg := domain.NewSupportMessage(userID, subject, body, time.Now())
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return msg, nil
}

func (s *supportMessageService) ListMine(ctx context.Context, userID string) ([]*domain.SupportMessage, error) {
	msgs, err := s.messageRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *supportMessageService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.SupportMessageWithSender, int, error) {
	msgs, total, err := s.messageRepo.ListAll(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	return msgs, total, nil
}

func (s *supportMessageService) MarkRead(ctx context.Context, id string) error {
	if err := s.messageRepo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// Reply records the admin's reply and flips the status to replied regardless
// of the prior status.
func (s *supportMessageService) Reply(ctx context.Context, id, replyText string) (*domain.SupportMessage, error) {
	if err := s.messageRepo.Reply(ctx, id, replyText, time.Now()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reply to message: %w", err)
	}
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return msg, nil
}

package domain

import (
	"context"
	"time"
)

// Support message statuses.
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// SupportMessage is a user-to-admin ticket.
// swagger:model SupportMessage
type SupportMessage struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Status    string     `json:"status"`
	ReplyText string     `json:"reply_text,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewSupportMessage creates an unread SupportMessage. ID is typically set by the repository on create.
func NewSupportMessage(userID, subject, body string, createdAt time.Time) *SupportMessage {
	return &SupportMessage{
		UserID:    userID,
		Subject:   subject,
		Body:      body,
		Status:    MessageUnread,
		CreatedAt: createdAt,
	}
}

// SupportMessageWithSender annotates a message with the sender's name and email
// for the admin inbox.
type SupportMessageWithSender struct {
	Message     *SupportMessage `json:"message"`
	SenderName  string          `json:"sender_name"`
	SenderEmail string          `json:"sender_email"`
}

// SupportMessageRepository defines storage operations for support messages.
type SupportMessageRepository interface {
	Create(ctx context.Context, msg *SupportMessage) error
	GetByID(ctx context.Context, id string) (*SupportMessage, error)
	// ListByUserID returns the user's messages, newest first.
	ListByUserID(ctx context.Context, userID string) ([]*SupportMessage, error)
	// ListAll returns all messages with sender details, newest first.
	ListAll(ctx context.Context, params PaginationParams) ([]*SupportMessageWithSender, int, error)
	// MarkRead sets the status to read. Returns ErrNotFound for an unknown id.
	MarkRead(ctx context.Context, id string) error
	// Reply sets the reply text and timestamp and the status to replied,
	// regardless of the prior status.
	Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error
}

// SupportMessageService defines the ticketing operations.
type SupportMessageService interface {
	Create(ctx context.Context, userID, subject, body string) (*SupportMessage, error)
	ListMine(ctx context.Context, userID string) ([]*SupportMessage, error)
	ListAll(ctx context.Context, params PaginationParams) ([]*SupportMessageWithSender, int, error)
	MarkRead(ctx context.Context, id string) error
	Reply(ctx context.Context, id, replyText string) (*SupportMessage, error)
}

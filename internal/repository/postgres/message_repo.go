package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rallypoint/internal/domain"
)

type supportMessageRepository struct {
	DB *sql.DB
}

func NewSupportMessageRepository(db *sql.DB) domain.SupportMessageRepository {
	return &supportMessageRepository{DB: db}
}

func (r *supportMessageRepository) Create(ctx context.Context, msg *domain.SupportMessage) error {
	query := `
		INSERT INTO support_messages (user_id, subject, body, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		msg.UserID, msg.Subject, msg.Body, msg.Status, msg.CreatedAt,
	).Scan(&msg.ID)
}

func (r *supportMessageRepository) GetByID(ctx context.Context, id string) (*domain.SupportMessage, error) {
	query := `
		SELECT id, user_id, subject, body, status, COALESCE(reply_text, ''), replied_at, created_at
		FROM support_messages
		WHERE id = $1
	`
	m := &domain.SupportMessage{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.UserID, &m.Subject, &m.Body, &m.Status, &m.ReplyText, &m.RepliedAt, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *supportMessageRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.SupportMessage, error) {
	query := `
		SELECT id, user_id, subject, body, status, COALESCE(reply_text, ''), replied_at, created_at
		FROM support_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*domain.SupportMessage
	for rows.Next() {
		m := &domain.SupportMessage{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.Subject, &m.Body, &m.Status, &m.ReplyText, &m.RepliedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*domain.SupportMessage{}
	}
	return msgs, nil
}

func (r *supportMessageRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.SupportMessageWithSender, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM support_messages`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT m.id, m.user_id, m.subject, m.body, m.status, COALESCE(m.reply_text, ''), m.replied_at, m.created_at,
		       u.name, u.email
		FROM support_messages m
		JOIN users u ON u.id = m.user_id
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*domain.SupportMessageWithSender
	for rows.Next() {
		m := &domain.SupportMessage{}
		item := &domain.SupportMessageWithSender{Message: m}
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Subject, &m.Body, &m.Status, &m.ReplyText, &m.RepliedAt, &m.CreatedAt,
			&item.SenderName, &item.SenderEmail,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []*domain.SupportMessageWithSender{}
	}
	return items, total, nil
}

func (r *supportMessageRepository) MarkRead(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE support_messages SET status = 'read' WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *supportMessageRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	query := `
		UPDATE support_messages
		SET reply_text = $1, replied_at = $2, status = 'replied'
		WHERE id = $3
	`
	res, err := r.DB.ExecContext(ctx, query, replyText, repliedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

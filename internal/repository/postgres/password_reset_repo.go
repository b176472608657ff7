package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rallypoint/internal/domain"
)

type passwordResetRepository struct {
	DB *sql.DB
}

func NewPasswordResetRepository(db *sql.DB) domain.PasswordResetRepository {
	return &passwordResetRepository{DB: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO password_reset_tokens (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.DB.ExecContext(ctx, query, userID, tokenHash, expiresAt)
	return err
}

// Consume deletes the token in the same statement that reads it, so a token
// can be redeemed at most once.
func (r *passwordResetRepository) Consume(ctx context.Context, tokenHash string) (string, error) {
	query := `
		DELETE FROM password_reset_tokens
		WHERE token_hash = $1 AND expires_at > NOW()
		RETURNING user_id
	`
	var userID string
	err := r.DB.QueryRowContext(ctx, query, tokenHash).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return userID, nil
}

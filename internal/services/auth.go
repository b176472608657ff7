package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rallypoint/internal/domain"
)

const resetTokenExpiryMins = 10

type authService struct {
	userRepo     domain.UserRepository
	resetRepo    domain.PasswordResetRepository
	hasher       domain.PasswordHasher
	tokenIssuer  domain.TokenIssuer
	tokenExpiry  time.Duration
	emailService domain.EmailService
	appBaseURL   string
}

// NewAuthService creates an AuthService with the given repositories and auth ports.
func NewAuthService(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	appBaseURL string,
) domain.AuthService {
	return &authService{
		userRepo:     userRepo,
		resetRepo:    resetRepo,
		hasher:       hasher,
		tokenIssuer:  tokenIssuer,
		tokenExpiry:  tokenExpiry,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// SignUp creates a pending volunteer account and issues a token. The welcome
// email is fire-and-forget: the account is committed first and a send failure
// is only logged.
func (s *authService) SignUp(ctx context.Context, email, password, name string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return "", nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(email, name, domain.RoleVolunteer, domain.StatusPending, now, now)
	user.PasswordHash = hash
	user.Salt = salt
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return "", nil, domain.ErrDuplicateEmail
		}
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	if s.emailService != nil {
		go func() {
			data := &domain.WelcomeEmailData{Email: user.Email, Name: user.Name}
			if err := s.emailService.SendWelcome(context.Background(), data); err != nil {
				log.Printf("[AUTH] welcome email to %s failed: %v", user.Email, err)
			}
		}()
	}

	token, err := s.tokenIssuer.Issue(user.ID, user.Email, user.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

// Login exchanges credentials for a token. Rejected accounts never receive a
// token; pending accounts do, and the approval gate applies per action.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if user.Status == domain.StatusRejected {
		return "", nil, domain.ErrAccountRejected
	}
	token, err := s.tokenIssuer.Issue(user.ID, user.Email, user.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

// ForgotPassword stores a hashed single-use token and emails the reset link.
// Unknown emails succeed silently so the endpoint doesn't reveal which
// addresses have accounts.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			log.Printf("[AUTH] password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("get user: %w", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	expiresAt := time.Now().Add(resetTokenExpiryMins * time.Minute)
	if err := s.resetRepo.Create(ctx, user.ID, hashResetToken(token), expiresAt); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if s.emailService != nil {
		data := &domain.PasswordResetEmailData{
			Email:            user.Email,
			Name:             user.Name,
			ResetURL:         s.appBaseURL + "/resetpassword/" + token,
			ExpiresInMinutes: resetTokenExpiryMins,
		}
		if err := s.emailService.SendPasswordReset(ctx, data); err != nil {
			return fmt.Errorf("send reset email: %w", err)
		}
	}
	return nil
}

// ResetPassword consumes the emailed token and sets the new password.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	userID, err := s.resetRepo.Consume(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("consume reset token: %w", err)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash, salt); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

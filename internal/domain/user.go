package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountRejected    = errors.New("account rejected")
)

// User roles.
const (
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// Account statuses. New volunteers start as pending and only an admin
// moves them to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// User represents a registered account: a volunteer or an admin.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	Skills       []string  `json:"skills"`
	Availability []string  `json:"availability"`
	PictureURL   string    `json:"picture_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, role, status string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:     email,
		Name:      name,
		Role:      role,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged;
// non-nil fields are applied even when the new value is empty.
type ProfilePatch struct {
	Name         *string
	Skills       *[]string
	Availability *[]string
	PictureURL   *string
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdateStatus(ctx context.Context, id, status string) error
	UpdatePassword(ctx context.Context, id, passwordHash, salt string) error
	ListVolunteers(ctx context.Context, params PaginationParams) ([]*User, int, error)
}

// PasswordResetRepository stores hashed password reset tokens.
// Tokens are single-use and expire server-side.
type PasswordResetRepository interface {
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// Consume atomically removes an unexpired token by hash and returns the
	// owning user ID, or ErrNotFound if no live token matches.
	Consume(ctx context.Context, tokenHash string) (userID string, err error)
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID and role.
type TokenVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// AuthService defines signup, login, and the password reset flow.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (token string, user *User, err error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// UserService defines profile and admin user management operations.
type UserService interface {
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (*User, error)
	SavePicture(ctx context.Context, userID, filename string, data []byte) (*User, error)
	ListVolunteers(ctx context.Context, params PaginationParams) ([]*User, int, error)
	SetStatus(ctx context.Context, userID, status string) (*User, error)
}

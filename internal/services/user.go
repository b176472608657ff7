package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rallypoint/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
	pictures domain.PictureStore
}

// NewUserService creates a UserService with the given repository and picture store.
func NewUserService(userRepo domain.UserRepository, pictures domain.PictureStore) domain.UserService {
	return &userService{userRepo: userRepo, pictures: pictures}
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update to the caller's profile. Nil patch
// fields keep their stored value.
func (s *userService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Skills != nil {
		user.Skills = *patch.Skills
	}
	if patch.Availability != nil {
		user.Availability = *patch.Availability
	}
	if patch.PictureURL != nil {
		user.PictureURL = *patch.PictureURL
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// SavePicture stores the uploaded image and records its URL on the profile.
func (s *userService) SavePicture(ctx context.Context, userID, filename string, data []byte) (*domain.User, error) {
	if len(data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	url, err := s.pictures.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("store picture: %w", err)
	}
	return s.UpdateProfile(ctx, userID, domain.ProfilePatch{PictureURL: &url})
}

func (s *userService) ListVolunteers(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	users, total, err := s.userRepo.ListVolunteers(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list volunteers: %w", err)
	}
	return users, total, nil
}

// SetStatus approves or rejects a volunteer account.
func (s *userService) SetStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	if status != domain.StatusApproved && status != domain.StatusRejected {
		return nil, domain.ErrInvalidInput
	}
	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

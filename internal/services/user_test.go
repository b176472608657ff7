package services

import (
	"context"
	"testing"
	"time"

	"rallypoint/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	seeded := func() *fakeUserRepo {
		repo := newFakeUserRepo()
		repo.add(&domain.User{
			ID: "u1", Email: "alice@example.com", Name: "Alice",
			Skills: []string{"gardening"}, Availability: []string{"weekends"},
			Role: domain.RoleVolunteer, Status: domain.StatusApproved,
			CreatedAt: now, UpdatedAt: now,
		})
		return repo
	}

	t.Run("nil fields keep their stored value", func(t *testing.T) {
		svc := NewUserService(seeded(), &fakePictureStore{})
		name := "Alice B."
		user, err := svc.UpdateProfile(ctx, "u1", domain.ProfilePatch{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Alice B.", user.Name)
		assert.Equal(t, []string{"gardening"}, user.Skills)
		assert.Equal(t, []string{"weekends"}, user.Availability)
	})

	t.Run("present empty slice clears skills", func(t *testing.T) {
		svc := NewUserService(seeded(), &fakePictureStore{})
		empty := []string{}
		user, err := svc.UpdateProfile(ctx, "u1", domain.ProfilePatch{Skills: &empty})
		require.NoError(t, err)
		assert.Empty(t, user.Skills)
		assert.Equal(t, "Alice", user.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), &fakePictureStore{})
		name := "X"
		_, err := svc.UpdateProfile(ctx, "missing", domain.ProfilePatch{Name: &name})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserService_SavePicture(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the file and records its URL", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.add(&domain.User{ID: "u1", Email: "alice@example.com", Name: "Alice"})
		store := &fakePictureStore{url: "/uploads/abc.png"}
		svc := NewUserService(repo, store)

		user, err := svc.SavePicture(ctx, "u1", "me.png", []byte{0x89, 0x50})
		require.NoError(t, err)
		assert.Equal(t, "/uploads/abc.png", user.PictureURL)
		require.Len(t, store.saved, 1)
		assert.Equal(t, "me.png", store.saved[0])
	})

	t.Run("empty file", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), &fakePictureStore{})
		_, err := svc.SavePicture(ctx, "u1", "me.png", nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("approve", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.add(&domain.User{ID: "u1", Email: "alice@example.com", Status: domain.StatusPending, Role: domain.RoleVolunteer})
		svc := NewUserService(repo, &fakePictureStore{})

		user, err := svc.SetStatus(ctx, "u1", domain.StatusApproved)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, user.Status)
	})

	t.Run("back to pending is not allowed", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), &fakePictureStore{})
		_, err := svc.SetStatus(ctx, "u1", domain.StatusPending)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), &fakePictureStore{})
		_, err := svc.SetStatus(ctx, "missing", domain.StatusApproved)
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

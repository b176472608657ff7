package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"rallypoint/internal/delivery/http/helpers"
	"rallypoint/internal/delivery/http/middleware"
	"rallypoint/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "b2c3d4e5-f6a7-8901-bcde-f23456789012"

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	user       *domain.User
	volunteers []*domain.User
	total      int
	err        error

	lastPatch    domain.ProfilePatch
	lastFilename string
	lastData     []byte
	lastStatus   string
}

func (f *fakeUserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeUserService) UpdateProfile(ctx context.Context, userID string, patch domain.ProfilePatch) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastPatch = patch
	return f.user, nil
}

func (f *fakeUserService) SavePicture(ctx context.Context, userID, filename string, data []byte) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilename = filename
	f.lastData = data
	return f.user, nil
}

func (f *fakeUserService) ListVolunteers(ctx context.Context, params domain.PaginationParams) ([]*domain.User, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.volunteers, f.total, nil
}

func (f *fakeUserService) SetStatus(ctx context.Context, userID, status string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastStatus = status
	return f.user, nil
}

func TestUserController_GetProfile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name          string
		contextUserID string
		fakeErr       error
		wantStatus    int
		wantBodyCode  string
	}{
		{
			name:          "success",
			contextUserID: "user-123",
			wantStatus:    http.StatusOK,
		},
		{
			name:         "no user in context",
			wantStatus:   http.StatusUnauthorized,
			wantBodyCode: helpers.ErrCodeUnauthorized,
		},
		{
			name:          "user not found",
			contextUserID: "user-123",
			fakeErr:       domain.ErrUserNotFound,
			wantStatus:    http.StatusNotFound,
			wantBodyCode:  helpers.ErrCodeNotFound,
		},
		{
			name:          "service error",
			contextUserID: "user-123",
			fakeErr:       assert.AnError,
			wantStatus:    http.StatusInternalServerError,
			wantBodyCode:  helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{
				user: &domain.User{ID: "user-123", Email: "alice@example.com", Name: "Alice"},
				err:  tt.fakeErr,
			}
			ctrl := NewUserController(logger, fake)

			req := httptest.NewRequest(http.MethodGet, "http://test/users/profile", nil)
			if tt.contextUserID != "" {
				req = req.WithContext(middleware.SetUser(req.Context(), tt.contextUserID, domain.RoleVolunteer))
			}
			rr := httptest.NewRecorder()

			ctrl.GetProfile(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				return
			}
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
		})
	}
}

func TestUserController_UpdateProfile(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	t.Run("empty skills array reaches the service as present", func(t *testing.T) {
		fake := &fakeUserService{user: &domain.User{ID: "user-123"}}
		ctrl := NewUserController(logger, fake)

		req := httptest.NewRequest(http.MethodPut, "http://test/users/profile", bytes.NewBufferString(`{"skills":[]}`))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(middleware.SetUser(req.Context(), "user-123", domain.RoleVolunteer))
		rr := httptest.NewRecorder()

		ctrl.UpdateProfile(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.NotNil(t, fake.lastPatch.Skills)
		assert.Empty(t, *fake.lastPatch.Skills)
		assert.Nil(t, fake.lastPatch.Name)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		ctrl := NewUserController(logger, &fakeUserService{})

		req := httptest.NewRequest(http.MethodPut, "http://test/users/profile", bytes.NewBufferString(`{"name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		req = req.WithContext(middleware.SetUser(req.Context(), "user-123", domain.RoleVolunteer))
		rr := httptest.NewRecorder()

		ctrl.UpdateProfile(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserController_UploadPicture(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	multipartBody := func(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
		require.NoError(t, mw.Close())
		return &buf, mw.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		fake := &fakeUserService{user: &domain.User{ID: "user-123", PictureURL: "/uploads/abc.png"}}
		ctrl := NewUserController(logger, fake)

		body, contentType := multipartBody(t, "picture", "me.png", []byte{0x89, 0x50, 0x4e, 0x47})
		req := httptest.NewRequest(http.MethodPost, "http://test/users/profile/picture", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middleware.SetUser(req.Context(), "user-123", domain.RoleVolunteer))
		rr := httptest.NewRecorder()

		ctrl.UploadPicture(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "me.png", fake.lastFilename)
		assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, fake.lastData)
	})

	t.Run("missing picture field", func(t *testing.T) {
		ctrl := NewUserController(logger, &fakeUserService{})

		body, contentType := multipartBody(t, "attachment", "me.png", []byte{0x89})
		req := httptest.NewRequest(http.MethodPost, "http://test/users/profile/picture", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middleware.SetUser(req.Context(), "user-123", domain.RoleVolunteer))
		rr := httptest.NewRecorder()

		ctrl.UploadPicture(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unsupported file type from service", func(t *testing.T) {
		ctrl := NewUserController(logger, &fakeUserService{err: domain.ErrInvalidInput})

		body, contentType := multipartBody(t, "picture", "notes.txt", []byte("hello"))
		req := httptest.NewRequest(http.MethodPost, "http://test/users/profile/picture", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(middleware.SetUser(req.Context(), "user-123", domain.RoleVolunteer))
		rr := httptest.NewRecorder()

		ctrl.UploadPicture(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserController_ListVolunteers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	fake := &fakeUserService{
		volunteers: []*domain.User{{ID: "u1", Name: "Alice", Role: domain.RoleVolunteer, Status: domain.StatusPending}},
		total:      42,
	}
	ctrl := NewUserController(logger, fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/users?page=2&page_size=20", nil)
	req = req.WithContext(middleware.SetUser(req.Context(), "admin-1", domain.RoleAdmin))
	rr := httptest.NewRecorder()

	ctrl.ListVolunteers(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope struct {
		Data  VolunteerListData `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Len(t, envelope.Data.Volunteers, 1)
	assert.Equal(t, 42, envelope.Data.Pagination.Total)
	assert.Equal(t, 2, envelope.Data.Pagination.Page)
}

func TestUserController_SetUserStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	tests := []struct {
		name         string
		userID       string
		body         string
		fakeErr      error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "approve",
			userID:     testUserID,
			body:       `{"status":"approved"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "reject",
			userID:     testUserID,
			body:       `{"status":"rejected"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:         "pending is not accepted",
			userID:       testUserID,
			body:         `{"status":"pending"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "invalid user id",
			userID:       "not-a-uuid",
			body:         `{"status":"approved"}`,
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown user",
			userID:       testUserID,
			body:         `{"status":"approved"}`,
			fakeErr:      domain.ErrUserNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUserService{
				user: &domain.User{ID: tt.userID, Status: domain.StatusApproved},
				err:  tt.fakeErr,
			}
			ctrl := NewUserController(logger, fake)

			req := httptest.NewRequest(http.MethodPut, "http://test/users/"+tt.userID+"/status", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req.SetPathValue("userID", tt.userID)
			req = req.WithContext(middleware.SetUser(req.Context(), "admin-1", domain.RoleAdmin))
			rr := httptest.NewRecorder()

			ctrl.SetUserStatus(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.NotEmpty(t, fake.lastStatus)
				return
			}
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			require.NotNil(t, envelope.Error)
			assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
		})
	}
}

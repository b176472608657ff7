package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"rallypoint/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
		wantID  string
	}{
		{
			name: "success returns generated id",
			user: &domain.User{
				Email:        "alice@example.com",
				PasswordHash: "hash",
				Salt:         "salt",
				Name:         "Alice",
				Role:         domain.RoleVolunteer,
				Status:       domain.StatusPending,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice@example.com", "hash", "salt", "Alice", domain.RoleVolunteer, domain.StatusPending,
						pq.Array([]string(nil)), pq.Array([]string(nil)), now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))
			},
			wantID: "user-uuid-1",
		},
		{
			name: "duplicate email",
			user: &domain.User{
				Email:     "taken@example.com",
				Name:      "Bob",
				Role:      domain.RoleVolunteer,
				Status:    domain.StatusPending,
				CreatedAt: now,
				UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicateEmail,
		},
		{
			name: "db error",
			user: &domain.User{
				Email:     "a@b.com",
				Name:      "A",
				CreatedAt: now,
				UpdatedAt: now,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantID, tt.user.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success scans arrays and picture url", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{
			"id", "email", "password_hash", "salt", "name", "role", "status",
			"skills", "availability", "picture_url", "created_at", "updated_at",
		}).AddRow(
			"user-uuid-1", "alice@example.com", "hash", "salt", "Alice",
			domain.RoleVolunteer, domain.StatusApproved,
			pq.Array([]string{"first-aid", "driving"}), pq.Array([]string{"weekends"}),
			"/uploads/pic.png", now, now,
		)
		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, "user-uuid-1", u.ID)
		require.Equal(t, []string{"first-aid", "driving"}, u.Skills)
		require.Equal(t, []string{"weekends"}, u.Availability)
		require.Equal(t, "/uploads/pic.png", u.PictureURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users`).
			WithArgs("missing@example.com").
			WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "missing@example.com")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		status  string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name:   "success",
			id:     "user-uuid-1",
			status: domain.StatusApproved,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs(domain.StatusApproved, "user-uuid-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:   "not found zero rows affected",
			id:     "nonexistent",
			status: domain.StatusRejected,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WithArgs(domain.StatusRejected, "nonexistent").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: true,
			errIs:   domain.ErrUserNotFound,
		},
		{
			name:   "db error",
			id:     "user-uuid-1",
			status: domain.StatusApproved,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.UpdateStatus(ctx, tt.id, tt.status)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ListVolunteers(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	rows := sqlmock.NewRows([]string{
		"id", "email", "password_hash", "salt", "name", "role", "status",
		"skills", "availability", "picture_url", "created_at", "updated_at",
	}).AddRow(
		"user-uuid-2", "bob@example.com", "hash", "salt", "Bob",
		domain.RoleVolunteer, domain.StatusPending,
		pq.Array([]string{}), pq.Array([]string{}), "", now, now,
	)
	mock.ExpectQuery(`SELECT (.+) FROM users`).
		WithArgs(20, 20).
		WillReturnRows(rows)

	repo := NewUserRepository(db)
	users, total, err := repo.ListVolunteers(ctx, domain.PaginationParams{Page: 2, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 42, total)
	require.Len(t, users, 1)
	require.Equal(t, "bob@example.com", users[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

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

func TestWaitlistRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
		wantID  string
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO waitlist_entries`).
					WithArgs("event-uuid-1", "user-uuid-1", now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("entry-uuid-1"))
			},
			wantID: "entry-uuid-1",
		},
		{
			name: "already waitlisted",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO waitlist_entries`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyWaitlisted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewWaitlistRepository(db)
			entry := &domain.WaitlistEntry{EventID: "event-uuid-1", UserID: "user-uuid-1", CreatedAt: now}
			err = repo.Create(ctx, entry)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.wantID, entry.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWaitlistRepository_GetByEventAndUser(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM waitlist_entries`).
			WithArgs("event-uuid-1", "user-uuid-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}).
				AddRow("entry-uuid-1", "event-uuid-1", "user-uuid-1", now))

		repo := NewWaitlistRepository(db)
		entry, err := repo.GetByEventAndUser(ctx, "event-uuid-1", "user-uuid-1")
		require.NoError(t, err)
		require.Equal(t, "entry-uuid-1", entry.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM waitlist_entries`).
			WithArgs("event-uuid-1", "user-uuid-2").
			WillReturnError(sql.ErrNoRows)

		repo := NewWaitlistRepository(db)
		_, err = repo.GetByEventAndUser(ctx, "event-uuid-1", "user-uuid-2")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

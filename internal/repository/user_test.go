// File: internal/repository/user_test.go
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"sweetshop/internal/database"
	"sweetshop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==6 → GetUserByID / GetUserByEmail
// 2) len(dest)==2 → CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 6:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*string) = u.Role
		*dest[5].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

func TestUserRepository(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		Role:         model.RoleAdmin,
		CreatedAt:    now,
	}

	t.Run("GetUserByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.IsAdmin())
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("GetUserByEmail success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Username: "bob", Email: "bob@example.com", PasswordHash: "pwdhash", Role: model.RoleUser}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				u := *newUser
				u.ID = 42
				u.CreatedAt = now.Add(time.Hour)
				return &fakeUserRow{user: &u}
			},
		}
		created, err := CreateUser(context.Background(), db, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.WithinDuration(t, now.Add(time.Hour), created.CreatedAt, time.Second)
	})

	t.Run("CreateUser duplicate", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505"}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrDuplicate)
	})
}

// File: internal/handler/ping_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"sweetshop/internal/cache"
	"sweetshop/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newPingCtx() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPingHandler(t *testing.T) {
	okCache := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
	}

	// healthy
	ctx, rec := newPingCtx()
	db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
	require.NoError(t, PingHandler(db, okCache)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")

	// database down
	ctx, rec = newPingCtx()
	badDB := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }}
	require.NoError(t, PingHandler(badDB, okCache)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "database unhealthy")

	// cache down
	ctx, rec = newPingCtx()
	badCache := &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("conn refused"))
		},
	}
	require.NoError(t, PingHandler(db, badCache)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "cache unhealthy")
}

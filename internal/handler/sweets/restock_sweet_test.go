// File: internal/handler/sweets/restock_sweet_test.go
package sweets

import (
	"context"
	"net/http"
	"testing"

	"sweetshop/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestRestockSweetHandler(t *testing.T) {
	// invalid id
	ctx, rec := newJSONCtx(t, http.MethodPost, `{"quantity":10}`)
	h := RestockSweetHandler(&database.FakeDB{}, missCache(nil), syncPool{})
	require.NoError(t, h(withID(ctx, "abc")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// missing, zero and negative quantities all rejected before any mutation
	for _, body := range []string{`{}`, `{"quantity":0}`, `{"quantity":-5}`} {
		ctx, rec = newJSONCtx(t, http.MethodPost, body)
		require.NoError(t, h(withID(ctx, "1")))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "valid quantity")
	}

	// unknown item
	missDB := &database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeSweetRow{scanErr: pgx.ErrNoRows}
		},
	}
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"quantity":10}`)
	require.NoError(t, RestockSweetHandler(missDB, missCache(nil), syncPool{})(withID(ctx, "404")))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// success: 50 + 100 = 150
	var deleted []string
	var gotArgs []any
	okDB := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			gotArgs = args
			return &fakeSweetRow{sweet: sampleSweet(1, 150)}
		},
	}
	ctx, rec = newJSONCtx(t, http.MethodPost, `{"quantity":100}`)
	require.NoError(t, RestockSweetHandler(okDB, missCache(&deleted), syncPool{})(withID(ctx, "1")))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []any{1, 100}, gotArgs)
	require.Contains(t, rec.Body.String(), "Restock successful")
	require.Contains(t, rec.Body.String(), `"quantity":150`)
	require.Contains(t, deleted, "sweets:list")
}

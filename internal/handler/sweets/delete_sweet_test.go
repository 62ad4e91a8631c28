// File: internal/handler/sweets/delete_sweet_test.go
package sweets

import (
	"context"
	"net/http"
	"testing"

	"sweetshop/internal/database"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestDeleteSweetHandler(t *testing.T) {
	// invalid id
	ctx, rec := newJSONCtx(t, http.MethodDelete, "")
	h := DeleteSweetHandler(&database.FakeDB{}, missCache(nil), syncPool{})
	require.NoError(t, h(withID(ctx, "abc")))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown item
	missDB := &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		},
	}
	ctx, rec = newJSONCtx(t, http.MethodDelete, "")
	require.NoError(t, DeleteSweetHandler(missDB, missCache(nil), syncPool{})(withID(ctx, "404")))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// success
	var deleted []string
	okDB := &database.FakeDB{
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 1"), nil
		},
	}
	ctx, rec = newJSONCtx(t, http.MethodDelete, "")
	require.NoError(t, DeleteSweetHandler(okDB, missCache(&deleted), syncPool{})(withID(ctx, "1")))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Sweet deleted successfully")
	require.Contains(t, deleted, "sweets:list")
}

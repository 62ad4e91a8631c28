// File: internal/handler/sweets/sweets_test.go
package sweets

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sweetshop/internal/cache"
	"sweetshop/internal/dto"
	"sweetshop/internal/model"
	"sweetshop/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type reqValidator struct{ v *validator.Validate }

func (rv reqValidator) Validate(i any) error { return rv.v.Struct(i) }

func newJSONCtx(t *testing.T, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = reqValidator{v: validator.New()}
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newQueryCtx(t *testing.T, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = reqValidator{v: validator.New()}
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withID(ctx echo.Context, id string) echo.Context {
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// syncPool runs submitted tasks inline so tests can assert side effects.
type syncPool struct{}

func (syncPool) Submit(t worker.Task) { t() }
func (syncPool) Stop()                {}

var _ worker.Pool = syncPool{}

// missCache behaves like an empty redis: every Get misses, Set and Del
// succeed, and the deleted keys are recorded.
func missCache(deleted *[]string) *cache.FakeCache {
	return &cache.FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
			if deleted != nil {
				*deleted = append(*deleted, keys...)
			}
			return redis.NewIntResult(int64(len(keys)), nil)
		},
	}
}

// fakeSweetRow mirrors the sweet column order of the repository queries.
type fakeSweetRow struct {
	scanErr error
	sweet   *model.Sweet
}

func (r *fakeSweetRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	s := r.sweet
	switch len(dest) {
	case 8:
		*dest[0].(*int) = s.ID
		*dest[1].(*string) = s.Name
		*dest[2].(*string) = s.Category
		*dest[3].(*float64) = s.Price
		*dest[4].(*int) = s.Quantity
		*dest[5].(*string) = s.Description
		*dest[6].(*time.Time) = s.CreatedAt
		*dest[7].(*time.Time) = s.UpdatedAt
	case 3:
		*dest[0].(*int) = s.ID
		*dest[1].(*time.Time) = s.CreatedAt
		*dest[2].(*time.Time) = s.UpdatedAt
	default:
		panic("fakeSweetRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeSweetRows implements pgx.Rows over a slice.
type fakeSweetRows struct {
	sweets []model.Sweet
	idx    int
}

func (r *fakeSweetRows) Close()                                       {}
func (r *fakeSweetRows) Err() error                                   { return nil }
func (r *fakeSweetRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeSweetRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeSweetRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeSweetRows) RawValues() [][]byte                          { return nil }
func (r *fakeSweetRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeSweetRows) Next() bool {
	if r.idx >= len(r.sweets) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeSweetRows) Scan(dest ...any) error {
	return (&fakeSweetRow{sweet: &r.sweets[r.idx-1]}).Scan(dest...)
}

func sampleSweet(id, qty int) *model.Sweet {
	now := time.Now().UTC()
	return &model.Sweet{
		ID:        id,
		Name:      "Chocolate Bar",
		Category:  model.CategoryChocolate,
		Price:     2.5,
		Quantity:  qty,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

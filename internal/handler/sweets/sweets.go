// File: internal/handler/sweets/sweets.go
package sweets

import (
	"context"
	"strconv"

	"sweetshop/internal/cache"
	"sweetshop/internal/worker"

	"github.com/labstack/echo/v4"
)

func sweetID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// invalidateList drops the cached catalog off the request path. The task
// uses a background context because it may outlive the request.
func invalidateList(wp worker.Pool, store cache.Cache) {
	wp.Submit(func() {
		store.Del(context.Background(), cache.ListKey)
	})
}

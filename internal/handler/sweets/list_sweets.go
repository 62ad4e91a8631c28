// File: internal/handler/sweets/list_sweets.go
package sweets

import (
	"encoding/json"
	"net/http"
	"time"

	"sweetshop/internal/cache"
	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"

	"github.com/labstack/echo/v4"
)

// ListSweetsHandler 取得全部甜點，最新建立的在前
// @Summary     List all sweets
// @Description 回傳整個目錄，結果以建立時間新到舊排序，短暫快取於 Redis
// @Tags        sweets
// @Produce     json
// @Success     200 {object} dto.Response{data=[]model.Sweet}
// @Failure     401 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets [get]
func ListSweetsHandler(db database.DB, store cache.Cache, cacheTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if raw, err := store.Get(ctx, cache.ListKey).Result(); err == nil {
			var cached []model.Sweet
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return c.JSON(http.StatusOK, dto.List(cached, len(cached)))
			}
		}

		sweets, err := repository.ListSweets(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to list sweets"))
		}

		// A failed cache write only costs the next request a DB round trip.
		if raw, err := json.Marshal(sweets); err == nil {
			store.Set(ctx, cache.ListKey, raw, cacheTTL)
		}

		return c.JSON(http.StatusOK, dto.List(sweets, len(sweets)))
	}
}

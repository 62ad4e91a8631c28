// File: internal/handler/sweets/delete_sweet.go
package sweets

import (
	"errors"
	"net/http"

	"sweetshop/internal/cache"
	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/repository"
	"sweetshop/internal/worker"

	"github.com/labstack/echo/v4"
)

// DeleteSweetHandler 刪除甜點（僅限管理員）
// @Summary     Delete a sweet
// @Tags        sweets
// @Produce     json
// @Param       id path int true "Sweet ID"
// @Success     200 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     403 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets/{id} [delete]
func DeleteSweetHandler(db database.DB, store cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sweetID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid sweet ID"))
		}

		if err := repository.DeleteSweet(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.Error("Sweet not found"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to delete sweet"))
		}

		invalidateList(wp, store)
		return c.JSON(http.StatusOK, dto.OK(nil, "Sweet deleted successfully"))
	}
}

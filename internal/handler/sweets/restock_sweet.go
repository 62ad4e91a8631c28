// File: internal/handler/sweets/restock_sweet.go
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

// RestockSweetHandler 補貨，增加庫存（僅限管理員）
// @Summary     Restock a sweet
// @Description 數量必須為正整數，缺漏、零或負值一律拒絕且庫存不變
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path int                true "Sweet ID"
// @Param       body body dto.RestockRequest true "Restock quantity"
// @Success     200 {object} dto.Response{data=model.Sweet}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     403 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets/{id}/restock [post]
func RestockSweetHandler(db database.DB, store cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sweetID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid sweet ID"))
		}

		var req dto.RestockRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("Please provide a valid quantity to restock"))
		}

		sweet, err := repository.RestockSweet(c.Request().Context(), db, id, req.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.Error("Sweet not found"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to restock sweet"))
		}

		invalidateList(wp, store)
		return c.JSON(http.StatusOK, dto.OK(sweet, "Restock successful"))
	}
}

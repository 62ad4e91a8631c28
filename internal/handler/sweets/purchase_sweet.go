// File: internal/handler/sweets/purchase_sweet.go
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

// PurchaseSweetHandler 購買甜點，扣減庫存
// @Summary     Purchase a sweet
// @Description 數量省略時預設為 1；要求量大於現有庫存時拒絕且庫存不變，等於現有庫存時成功並清空
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path int                 true  "Sweet ID"
// @Param       body body dto.PurchaseRequest false "Purchase quantity"
// @Success     200 {object} dto.Response{data=model.Sweet}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets/{id}/purchase [post]
func PurchaseSweetHandler(db database.DB, store cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sweetID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid sweet ID"))
		}

		var req dto.PurchaseRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		qty := 1
		if req.Quantity != nil {
			qty = *req.Quantity
		}

		sweet, err := repository.PurchaseSweet(c.Request().Context(), db, id, qty)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, dto.Error("Sweet not found"))
			case errors.Is(err, repository.ErrInsufficientStock):
				return c.JSON(http.StatusBadRequest, dto.Error("Insufficient stock"))
			default:
				return c.JSON(http.StatusInternalServerError, dto.Error("failed to purchase sweet"))
			}
		}

		invalidateList(wp, store)
		return c.JSON(http.StatusOK, dto.OK(sweet, "Purchase successful"))
	}
}

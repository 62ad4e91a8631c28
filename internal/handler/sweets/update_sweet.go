// File: internal/handler/sweets/update_sweet.go
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

// UpdateSweetHandler 部分更新甜點資料，任何已登入使用者皆可呼叫
// @Summary     Update a sweet
// @Description 部分更新：缺漏的欄位保持原值，updated_at 一律刷新
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       id   path int                    true "Sweet ID"
// @Param       body body dto.UpdateSweetRequest true "Fields to update"
// @Success     200 {object} dto.Response{data=model.Sweet}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets/{id} [put]
func UpdateSweetHandler(db database.DB, store cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := sweetID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid sweet ID"))
		}

		var req dto.UpdateSweetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		ctx := c.Request().Context()
		sweet, err := repository.GetSweetByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.Error("Sweet not found"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to load sweet"))
		}

		if req.Name != nil {
			sweet.Name = *req.Name
		}
		if req.Category != nil {
			sweet.Category = *req.Category
		}
		if req.Price != nil {
			sweet.Price = *req.Price
		}
		if req.Quantity != nil {
			sweet.Quantity = *req.Quantity
		}
		if req.Description != nil {
			sweet.Description = *req.Description
		}

		updated, err := repository.UpdateSweet(ctx, db, sweet)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, dto.Error("Sweet not found"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to update sweet"))
		}

		invalidateList(wp, store)
		return c.JSON(http.StatusOK, dto.OK(updated, "Sweet updated successfully"))
	}
}

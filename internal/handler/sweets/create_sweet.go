// File: internal/handler/sweets/create_sweet.go
package sweets

import (
	"net/http"

	"sweetshop/internal/cache"
	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
	"sweetshop/internal/worker"

	"github.com/labstack/echo/v4"
)

// CreateSweetHandler 新增甜點
// @Summary     Add a new sweet
// @Description 接收甜點資料並建立新目錄項目
// @Tags        sweets
// @Accept      json
// @Produce     json
// @Param       body body dto.CreateSweetRequest true "Sweet payload"
// @Success     201 {object} dto.Response{data=model.Sweet}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets [post]
func CreateSweetHandler(db database.DB, store cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.CreateSweetRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		sweet := &model.Sweet{
			Name:        req.Name,
			Category:    req.Category,
			Price:       *req.Price,
			Quantity:    *req.Quantity,
			Description: req.Description,
		}

		created, err := repository.CreateSweet(c.Request().Context(), db, sweet)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to create sweet"))
		}

		invalidateList(wp, store)
		return c.JSON(http.StatusCreated, dto.OK(created, "Sweet added successfully"))
	}
}

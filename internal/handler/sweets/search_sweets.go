// File: internal/handler/sweets/search_sweets.go
package sweets

import (
	"net/http"

	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/repository"

	"github.com/labstack/echo/v4"
)

// SearchSweetsHandler 依名稱、分類與價格區間搜尋甜點
// @Summary     Search sweets
// @Description 名稱為不分大小寫的子字串比對，分類為精確比對，價格區間為閉區間；條件間為 AND
// @Tags        sweets
// @Produce     json
// @Param       name     query string false "Name substring"
// @Param       category query string false "Category" Enums(chocolate, candy, dessert, biscuit, other)
// @Param       minPrice query number false "Minimum price"
// @Param       maxPrice query number false "Maximum price"
// @Success     200 {object} dto.Response{data=[]model.Sweet}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /sweets/search [get]
func SearchSweetsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SearchSweetsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid query parameters"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		filter := repository.SweetFilter{
			Name:     req.Name,
			Category: req.Category,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
		}

		sweets, err := repository.SearchSweets(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to search sweets"))
		}

		return c.JSON(http.StatusOK, dto.List(sweets, len(sweets)))
	}
}

// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/middleware"
	"sweetshop/internal/repository"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得當前使用者資訊
// @Summary     Get current user
// @Description 透過 JWT Token 取得當前使用者詳細資訊
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.Response{data=dto.UserResponse}
// @Failure     401 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.Error("invalid or missing token"))
		}

		user, err := repository.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to load user"))
		}

		return c.JSON(http.StatusOK, dto.OK(dto.NewUserResponse(*user), ""))
	}
}

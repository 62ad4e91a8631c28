// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/repository"
	"sweetshop/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌與使用者資料
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "Login payload"
// @Success     200 {object} dto.Response{data=dto.AuthResponse}
// @Failure     400 {object} dto.Response
// @Failure     401 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		// Same message for unknown email and wrong password, so the
		// response never reveals which field was wrong.
		user, err := repository.GetUserByEmail(c.Request().Context(), db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Error("Invalid credentials"))
		}
		if err := service.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, dto.Error("Invalid credentials"))
		}

		token, err := service.IssueAccessToken(*user, secret, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to issue token"))
		}

		resp := dto.OK(dto.AuthResponse{
			Token: token,
			User:  dto.NewUserResponse(*user),
		}, "Login successful")
		return c.JSON(http.StatusOK, resp)
	}
}

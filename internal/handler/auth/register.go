// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"sweetshop/internal/database"
	"sweetshop/internal/dto"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
	"sweetshop/internal/service"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 註冊新使用者並回傳存取令牌
// @Summary     Register a new user
// @Description 建立新帳號 (Email 會自動轉小寫)，成功後直接回傳 JWT
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "Registration payload"
// @Success     201 {object} dto.Response{data=dto.AuthResponse}
// @Failure     400 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, secret string, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.Error("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.ValidationFailed(err))
		}

		role := req.Role
		if role == "" {
			role = model.RoleUser
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to hash password"))
		}

		user := &model.User{
			Username:     req.Username,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
			Role:         role,
		}

		created, err := repository.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, dto.Error("User already exists with this email or username"))
			}
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to create user"))
		}

		token, err := service.IssueAccessToken(*created, secret, ttl)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.Error("failed to issue token"))
		}

		resp := dto.OK(dto.AuthResponse{
			Token: token,
			User:  dto.NewUserResponse(*created),
		}, "User registered successfully")
		return c.JSON(http.StatusCreated, resp)
	}
}

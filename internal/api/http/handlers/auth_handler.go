package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/service"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

// AuthHandler exposes login, refresh, logout and loadme endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, pair, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.OK(dto.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         dto.FromUser(user),
	}))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RefreshToken == "" {
		return apperrors.NewUnauthorized("refresh token required")
	}

	access, _, err := h.auth.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.RefreshResponse{AccessToken: access}))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.auth.Logout(c.Context(), req.RefreshToken); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

// LoadMe handles GET /auth/loadme.
func (h *AuthHandler) LoadMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	user, err := h.auth.LoadUser(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromUser(user)))
}

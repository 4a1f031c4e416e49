package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/auth"
	"github.com/sportsmgr/club-service/internal/service"
	apperrors "github.com/sportsmgr/club-service/pkg/util/errorutil"
)

// TacticsHandler exposes CRUD endpoints for tactical strategies.
type TacticsHandler struct {
	tactics *service.TacticService
}

// NewTacticsHandler constructs handler.
func NewTacticsHandler(tactics *service.TacticService) *TacticsHandler {
	return &TacticsHandler{tactics: tactics}
}

// List handles GET /Tactic.
func (h *TacticsHandler) List(c *fiber.Ctx) error {
	tactics, err := h.tactics.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTactics(tactics)))
}

// Get handles GET /Tactic/:id.
func (h *TacticsHandler) Get(c *fiber.Ctx) error {
	tactic, err := h.tactics.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTactic(tactic)))
}

// Create handles POST /Tactic.
func (h *TacticsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.TacticRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	tactic := req.ToDomain(principal.User.ID)
	if err := h.tactics.Create(c.Context(), tactic); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(dto.FromTactic(tactic)))
}

// Update handles PUT /Tactic/:id.
func (h *TacticsHandler) Update(c *fiber.Ctx) error {
	var req dto.TacticRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	tactic := req.ToDomain("")
	tactic.ID = c.Params("id")
	if err := h.tactics.Update(c.Context(), tactic); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTactic(tactic)))
}

// Delete handles DELETE /Tactic/:id.
func (h *TacticsHandler) Delete(c *fiber.Ctx) error {
	if err := h.tactics.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

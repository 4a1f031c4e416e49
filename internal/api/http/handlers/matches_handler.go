package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/service"
)

// MatchesHandler exposes CRUD endpoints for matches.
type MatchesHandler struct {
	matches *service.MatchService
}

// NewMatchesHandler constructs handler.
func NewMatchesHandler(matches *service.MatchService) *MatchesHandler {
	return &MatchesHandler{matches: matches}
}

// List handles GET /Match.
func (h *MatchesHandler) List(c *fiber.Ctx) error {
	matches, err := h.matches.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromMatches(matches)))
}

// Get handles GET /Match/:id.
func (h *MatchesHandler) Get(c *fiber.Ctx) error {
	match, err := h.matches.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromMatch(match)))
}

// Create handles POST /Match.
func (h *MatchesHandler) Create(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	match, err := req.ToDomain()
	if err != nil {
		return err
	}
	if err := h.matches.Create(c.Context(), match); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(dto.FromMatch(match)))
}

// Update handles PUT /Match/:id.
func (h *MatchesHandler) Update(c *fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	match, err := req.ToDomain()
	if err != nil {
		return err
	}
	match.ID = c.Params("id")
	if err := h.matches.Update(c.Context(), match); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromMatch(match)))
}

// Delete handles DELETE /Match/:id.
func (h *MatchesHandler) Delete(c *fiber.Ctx) error {
	if err := h.matches.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

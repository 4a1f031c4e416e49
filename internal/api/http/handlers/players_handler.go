package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/service"
)

// PlayersHandler exposes CRUD endpoints for players.
type PlayersHandler struct {
	roster *service.RosterService
}

// NewPlayersHandler constructs handler.
func NewPlayersHandler(roster *service.RosterService) *PlayersHandler {
	return &PlayersHandler{roster: roster}
}

// List handles GET /Player.
func (h *PlayersHandler) List(c *fiber.Ctx) error {
	players, err := h.roster.ListPlayers(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromPlayers(players)))
}

// Get handles GET /Player/:id.
func (h *PlayersHandler) Get(c *fiber.Ctx) error {
	player, err := h.roster.GetPlayer(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromPlayer(player)))
}

// Create handles POST /Player.
func (h *PlayersHandler) Create(c *fiber.Ctx) error {
	var req dto.PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	player, err := req.ToDomain()
	if err != nil {
		return err
	}
	if err := h.roster.CreatePlayer(c.Context(), player); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(dto.FromPlayer(player)))
}

// Update handles PUT /Player/:id.
func (h *PlayersHandler) Update(c *fiber.Ctx) error {
	var req dto.PlayerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	player, err := req.ToDomain()
	if err != nil {
		return err
	}
	player.ID = c.Params("id")
	if err := h.roster.UpdatePlayer(c.Context(), player); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromPlayer(player)))
}

// Delete handles DELETE /Player/:id.
func (h *PlayersHandler) Delete(c *fiber.Ctx) error {
	if err := h.roster.DeletePlayer(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/service"
)

// TeamsHandler exposes CRUD endpoints for teams.
type TeamsHandler struct {
	roster *service.RosterService
}

// NewTeamsHandler constructs handler.
func NewTeamsHandler(roster *service.RosterService) *TeamsHandler {
	return &TeamsHandler{roster: roster}
}

// List handles GET /Team.
func (h *TeamsHandler) List(c *fiber.Ctx) error {
	teams, err := h.roster.ListTeams(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTeams(teams)))
}

// Get handles GET /Team/:id.
func (h *TeamsHandler) Get(c *fiber.Ctx) error {
	team, err := h.roster.GetTeam(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTeam(team)))
}

// Create handles POST /Team.
func (h *TeamsHandler) Create(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	team := req.ToDomain()
	if err := h.roster.CreateTeam(c.Context(), team); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(dto.FromTeam(team)))
}

// Update handles PUT /Team/:id.
func (h *TeamsHandler) Update(c *fiber.Ctx) error {
	var req dto.TeamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	team := req.ToDomain()
	team.ID = c.Params("id")
	if err := h.roster.UpdateTeam(c.Context(), team); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTeam(team)))
}

// Delete handles DELETE /Team/:id.
func (h *TeamsHandler) Delete(c *fiber.Ctx) error {
	if err := h.roster.DeleteTeam(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

// UpdatePlayers handles PUT /Team/:id/players.
func (h *TeamsHandler) UpdatePlayers(c *fiber.Ctx) error {
	var req dto.TeamPlayersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.roster.UpdateTeamPlayers(c.Context(), c.Params("id"), req.PlayerIDs); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/dto"
	"github.com/sportsmgr/club-service/internal/service"
)

// StatisticsHandler exposes CRUD endpoints for stat lines and the derived
// team performance view.
type StatisticsHandler struct {
	stats *service.StatsService
}

// NewStatisticsHandler constructs handler.
func NewStatisticsHandler(stats *service.StatsService) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

// List handles GET /Statistic.
func (h *StatisticsHandler) List(c *fiber.Ctx) error {
	lines, err := h.stats.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromStatLines(lines)))
}

// Get handles GET /Statistic/:id.
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	line, err := h.stats.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromStatLine(line)))
}

// Create handles POST /Statistic.
func (h *StatisticsHandler) Create(c *fiber.Ctx) error {
	var req dto.StatLineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	line := req.ToDomain()
	if err := h.stats.Create(c.Context(), line); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.OK(dto.FromStatLine(line)))
}

// Update handles PUT /Statistic/:id.
func (h *StatisticsHandler) Update(c *fiber.Ctx) error {
	var req dto.StatLineRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	line := req.ToDomain()
	line.ID = c.Params("id")
	if err := h.stats.Update(c.Context(), line); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromStatLine(line)))
}

// Delete handles DELETE /Statistic/:id.
func (h *StatisticsHandler) Delete(c *fiber.Ctx) error {
	if err := h.stats.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.OK(nil))
}

// TeamPerformance handles GET /Performance/team/:id.
func (h *StatisticsHandler) TeamPerformance(c *fiber.Ctx) error {
	perf, err := h.stats.TeamPerformance(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.FromTeamPerformance(perf)))
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sportsmgr/club-service/internal/api/http/handlers"
	"github.com/sportsmgr/club-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Players        *handlers.PlayersHandler
	Teams          *handlers.TeamsHandler
	Matches        *handlers.MatchesHandler
	Tactics        *handlers.TacticsHandler
	Statistics     *handlers.StatisticsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/refresh", cfg.Auth.Refresh)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/loadme", cfg.AuthMiddleware.Handle, cfg.Auth.LoadMe)

	bearer := cfg.AuthMiddleware.Handle

	players := app.Group("/Player", bearer)
	players.Get("/", auth.RequirePermission(auth.ResourcePlayers, auth.ActionRead), cfg.Players.List)
	players.Get("/:id", auth.RequirePermission(auth.ResourcePlayers, auth.ActionRead), cfg.Players.Get)
	players.Post("/", auth.RequirePermission(auth.ResourcePlayers, auth.ActionCreate), cfg.Players.Create)
	players.Put("/:id", auth.RequirePermission(auth.ResourcePlayers, auth.ActionUpdate), cfg.Players.Update)
	players.Delete("/:id", auth.RequirePermission(auth.ResourcePlayers, auth.ActionDelete), cfg.Players.Delete)

	teams := app.Group("/Team", bearer)
	teams.Get("/", auth.RequirePermission(auth.ResourceTeams, auth.ActionRead), cfg.Teams.List)
	teams.Get("/:id", auth.RequirePermission(auth.ResourceTeams, auth.ActionRead), cfg.Teams.Get)
	teams.Post("/", auth.RequirePermission(auth.ResourceTeams, auth.ActionCreate), cfg.Teams.Create)
	teams.Put("/:id", auth.RequirePermission(auth.ResourceTeams, auth.ActionUpdate), cfg.Teams.Update)
	teams.Put("/:id/players", auth.RequirePermission(auth.ResourceTeams, auth.ActionUpdate), cfg.Teams.UpdatePlayers)
	teams.Delete("/:id", auth.RequirePermission(auth.ResourceTeams, auth.ActionDelete), cfg.Teams.Delete)

	matches := app.Group("/Match", bearer)
	matches.Get("/", auth.RequirePermission(auth.ResourceMatches, auth.ActionRead), cfg.Matches.List)
	matches.Get("/:id", auth.RequirePermission(auth.ResourceMatches, auth.ActionRead), cfg.Matches.Get)
	matches.Post("/", auth.RequirePermission(auth.ResourceMatches, auth.ActionCreate), cfg.Matches.Create)
	matches.Put("/:id", auth.RequirePermission(auth.ResourceMatches, auth.ActionUpdate), cfg.Matches.Update)
	matches.Delete("/:id", auth.RequirePermission(auth.ResourceMatches, auth.ActionDelete), cfg.Matches.Delete)

	tactics := app.Group("/Tactic", bearer)
	tactics.Get("/", auth.RequirePermission(auth.ResourceTactics, auth.ActionRead), cfg.Tactics.List)
	tactics.Get("/:id", auth.RequirePermission(auth.ResourceTactics, auth.ActionRead), cfg.Tactics.Get)
	tactics.Post("/", auth.RequirePermission(auth.ResourceTactics, auth.ActionCreate), cfg.Tactics.Create)
	tactics.Put("/:id", auth.RequirePermission(auth.ResourceTactics, auth.ActionUpdate), cfg.Tactics.Update)
	tactics.Delete("/:id", auth.RequirePermission(auth.ResourceTactics, auth.ActionDelete), cfg.Tactics.Delete)

	statistics := app.Group("/Statistic", bearer)
	statistics.Get("/", auth.RequirePermission(auth.ResourceStatistics, auth.ActionRead), cfg.Statistics.List)
	statistics.Get("/:id", auth.RequirePermission(auth.ResourceStatistics, auth.ActionRead), cfg.Statistics.Get)
	statistics.Post("/", auth.RequirePermission(auth.ResourceStatistics, auth.ActionCreate), cfg.Statistics.Create)
	statistics.Put("/:id", auth.RequirePermission(auth.ResourceStatistics, auth.ActionUpdate), cfg.Statistics.Update)
	statistics.Delete("/:id", auth.RequirePermission(auth.ResourceStatistics, auth.ActionDelete), cfg.Statistics.Delete)

	app.Get("/Performance/team/:id", bearer,
		auth.RequirePermission(auth.ResourcePerformance, auth.ActionRead), cfg.Statistics.TeamPerformance)
}

package routes

import (
	"jobfit/internal/delivery/http/handler"
	"jobfit/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health  *handler.HealthHandler
	analyze *handler.AnalyzeHandler
	matches *handler.MatchHandler
	ws      *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, analyze *handler.AnalyzeHandler, matches *handler.MatchHandler, wsHandler *ws.Handler) *Registry {
	return &Registry{health: health, analyze: analyze, matches: matches, ws: wsHandler}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")

	if r.health != nil {
		r.health.RegisterRoutes(v1)
	}
	if r.analyze != nil {
		r.analyze.RegisterRoutes(v1)
	}
	if r.matches != nil {
		r.matches.RegisterRoutes(v1)
	}
	if r.ws != nil {
		v1.Get("/ws/matches", r.ws.HandleMatchesWS)
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jobfit/internal/config"
	"jobfit/internal/delivery/http/handler"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/delivery/http/routes"
	"jobfit/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP application over an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	newRegistry(c).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, func() error, error) {
	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *slog.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func newRegistry(c *Container) *routes.Registry {
	var checks []handler.Check
	if c.DB != nil {
		checks = append(checks, handler.Check{Name: "postgres", Required: true, Probe: c.DB.Ping})
	}
	if c.Cache != nil {
		checks = append(checks, handler.Check{Name: "redis", Probe: c.Cache.Ping})
	}

	var clients func() int
	var wsHandler *ws.Handler
	if c.Hub != nil {
		clients = c.Hub.ClientCount
		wsHandler = ws.NewHandler(c.Hub, c.Logger)
	}
	health := handler.NewHealthHandler(clients, checks...)

	if c.Matching == nil {
		return routes.NewRegistry(health, nil, nil, wsHandler)
	}

	deps := handler.MatchHandlerDeps{
		Matching:   c.Matching,
		Gaps:       c.SkillGap,
		Comparison: c.Comparison,
		Trends:     c.Trends,
		Batch:      c.Batch,
	}
	if c.Publisher != nil {
		deps.Publisher = c.Publisher
	}

	return routes.NewRegistry(
		health,
		handler.NewAnalyzeHandler(c.Matching, c.SkillGap),
		handler.NewMatchHandler(deps),
		wsHandler,
	)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

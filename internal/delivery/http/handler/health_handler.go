package handler

import (
	"context"
	"time"

	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/domain/matching"
	"jobfit/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// Check probes a dependency. Required checks turn the service unhealthy when
// they fail; the others only mark it degraded.
type Check struct {
	Name     string
	Required bool
	Probe    func(ctx context.Context) error
}

type HealthHandler struct {
	checks  []Check
	clients func() int
}

func NewHealthHandler(clients func() int, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, clients: clients}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	out := dto.HealthResponse{Status: "ok", Version: matching.Version, Checks: make(map[string]string, len(h.checks))}
	status := fiber.StatusOK
	for _, chk := range h.checks {
		if chk.Probe == nil {
			continue
		}
		if err := chk.Probe(ctx); err != nil {
			out.Checks[chk.Name] = "down"
			if chk.Required {
				out.Status = "unavailable"
				status = fiber.StatusServiceUnavailable
			} else if out.Status == "ok" {
				out.Status = "degraded"
			}
			continue
		}
		out.Checks[chk.Name] = "up"
	}
	if h.clients != nil {
		out.WSClients = h.clients()
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, out.Status, out)
	}
	return response.Success(c, status, response.MessageOK, out)
}

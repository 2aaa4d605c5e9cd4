package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger comprueba la conexión a la base de datos (*pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
	Database    string `json:"database"`
}

// HealthHandler reporta el estado del proceso y de PostgreSQL.
type HealthHandler struct {
	db      Pinger
	service string
	env     string
	started time.Time
}

// NewHealthHandler construye el handler. db puede ser nil.
func NewHealthHandler(db Pinger, service, env string) *HealthHandler {
	return &HealthHandler{db: db, service: service, env: env, started: time.Now()}
}

// Check godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	out := HealthResponse{
		Status:      "ok",
		Service:     h.service,
		Environment: h.env,
		Uptime:      time.Since(h.started).Round(time.Second).String(),
		Database:    "up",
	}
	if h.db == nil {
		out.Database = "unknown"
		return c.JSON(out)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		out.Status = "degraded"
		out.Database = "down"
		return c.Status(fiber.StatusServiceUnavailable).JSON(out)
	}
	return c.JSON(out)
}

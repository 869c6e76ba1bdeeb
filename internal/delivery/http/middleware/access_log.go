package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type AccessLogMiddleware struct {
	logger *slog.Logger
}

func NewAccessLogMiddleware(logger *slog.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()

		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		m.logger.Log(c.Context(), level, "http access",
			"rid", rid,
			"ip", c.IP(),
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"latency", time.Since(start),
			"req_bytes", c.Request().Header.ContentLength(),
			"resp_bytes", len(c.Response().Body()),
			"ua", c.Get("User-Agent"),
		)

		return err
	}
}

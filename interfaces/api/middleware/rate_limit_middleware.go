package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"taskboard/infrastructure/redis"
	"taskboard/pkg/config"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// RateLimit enforces a fixed-window per-client request budget backed by
// Redis. On a Redis fault the request is let through: availability beats
// throttling accuracy here.
func RateLimit(client *redis.Client, cfg *config.RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		window := time.Now().Unix() / int64(cfg.Window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), window)

		count, err := client.CountInWindow(c.UserContext(), key, cfg.Window)
		if err != nil {
			logger.WarnContext(c.UserContext(), "Rate limiter unavailable", "error", err)
			return c.Next()
		}

		if count > int64(cfg.Max) {
			logger.WarnContext(c.UserContext(), "Rate limit exceeded", "ip", c.IP())
			return utils.TooManyRequestsResponse(c)
		}

		return c.Next()
	}
}

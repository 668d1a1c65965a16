package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"bantal_backend/internals/configs"
	helper "bantal_backend/internals/helpers"
)

// health check & scrape tidak ikut dihitung
func isHealthCheck(c *fiber.Ctx) bool {
	return c.Path() == "/health" || c.Path() == "/metrics"
}

// GlobalRateLimiter: per IP untuk semua endpoint API
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:          configs.GetEnvInt("RATE_LIMIT_MAX", 100),
		Expiration:   time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string { return c.IP() },
		Next:         isHealthCheck,
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "❌ Terlalu banyak permintaan. Silakan coba lagi nanti.")
		},
	})
}

// LoginRateLimiter: proxy password grant ke Keycloak, per IP + username
func LoginRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        configs.GetEnvInt("RATE_LIMIT_LOGIN_MAX", 5),
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|" + helper.LoginUsername(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "❌ Terlalu banyak percobaan login. Coba beberapa saat lagi.")
		},
	})
}

package middleware

import (
	"time"

	"github.com/fadilmartias/mock-interview/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	defaultRateMax    = 50
	defaultRateWindow = 1 * time.Minute
)

// RateLimiter caps requests per sliding window. Behind Authenticate the
// budget belongs to the user; otherwise it belongs to the client IP.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	if max <= 0 {
		max = defaultRateMax
	}
	if expiration <= 0 {
		expiration = defaultRateWindow
	}
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   expiration,
		KeyGenerator: rateKey,
		LimitReached: func(c *fiber.Ctx) error {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Too many requests",
				Details: fiber.Map{"retry_after_seconds": int(expiration.Seconds())},
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}

func rateKey(c *fiber.Ctx) string {
	if id := CurrentUserID(c); id != "" {
		return "user:" + id
	}
	return "ip:" + c.IP()
}

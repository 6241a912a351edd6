package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit caps requests per client IP in a fixed one-minute window
// backed by Redis. Fails open: without a cache, or on cache errors,
// traffic passes through untouched.
func RateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 60
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}

		key := "rl:api:" + c.IP() + ":" + strconv.FormatInt(time.Now().Unix()/60, 10)
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err != nil {
			return c.Next()
		}
		if cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "rate limit exceeded, try again later")
		}
		return c.Next()
	}
}

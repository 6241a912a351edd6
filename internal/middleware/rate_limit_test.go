package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func TestRateLimitRejectsAboveThreshold(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Use(RateLimit(cache, 2))
	app.Post("/api/transfer", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/api/transfer", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		statuses = append(statuses, resp.StatusCode)
		resp.Body.Close()
	}

	if statuses[0] != fiber.StatusOK || statuses[1] != fiber.StatusOK {
		t.Fatalf("first two requests should pass, got %v", statuses)
	}
	if statuses[2] != fiber.StatusTooManyRequests {
		t.Fatalf("third request should be limited, got %v", statuses)
	}
}

func TestRateLimitFailsOpenWithoutCache(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimit(nil, 1))
	app.Post("/api/transfer", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/api/transfer", strings.NewReader("{}"))
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

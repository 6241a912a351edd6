package rpc

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// envelope is the legacy request wrapper: the argument object arrives
// JSON-encoded a second time under "body".
type envelope struct {
	Body *string `json:"body"`
}

// Dispatch returns the fiber handler serving POST /api/:operation.
// The request body is either the legacy {"body": "<args json>"}
// envelope or the argument object itself; both decode to the same
// named-argument set.
func Dispatch(registry *Registry, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		operation := c.Params("operation")
		handler, ok := registry.Resolve(operation)
		if !ok {
			return fiber.NewError(http.StatusNotFound, "resource not found: "+operation)
		}

		payload := c.Body()
		var env envelope
		if err := json.Unmarshal(payload, &env); err == nil && env.Body != nil {
			payload = []byte(*env.Body)
		}

		args, err := ParseArgs(payload)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}

		logger.Debug("dispatching operation", slog.String("operation", operation))

		result, err := handler(c.UserContext(), args)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}
}

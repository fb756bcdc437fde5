package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"corplookup/internal/metrics"
)

// Metrics records a request counter and latency histogram for every route.
// The route pattern (not the raw path) is used as the label so company
// numbers and other parameters don't explode metric cardinality.
func Metrics() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The error handler runs after this middleware unwinds, so the
			// response status isn't final yet; derive it from the error.
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		metrics.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))

		return err
	}
}

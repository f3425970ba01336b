// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request once it completes. Client errors are logged at
// warn level and server errors at error level.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http.access")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Let the app error handler set the final status before we read it.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		kv := []interface{}{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"request_id", reqID,
		}
		if chainErr != nil {
			kv = append(kv, "error", chainErr.Error())
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("http", kv...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("http", kv...)
		default:
			log.Infow("http", kv...)
		}
		return nil
	}
}

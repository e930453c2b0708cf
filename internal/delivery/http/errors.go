package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eldercare/backend/internal/domain"
	"github.com/eldercare/backend/internal/health"
)

// statusFor maps a handler error to the status ErrorHandler will send
func statusFor(err error) int {
	var (
		verr *health.ValidationError
		ferr *fiber.Error
	)
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &ferr):
		return ferr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler maps service errors to JSON responses
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)

		var verr *health.ValidationError
		if errors.As(err, &verr) {
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": "Validation error",
				"errors":  verr.Messages,
			})
		}

		message := "Internal Server Error"
		var ferr *fiber.Error
		switch {
		case code == fiber.StatusNotFound && errors.Is(err, domain.ErrNotFound):
			message = "Health log not found"
		case errors.As(err, &ferr):
			message = ferr.Message
		default:
			logger.Error("Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": message,
		})
	}
}

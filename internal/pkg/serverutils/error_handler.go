// FILE: internal/pkg/serverutils/error_handler.go
package serverutils

import (
	"errors"

	"promptly-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service-layer errors bubbling out of the
// handlers into a consistent JSON error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *ValidationError
		switch {
		case errors.Is(err, service.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(404, "Resource not found"))
		case errors.Is(err, service.ErrCategoryInUse):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(409, err.Error()))
		case errors.Is(err, service.ErrValidation):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(422, err.Error()))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(422, validationErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
	}
}

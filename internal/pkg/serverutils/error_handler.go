package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// StatusCoder is implemented by errors that know their HTTP status.
type StatusCoder interface {
	StatusCode() int
}

// ErrorStatus maps an error to the status and message sent to clients.
// Errors without a status are internal and their text is not exposed.
func ErrorStatus(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), err.Error()
	}

	return fiber.StatusInternalServerError, "Internal server error"
}

// ErrorHandler is installed as fiber.Config.ErrorHandler.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code, message := ErrorStatus(err)
	return ctx.Status(code).JSON(ErrorResponse(code, message))
}

// ErrorHandlerMiddleware turns errors returned by handlers into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ErrorHandler(ctx, err)
	}
}

package serverutils

import "github.com/gofiber/fiber/v2"

// The REST surface follows the original contract: success payloads carry a
// human-readable "message" plus endpoint-specific fields, failures carry a
// single "error" string the client surfaces verbatim.

func SuccessResponse(message string, fields fiber.Map) fiber.Map {
	out := fiber.Map{"message": message}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

// ErrorHandlerMiddleware is the last-resort recovery point: anything a
// controller returns as a plain error becomes a 500 with the error payload
// shape the client expects.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		if fe, ok := err.(*fiber.Error); ok {
			return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(err.Error()))
	}
}

package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts the first failure
// into a 400 fiber error with a field-level message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
			"field %s failed on %s", strings.ToLower(fe.Field()), fe.Tag(),
		))
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type RegisterForm struct {
	Username        string `validate:"required,min=3,max=80"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Nickname        string `validate:"max=80"`
}

func (f *LoginForm) Validate() error {
	return friendly(validate.Struct(f))
}

func (f *RegisterForm) Validate() error {
	return friendly(validate.Struct(f))
}

// friendly turns the first validation failure into a message suitable for
// printing straight to the user.
func friendly(err error) error {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "email":
		return fmt.Errorf("%s must be a valid email address", field)
	case "min":
		return fmt.Errorf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Errorf("passwords do not match")
	}
	return fmt.Errorf("%s is invalid", field)
}

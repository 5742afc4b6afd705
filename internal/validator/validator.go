package validator

import (
	"github.com/go-playground/validator/v10"

	models "github.com/flightops/airdesk/internal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("departure", validateDeparture)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateDeparture(fl validator.FieldLevel) bool {
	_, err := models.ParseDeparture(fl.Field().String())
	return err == nil
}

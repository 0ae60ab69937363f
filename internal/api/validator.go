package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/caminohealth/camino-backend/internal/pkg/constants"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Not a struct; nothing to validate.
			return nil
		}
		return constants.NewCodedError(err.Error(), http.StatusBadRequest)
	}
	return nil
}

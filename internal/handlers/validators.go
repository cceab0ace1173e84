package handlers

import (
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators attaches the region and state catalog checks to
// gin's binding engine so request DTOs can declare them as binding tags.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("br_region", func(fl validator.FieldLevel) bool {
		return domain.IsValidRegion(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("br_state", func(fl validator.FieldLevel) bool {
		return domain.IsValidState(fl.Field().String())
	})
}

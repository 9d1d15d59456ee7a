package dto

import (
	"strings"

	"github.com/hotelops/frontdesk_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs request-level validations on gin's
// binding validator. Call once at startup before serving.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("cashsource", validCashSource)
}

// validCashSource accepts any known cash source, case-insensitively, so
// binding rejects typos before the service layer sees them.
func validCashSource(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	for _, source := range domain.KnownCashSources {
		if strings.EqualFold(raw, string(source)) {
			return true
		}
	}
	return false
}

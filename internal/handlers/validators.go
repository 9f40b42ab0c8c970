package handlers

import (
	"errors"

	"github.com/hsolorzn/finve_backend/internal/apperrors"
	"github.com/hsolorzn/finve_backend/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the domain-specific binding validators
// on gin's validator engine. Must run once before routes are served.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("ratetype", func(fl validator.FieldLevel) bool {
		return domain.RateType(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).IsValid()
	})
}

// bindingErrorFields flattens a binding error into per-field messages so
// malformed input always surfaces field names, not reflection noise.
func bindingErrorFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "failed validation on '" + fe.Tag() + "'"
	}
	return fields
}

// validationErrorResponse shapes a validation failure (from binding or from
// the service layer) into the standard 400 payload.
func validationErrorResponse(err error) gin.H {
	var vErr *apperrors.ValidationError
	if errors.As(err, &vErr) {
		return gin.H{"error": "Validation failed", "fields": vErr.Fields}
	}
	if fields := bindingErrorFields(err); fields != nil {
		return gin.H{"error": "Validation failed", "fields": fields}
	}
	return gin.H{"error": err.Error()}
}

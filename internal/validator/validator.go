// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/kuanensn/italy/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_currency", validateCurrency)
		_ = v.RegisterValidation("expense_category", validateCategory)
		_ = v.RegisterValidation("paid_by", validatePaidBy)
		_ = v.RegisterValidation("payer_filter", validatePayerFilter)
	}
}

func validateCurrency(fl validator.FieldLevel) bool {
	return models.Currency(fl.Field().String()).Valid()
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validatePaidBy(fl validator.FieldLevel) bool {
	return models.Payer(fl.Field().String()).Valid()
}

func validatePayerFilter(fl validator.FieldLevel) bool {
	return models.PayerFilter(fl.Field().String()).Valid()
}

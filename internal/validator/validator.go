// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"wealthyways/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("optional_iso_date", validateOptionalISODate)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("nonzero_amount", validateNonZeroAmount)
	}
}

func validateMonthKey(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateOptionalISODate accepts an empty string as "no date".
func validateOptionalISODate(fl validator.FieldLevel) bool {
	return fl.Field().String() == "" || validateISODate(fl)
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(fl.Field().String()).Valid()
}

func validateNonZeroAmount(fl validator.FieldLevel) bool {
	return fl.Field().Float() != 0
}

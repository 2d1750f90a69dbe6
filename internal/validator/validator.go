// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"kasiswa/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("payment_month", validatePaymentMonth)
		_ = v.RegisterValidation("payment_year", validatePaymentYear)
		_ = v.RegisterValidation("student_status", validateStudentStatus)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validatePaymentMonth(fl validator.FieldLevel) bool {
	return models.IsPaymentMonth(fl.Field().String())
}

func validatePaymentYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 2020 && year <= 2030
}

func validateStudentStatus(fl validator.FieldLevel) bool {
	switch models.StudentStatus(fl.Field().String()) {
	case models.StudentStatusActive, models.StudentStatusInactive:
		return true
	}
	return false
}

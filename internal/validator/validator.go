// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("report_period", validateReportPeriod)
		_ = v.RegisterValidation("granularity", validateGranularity)
		_ = v.RegisterValidation("sort_field", validateSortField)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
		_ = v.RegisterValidation("date_window", validateDateWindow)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateReportPeriod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "current-month", "last-month", "current-quarter", "current-year", "last-year", "all-time":
		return true
	}
	return false
}

func validateGranularity(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "month", "year":
		return true
	}
	return false
}

func validateSortField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date", "amount", "category":
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}

func validateDateWindow(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "today", "week", "month", "year":
		return true
	}
	return false
}

// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 currency codes accepted for accounts.
var validCurrencies = map[string]bool{
	"AUD": true, "BRL": true, "CAD": true, "CHF": true, "CNY": true,
	"CZK": true, "DKK": true, "EUR": true, "GBP": true, "HKD": true,
	"HUF": true, "IDR": true, "ILS": true, "INR": true, "JPY": true,
	"KRW": true, "MXN": true, "MYR": true, "NOK": true, "NZD": true,
	"PHP": true, "PLN": true, "SEK": true, "SGD": true, "THB": true,
	"TRY": true, "TWD": true, "USD": true, "VND": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterWith(v)
	}
}

// RegisterWith registers the custom validators on v.
func RegisterWith(v *validator.Validate) {
	_ = v.RegisterValidation("iso4217", validateISO4217)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("account_type", oneOf("checking", "savings", "credit_card", "cash"))
	_ = v.RegisterValidation("category_type", oneOf("income", "expense"))
	_ = v.RegisterValidation("budget_type", oneOf("account-monthly", "category-envelope", "goal-based", "scheduled-expense"))
	_ = v.RegisterValidation("budget_scope", oneOf("account", "category", "mixed"))
	_ = v.RegisterValidation("budget_status", oneOf("active", "inactive", "archived"))
	_ = v.RegisterValidation("enforcement_level", oneOf("none", "warning", "strict"))
	_ = v.RegisterValidation("period_type", oneOf("weekly", "monthly", "quarterly", "yearly", "custom"))
	_ = v.RegisterValidation("association_type", oneOf("spending", "source", "savings"))
	_ = v.RegisterValidation("recommendation_status", oneOf("pending", "dismissed", "applied", "expired"))
	_ = v.RegisterValidation("recommendation_type", oneOf("create_budget"))
	_ = v.RegisterValidation("recommendation_priority", oneOf("low", "medium", "high"))
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

// validateISODate accepts calendar dates in YYYY-MM-DD form.
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func oneOf(values ...string) validator.Func {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return func(fl validator.FieldLevel) bool {
		return allowed[fl.Field().String()]
	}
}

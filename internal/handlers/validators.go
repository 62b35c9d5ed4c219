package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// currencyCodePattern accepts a 3-letter code in either case; services
// canonicalize to upper.
var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// registerCustomValidators installs the `currency` binding tag on gin's
// validator engine.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
			return currencyCodePattern.MatchString(fl.Field().String())
		})
	}
}

package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for actor
	_ = v.RegisterValidation("actor", validateActor)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "actor":
			errs[field] = "Invalid actor"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "dive":
			errs[field] = "Contains an invalid element"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// ValidActors defines the supported game actors
var ValidActors = map[string]bool{
	"human":    true,
	"computer": true,
}

// Custom validation function for actor
func validateActor(fl validator.FieldLevel) bool {
	actor := fl.Field().String()
	// Allow empty if not required (handled by 'required' tag if needed)
	if actor == "" {
		return true
	}
	return ValidActors[strings.ToLower(actor)]
}

package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance, built once
var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator. Later calls are no-ops.
func InitValidator() {
	validateOnce.Do(func() {
		validate = newValidator()
	})
}

func newValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names so clients see the keys they sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("puzzledate", validatePuzzleDate)
	_ = v.RegisterValidation("nocontrol", validateNoControl)
	_ = v.RegisterValidation("risktier", validateRiskTier)

	return &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the JSON path of the offending field (e.g. "tasks[2].timeCost")
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
		field := fieldPath(e)
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "risktier":
			errs[field] = "Must be one of: low medium high"
		case "unique":
			errs[field] = "Values must be unique"
		case "puzzledate":
			errs[field] = "Must be a date formatted YYYY-MM-DD"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "nocontrol":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// fieldPath drops the root struct name from the namespace
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// validatePuzzleDate accepts empty strings; pair with required when the date is mandatory
func validatePuzzleDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse(domain.DateLayout, value)
	return err == nil
}

// validateNoControl rejects strings containing control characters
func validateNoControl(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// validateRiskTier accepts the known task risk tiers
func validateRiskTier(fl validator.FieldLevel) bool {
	return domain.RiskTier(fl.Field().String()).Valid()
}

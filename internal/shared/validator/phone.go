package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidatePhone validates a member phone number
func ValidatePhone(fl validator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

// IsPhone reports whether s is an acceptable phone number. Stored records
// carry free-form numbers ("999-000-1111", "+91 99900 01111"), so any
// non-blank value is accepted and matched verbatim.
func IsPhone(s string) bool {
	return strings.TrimSpace(s) != ""
}

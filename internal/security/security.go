// Package security holds input cleaning helpers shared by the auth endpoints
// and the seed command.
package security

import (
	"regexp"
	"strings"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	markupCharsRe = regexp.MustCompile(`[<>"']`)

	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[@$!%*?&]`)
)

// SanitizeInput strips script blocks and markup characters from free-text
// input and trims surrounding whitespace. It is applied to every field that
// originates from a form before the value reaches a store.
func SanitizeInput(input string) string {
	cleaned := scriptBlockRe.ReplaceAllString(input, "")
	cleaned = markupCharsRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// FieldError describes a single validation failure for a named field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidatePasswordStrength checks a candidate password against the account
// policy and returns one error per unmet requirement. An empty slice means
// the password is acceptable.
func ValidatePasswordStrength(password string) []FieldError {
	var errs []FieldError

	if len(password) < 8 {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 8 characters long"})
	}
	if !lowerRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Message: "must contain at least one lowercase letter"})
	}
	if !upperRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Message: "must contain at least one uppercase letter"})
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Message: "must contain at least one number"})
	}
	if !specialRe.MatchString(password) {
		errs = append(errs, FieldError{Field: "password", Message: "must contain at least one special character (@$!%*?&)"})
	}

	return errs
}

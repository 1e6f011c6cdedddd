package validation

import (
	"errors"
	"regexp"
)

// emailPattern requires local@domain with a dot in the domain and no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail validates email format and length
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email address is required")
	}

	// RFC 5321: total address max 254 characters
	if len(email) > 254 {
		return errors.New("email address is too long (max 254 characters)")
	}

	if !emailPattern.MatchString(email) {
		return errors.New("invalid email address")
	}

	return nil
}

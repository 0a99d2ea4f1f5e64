package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength    = 6
	maxDescriptionLength = 50
	minLedgerNameLength  = 2
	maxLedgerNameLength  = 20
	maxCategoryName      = 30
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", validationError("invalid email address")
	}
	return email, nil
}

func validatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return validationError("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// checkLength trims s and checks its length in characters.
func checkLength(field, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n < min {
		if min == 1 {
			return "", validationError("%s is required", field)
		}
		return "", validationError("%s must be at least %d characters", field, min)
	}
	if n > max {
		return "", validationError("%s must be at most %d characters", field, max)
	}
	return s, nil
}

func normalizeCurrency(currency string) (string, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return "", validationError("currency must be a 3-letter code")
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return "", validationError("currency must be a 3-letter code")
		}
	}
	return currency, nil
}

package service

import (
	"regexp"
	"strings"
	"unicode"
	"wallet-settlement/internal/model"
)

var (
	phoneNumberPattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)
	requestIDPattern   = regexp.MustCompile(`^[A-Za-z0-9_-]{8,128}$`)
)

// normalizePhoneNumber strips whitespace and checks the result looks like an
// E.164-ish mobile number.
func normalizePhoneNumber(raw string) (string, error) {
	phone := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if !phoneNumberPattern.MatchString(phone) {
		return "", model.ErrInvalidPhoneNumber
	}
	return phone, nil
}

func validateRequestID(id string) error {
	if !requestIDPattern.MatchString(id) {
		return model.ErrInvalidRequestID
	}
	return nil
}

package util

import (
	"regexp"
	"strings"
)

// KYC field patterns. These match what the registration forms collect, so a
// record that passes here is storable as-is.
var (
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	pinCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func IsValidPinCode(pinCode string) bool {
	return pinCodePattern.MatchString(pinCode)
}

func IsValidIFSC(code string) bool {
	return ifscPattern.MatchString(strings.ToUpper(code))
}

func IsValidPAN(pan string) bool {
	return panPattern.MatchString(strings.ToUpper(pan))
}

// FieldErrors accumulates per-field validation failures. Construct with
// FieldErrors{}; a nil map cannot record errors.
type FieldErrors map[string]string

func (f FieldErrors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = "is required"
	}
}

func (f FieldErrors) Match(field, value string, valid func(string) bool, msg string) {
	if value == "" {
		return
	}
	if !valid(value) {
		f[field] = msg
	}
}

func (f FieldErrors) OK() bool {
	return len(f) == 0
}

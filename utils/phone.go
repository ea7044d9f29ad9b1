package utils

import (
	"regexp"
	"strings"
)

const countryPrefix = "+254"

var (
	kenyanPhonePattern = regexp.MustCompile(`^(?:\+254|0)7\d{8}$`)
	emailPattern       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsValidKenyanPhone reports whether a number looks like a Kenyan mobile
// number, e.g. 0722XXXXXX or +254722XXXXXX.
func IsValidKenyanPhone(phone string) bool {
	return kenyanPhonePattern.MatchString(phone)
}

// NormalizePhone rewrites a leading 0 to the country prefix. Numbers that
// already carry the prefix pass through unchanged.
func NormalizePhone(phone string) string {
	if strings.HasPrefix(phone, "0") {
		return countryPrefix + phone[1:]
	}
	return phone
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

package email

import (
	"strings"
	"unicode"
)

// Normalize returns the canonical form of an email address: surrounding
// whitespace stripped and the whole address lowercased. Uniqueness checks
// and event payloads work on this form only.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DeriveNameFromEmail guesses a first and last name from the local part of
// an address, used to prefill the profile on registration.
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

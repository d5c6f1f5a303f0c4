package model

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// ValidateEmail reports whether the address looks like an email. The check
// is intentionally loose; the provider is the real authority.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword returns an error message for the user, or "" if the
// password is acceptable.
func ValidatePassword(password string) string {
	if len(password) < 6 {
		return "Password must be at least 6 characters long"
	}
	if len(password) > 50 {
		return "Password must not exceed 50 characters"
	}
	return ""
}

// ValidateUsername returns an error message for the user, or "" if the
// username is acceptable.
func ValidateUsername(username string) string {
	if len(username) < 3 {
		return "Username must be at least 3 characters long"
	}
	if len(username) > 20 {
		return "Username must not exceed 20 characters"
	}
	if !usernameRegex.MatchString(username) {
		return "Username can only contain letters, numbers, and underscores"
	}
	return ""
}

// ValidateRequired returns an error message when value is empty or blank.
func ValidateRequired(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return fieldName + " is required"
	}
	return ""
}

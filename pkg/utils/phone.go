package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// Regex to remove non-digit characters
	digitsOnlyRegex = regexp.MustCompile(`[^0-9]`)
)

// NormalizePhoneNumber strips separators and country-code prefixes from a
// submitted phone number and validates the remaining digit count
func NormalizePhoneNumber(phone string) (string, error) {
	if phone == "" {
		return "", errors.New("phone number cannot be empty")
	}

	// Remove all non-digit characters (hyphens, spaces, parentheses, etc.)
	normalized := digitsOnlyRegex.ReplaceAllString(phone, "")

	// Handle the 00 international dialing prefix
	if strings.HasPrefix(normalized, "00") {
		normalized = normalized[2:]
	}

	if len(normalized) < 10 || len(normalized) > 15 {
		return "", errors.New("phone number must contain 10 to 15 digits")
	}

	return normalized, nil
}

// FormatPhoneNumberForDisplay formats a normalized 10-digit phone number
// Example: "9876543210" -> "987-654-3210"
func FormatPhoneNumberForDisplay(phone string) string {
	if len(phone) != 10 {
		return phone // Return as-is if not a 10-digit number
	}

	return phone[:3] + "-" + phone[3:6] + "-" + phone[6:]
}

package utils

import (
	"testing"
)

func TestNormalizePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		shouldError bool
	}{
		{
			name:     "formatted mobile",
			input:    "987-654-3210",
			expected: "9876543210",
		},
		{
			name:     "unformatted mobile",
			input:    "9876543210",
			expected: "9876543210",
		},
		{
			name:     "international format +91",
			input:    "+91 9876543210",
			expected: "919876543210",
		},
		{
			name:     "international dialing prefix 00",
			input:    "00919876543210",
			expected: "919876543210",
		},
		{
			name:     "with spaces",
			input:    "98765 43210",
			expected: "9876543210",
		},
		{
			name:     "with parentheses",
			input:    "(987) 654-3210",
			expected: "9876543210",
		},
		{
			name:        "too short",
			input:       "12345",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "too long",
			input:       "1234567890123456",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "letters only",
			input:       "call me",
			expected:    "",
			shouldError: true,
		},
		{
			name:        "empty string",
			input:       "",
			expected:    "",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizePhoneNumber(tt.input)

			if tt.shouldError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFormatPhoneNumberForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ten digit number",
			input:    "9876543210",
			expected: "987-654-3210",
		},
		{
			name:     "non ten digit number returned as-is",
			input:    "919876543210",
			expected: "919876543210",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatPhoneNumberForDisplay(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

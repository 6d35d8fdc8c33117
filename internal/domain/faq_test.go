package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFAQCategory(t *testing.T) {
	valid := []string{"general", "loans", "insurance", "investments", "tax"}
	for _, raw := range valid {
		parsed, err := ParseFAQCategory(raw)
		require.NoError(t, err)
		assert.Equal(t, FAQCategory(raw), parsed)
	}

	for _, raw := range []string{"", "all", "crypto", "Loans"} {
		_, err := ParseFAQCategory(raw)
		assert.Error(t, err, "%q should not parse as a concrete category", raw)
	}
}

func TestParseFAQCategoryFilter(t *testing.T) {
	// Empty and "all" mean unfiltered
	for _, raw := range []string{"", "all"} {
		filter, err := ParseFAQCategoryFilter(raw)
		require.NoError(t, err)
		assert.Nil(t, filter)
	}

	filter, err := ParseFAQCategoryFilter("tax")
	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.Equal(t, FAQCategoryTax, *filter)

	_, err = ParseFAQCategoryFilter("crypto")
	assert.Error(t, err)
}

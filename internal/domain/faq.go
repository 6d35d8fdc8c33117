package domain

import (
	"fmt"
	"time"
)

// FAQCategory is the topic grouping for FAQ entries
type FAQCategory string

const (
	FAQCategoryGeneral     FAQCategory = "general"
	FAQCategoryLoans       FAQCategory = "loans"
	FAQCategoryInsurance   FAQCategory = "insurance"
	FAQCategoryInvestments FAQCategory = "investments"
	FAQCategoryTax         FAQCategory = "tax"
)

// ParseFAQCategory validates a raw category value
func ParseFAQCategory(raw string) (FAQCategory, error) {
	switch FAQCategory(raw) {
	case FAQCategoryGeneral, FAQCategoryLoans, FAQCategoryInsurance, FAQCategoryInvestments, FAQCategoryTax:
		return FAQCategory(raw), nil
	}
	return "", fmt.Errorf("unknown FAQ category %q", raw)
}

// ParseFAQCategoryFilter interprets a category query parameter. Empty and
// "all" mean no filter.
func ParseFAQCategoryFilter(raw string) (*FAQCategory, error) {
	if raw == "" || raw == "all" {
		return nil, nil
	}
	category, err := ParseFAQCategory(raw)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FAQEntry represents a question/answer pair with display ordering
type FAQEntry struct {
	ID        string      `json:"id"`
	Category  FAQCategory `json:"category"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	Highlight *string     `json:"highlight,omitempty"`
	Order     int         `json:"order"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// FAQRequest is the admin create/update payload
type FAQRequest struct {
	Category  string  `json:"category"`
	Question  string  `json:"question"`
	Answer    string  `json:"answer"`
	Highlight *string `json:"highlight,omitempty"`
	Order     *int    `json:"order,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// FAQToggleRequest is the active-flag payload
type FAQToggleRequest struct {
	IsActive bool `json:"isActive"`
}

// FAQOrderRequest is the display-order payload
type FAQOrderRequest struct {
	Order int `json:"order"`
}

package domain

import (
	"fmt"
	"time"
)

// SubmissionStatus is the workflow state of a contact submission
type SubmissionStatus string

const (
	StatusNew        SubmissionStatus = "new"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusResolved   SubmissionStatus = "resolved"
	StatusClosed     SubmissionStatus = "closed"
)

// AllSubmissionStatuses returns every status in workflow order
func AllSubmissionStatuses() []SubmissionStatus {
	return []SubmissionStatus{StatusNew, StatusInProgress, StatusResolved, StatusClosed}
}

// ParseSubmissionStatus validates a raw status value
func ParseSubmissionStatus(raw string) (SubmissionStatus, error) {
	switch SubmissionStatus(raw) {
	case StatusNew, StatusInProgress, StatusResolved, StatusClosed:
		return SubmissionStatus(raw), nil
	}
	return "", fmt.Errorf("unknown submission status %q", raw)
}

// SubmittedBy identifies the authenticated submitter, when one was present
type SubmittedBy struct {
	Sub   string `json:"sub"`
	Email string `json:"email,omitempty"`
}

// ContactSubmission represents a contact form record
type ContactSubmission struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Subject     string           `json:"subject"`
	Message     string           `json:"message"`
	Status      SubmissionStatus `json:"status"`
	IsRead      bool             `json:"isRead"`
	AdminNotes  *string          `json:"adminNotes,omitempty"`
	SubmittedBy *SubmittedBy     `json:"submittedBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	ResolvedAt  *time.Time       `json:"resolvedAt,omitempty"`
}

// ContactSubmissionRequest is the public submit payload
type ContactSubmissionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactStatusUpdateRequest is the admin status-change payload
type ContactStatusUpdateRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// SubmissionFilter restricts the admin listing
type SubmissionFilter struct {
	Status *SubmissionStatus
	IsRead *bool
	Search string // matched against name, email and subject
}

// PaginatedSubmissions is the admin listing result with pagination metadata
type PaginatedSubmissions struct {
	Items      []*ContactSubmission `json:"items"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"pageSize"`
	TotalCount int64                `json:"totalCount"`
	TotalPages int64                `json:"totalPages"`
}

// ContactStatistics aggregates submission counts for the admin dashboard
type ContactStatistics struct {
	Total     int64                      `json:"total"`
	ByStatus  map[SubmissionStatus]int64 `json:"byStatus"`
	Unread    int64                      `json:"unread"`
	Today     int64                      `json:"today"`
	ThisWeek  int64                      `json:"thisWeek"`
	ThisMonth int64                      `json:"thisMonth"`
}

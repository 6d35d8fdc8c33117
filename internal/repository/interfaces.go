package repository

import (
	"context"

	"cashper-api/internal/domain"
)

// SubmissionRepository defines the interface for contact submission persistence
type SubmissionRepository interface {
	// Insert stores a new submission; the store assigns id and timestamps
	Insert(ctx context.Context, submission *domain.ContactSubmission) error

	// GetByID retrieves a submission by id, nil when it does not exist
	GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error)

	// ListPage returns one page of submissions plus the total matching count.
	// page is 1-indexed, ordering is created_at descending.
	ListPage(ctx context.Context, filter domain.SubmissionFilter, page, pageSize int) ([]*domain.ContactSubmission, int64, error)

	// UpdateStatus sets the status and optionally admin notes, refreshing
	// updated_at from the store clock. Returns nil when the id does not exist.
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus, adminNotes *string) (*domain.ContactSubmission, error)

	// MarkRead flags a submission as read; false when the id does not exist
	MarkRead(ctx context.Context, id string) (bool, error)

	// Statistics aggregates submission counts by status and time window
	Statistics(ctx context.Context) (*domain.ContactStatistics, error)
}

// FAQRepository defines the interface for FAQ entry persistence
type FAQRepository interface {
	// Insert stores a new entry; the store assigns id and timestamps
	Insert(ctx context.Context, entry *domain.FAQEntry) error

	// GetByID retrieves an entry by id, nil when it does not exist
	GetByID(ctx context.Context, id string) (*domain.FAQEntry, error)

	// List returns entries ordered by display order then creation time.
	// category nil means all categories; activeOnly excludes inactive entries.
	List(ctx context.Context, category *domain.FAQCategory, activeOnly bool) ([]*domain.FAQEntry, error)

	// Update replaces the editable fields of an entry. Returns nil when the
	// id does not exist.
	Update(ctx context.Context, id string, entry *domain.FAQEntry) (*domain.FAQEntry, error)

	// SetActive toggles visibility without touching the other fields
	SetActive(ctx context.Context, id string, active bool) (*domain.FAQEntry, error)

	// SetOrder moves an entry to a new display position
	SetOrder(ctx context.Context, id string, order int) (*domain.FAQEntry, error)
}

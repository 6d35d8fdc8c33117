package repository

import (
	"context"
	"fmt"
	"strings"

	"cashper-api/internal/domain"
	"cashper-api/pkg/database"
	"github.com/jackc/pgx/v5"
)

const submissionColumns = `id, name, email, phone, subject, message, status, is_read,
	admin_notes, submitted_by_sub, submitted_by_email, created_at, updated_at, resolved_at`

// submissionRepository handles contact submission persistence with PostgreSQL
type submissionRepository struct {
	db *database.PostgresDB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *database.PostgresDB) SubmissionRepository {
	return &submissionRepository{
		db: db,
	}
}

// Insert stores a new submission. The database assigns the id and both
// timestamps so callers cannot forge them.
func (r *submissionRepository) Insert(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, email, phone, subject, message, status, submitted_by_sub, submitted_by_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	var sub, email *string
	if submission.SubmittedBy != nil {
		sub = &submission.SubmittedBy.Sub
		email = &submission.SubmittedBy.Email
	}

	err := r.db.Pool.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.Subject,
		submission.Message,
		submission.Status,
		sub,
		email,
	).Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert contact submission: %w", err)
	}

	return nil
}

// GetByID retrieves a submission by id
func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM contact_submissions
		WHERE id::text = $1
	`, submissionColumns)

	submission, err := scanSubmission(r.db.GetReadPool().QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact submission: %w", err)
	}

	return submission, nil
}

// ListPage returns one page of submissions plus the total matching count.
// The page fetch and the count are two queries and are not guaranteed
// mutually consistent under concurrent writes.
func (r *submissionRepository) ListPage(ctx context.Context, filter domain.SubmissionFilter, page, pageSize int) ([]*domain.ContactSubmission, int64, error) {
	where, args := buildSubmissionFilter(filter)

	countQuery := "SELECT COUNT(*) FROM contact_submissions" + where
	var total int64
	if err := r.db.GetReadPool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact submissions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM contact_submissions%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, submissionColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.GetReadPool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*domain.ContactSubmission
	for rows.Next() {
		submission, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact submission row: %w", err)
		}
		submissions = append(submissions, submission)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error reading contact submission rows: %w", err)
	}

	return submissions, total, nil
}

// UpdateStatus sets the status, always refreshing updated_at from the database
// clock. resolved_at is stamped on the transition into resolved. When no notes
// are supplied the existing notes are kept.
func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus, adminNotes *string) (*domain.ContactSubmission, error) {
	query := fmt.Sprintf(`
		UPDATE contact_submissions
		SET status = $2,
			admin_notes = COALESCE($3, admin_notes),
			updated_at = clock_timestamp(),
			resolved_at = CASE WHEN $2 = 'resolved' THEN clock_timestamp() ELSE resolved_at END
		WHERE id::text = $1
		RETURNING %s
	`, submissionColumns)

	submission, err := scanSubmission(r.db.Pool.QueryRow(ctx, query, id, status, adminNotes))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	return submission, nil
}

// MarkRead flags a submission as read
func (r *submissionRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	result, err := r.db.Pool.Exec(ctx, `
		UPDATE contact_submissions
		SET is_read = TRUE
		WHERE id::text = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark submission read: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Statistics aggregates submission counts by status and by time window
func (r *submissionRepository) Statistics(ctx context.Context) (*domain.ContactStatistics, error) {
	stats := &domain.ContactStatistics{
		ByStatus: make(map[domain.SubmissionStatus]int64, len(domain.AllSubmissionStatuses())),
	}

	// Every status must be present in the result, even at zero
	for _, status := range domain.AllSubmissionStatuses() {
		stats.ByStatus[status] = 0
	}

	rows, err := r.db.GetReadPool().Query(ctx, `
		SELECT status, COUNT(*)
		FROM contact_submissions
		GROUP BY status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate submissions by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.SubmissionStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count row: %w", err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading status count rows: %w", err)
	}

	err = r.db.GetReadPool().QueryRow(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE NOT is_read),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now())),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('week', now())),
			COUNT(*) FILTER (WHERE created_at >= date_trunc('month', now()))
		FROM contact_submissions
	`).Scan(&stats.Unread, &stats.Today, &stats.ThisWeek, &stats.ThisMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate submission windows: %w", err)
	}

	return stats, nil
}

// buildSubmissionFilter renders the WHERE clause for a listing filter
func buildSubmissionFilter(filter domain.SubmissionFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.IsRead != nil {
		args = append(args, *filter.IsRead)
		conditions = append(conditions, fmt.Sprintf("is_read = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR subject ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// scanSubmission reads one submission row
func scanSubmission(row pgx.Row) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{}
	var sub, email *string

	err := row.Scan(
		&submission.ID,
		&submission.Name,
		&submission.Email,
		&submission.Phone,
		&submission.Subject,
		&submission.Message,
		&submission.Status,
		&submission.IsRead,
		&submission.AdminNotes,
		&sub,
		&email,
		&submission.CreatedAt,
		&submission.UpdatedAt,
		&submission.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if sub != nil {
		submission.SubmittedBy = &domain.SubmittedBy{Sub: *sub}
		if email != nil {
			submission.SubmittedBy.Email = *email
		}
	}

	return submission, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"cashper-api/internal/domain"
	"cashper-api/pkg/database"
	"github.com/jackc/pgx/v5"
)

const faqColumns = `id, category, question, answer, highlight, display_order, is_active, created_at, updated_at`

// faqRepository handles FAQ entry persistence with PostgreSQL
type faqRepository struct {
	db *database.PostgresDB
}

// NewFAQRepository creates a new FAQ repository
func NewFAQRepository(db *database.PostgresDB) FAQRepository {
	return &faqRepository{
		db: db,
	}
}

// Insert stores a new FAQ entry
func (r *faqRepository) Insert(ctx context.Context, entry *domain.FAQEntry) error {
	query := `
		INSERT INTO faqs (category, question, answer, highlight, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		entry.Category,
		entry.Question,
		entry.Answer,
		entry.Highlight,
		entry.Order,
		entry.IsActive,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert FAQ entry: %w", err)
	}

	return nil
}

// GetByID retrieves an FAQ entry by id
func (r *faqRepository) GetByID(ctx context.Context, id string) (*domain.FAQEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM faqs WHERE id::text = $1`, faqColumns)

	entry, err := scanFAQ(r.db.GetReadPool().QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get FAQ entry: %w", err)
	}

	return entry, nil
}

// List returns entries ordered for display
func (r *faqRepository) List(ctx context.Context, category *domain.FAQCategory, activeOnly bool) ([]*domain.FAQEntry, error) {
	var conditions []string
	var args []interface{}

	if category != nil {
		args = append(args, *category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if activeOnly {
		conditions = append(conditions, "is_active")
	}

	query := fmt.Sprintf("SELECT %s FROM faqs", faqColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY display_order ASC, created_at ASC"

	rows, err := r.db.GetReadPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query FAQ entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.FAQEntry
	for rows.Next() {
		entry, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan FAQ row: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading FAQ rows: %w", err)
	}

	return entries, nil
}

// Update replaces the editable fields of an entry
func (r *faqRepository) Update(ctx context.Context, id string, entry *domain.FAQEntry) (*domain.FAQEntry, error) {
	query := fmt.Sprintf(`
		UPDATE faqs
		SET category = $2,
			question = $3,
			answer = $4,
			highlight = $5,
			display_order = $6,
			is_active = $7,
			updated_at = clock_timestamp()
		WHERE id::text = $1
		RETURNING %s
	`, faqColumns)

	updated, err := scanFAQ(r.db.Pool.QueryRow(ctx, query, id,
		entry.Category,
		entry.Question,
		entry.Answer,
		entry.Highlight,
		entry.Order,
		entry.IsActive,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update FAQ entry: %w", err)
	}

	return updated, nil
}

// SetActive toggles visibility, leaving the content fields untouched
func (r *faqRepository) SetActive(ctx context.Context, id string, active bool) (*domain.FAQEntry, error) {
	query := fmt.Sprintf(`
		UPDATE faqs
		SET is_active = $2, updated_at = clock_timestamp()
		WHERE id::text = $1
		RETURNING %s
	`, faqColumns)

	entry, err := scanFAQ(r.db.Pool.QueryRow(ctx, query, id, active))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set FAQ active flag: %w", err)
	}

	return entry, nil
}

// SetOrder moves an entry to a new display position
func (r *faqRepository) SetOrder(ctx context.Context, id string, order int) (*domain.FAQEntry, error) {
	query := fmt.Sprintf(`
		UPDATE faqs
		SET display_order = $2, updated_at = clock_timestamp()
		WHERE id::text = $1
		RETURNING %s
	`, faqColumns)

	entry, err := scanFAQ(r.db.Pool.QueryRow(ctx, query, id, order))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set FAQ order: %w", err)
	}

	return entry, nil
}

// scanFAQ reads one FAQ row
func scanFAQ(row pgx.Row) (*domain.FAQEntry, error) {
	entry := &domain.FAQEntry{}
	err := row.Scan(
		&entry.ID,
		&entry.Category,
		&entry.Question,
		&entry.Answer,
		&entry.Highlight,
		&entry.Order,
		&entry.IsActive,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

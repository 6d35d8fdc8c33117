package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`DROP TABLE IF EXISTS contact_submissions`,
		`DROP TABLE IF EXISTS faqs`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

		`CREATE TABLE IF NOT EXISTS contact_submissions (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			subject TEXT NOT NULL,
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'new'
				CHECK (status IN ('new', 'in_progress', 'resolved', 'closed')),
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			admin_notes TEXT,
			submitted_by_sub TEXT,
			submitted_by_email TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			resolved_at TIMESTAMPTZ,
			CHECK (updated_at >= created_at)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_contact_submissions_created_at
			ON contact_submissions (created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_submissions_status
			ON contact_submissions (status)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_submissions_is_read
			ON contact_submissions (is_read) WHERE NOT is_read`,

		`CREATE TABLE IF NOT EXISTS faqs (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			category TEXT NOT NULL DEFAULT 'general'
				CHECK (category IN ('general', 'loans', 'insurance', 'investments', 'tax')),
			question TEXT NOT NULL,
			answer TEXT NOT NULL,
			highlight TEXT,
			display_order INT NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_faqs_category_order
			ON faqs (category, display_order, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	faqs := []struct {
		category  string
		question  string
		answer    string
		highlight string
		order     int
	}{
		{
			category:  "loans",
			question:  "What documents do I need to apply for a personal loan?",
			answer:    "You need a government-issued photo ID, proof of address, your last three salary slips and six months of bank statements. Self-employed applicants should provide the last two years of tax returns instead of salary slips.",
			highlight: "Approval in 48 hours",
			order:     1,
		},
		{
			category:  "loans",
			question:  "How long does loan approval take?",
			answer:    "Most applications are reviewed within two working days. Once approved, funds are disbursed to your bank account within 24 hours.",
			order:     2,
		},
		{
			category: "insurance",
			question: "Can I buy health insurance for my parents?",
			answer:   "Yes. Senior citizen health plans cover parents up to 75 years of age at entry. Pre-existing conditions are covered after a waiting period that varies by insurer.",
			order:    1,
		},
		{
			category:  "investments",
			question:  "What is the minimum amount to start a mutual fund SIP?",
			answer:    "Most funds on our platform accept systematic investment plans starting at 500 per month. You can pause or change the amount at any time without penalty.",
			highlight: "Start with 500/month",
			order:     1,
		},
		{
			category: "tax",
			question: "When is the deadline for filing my income tax return?",
			answer:   "The due date for individual filers is July 31 of the assessment year. Late filings attract a fee, so we recommend uploading your documents at least two weeks in advance.",
			order:    1,
		},
		{
			category: "general",
			question: "How do I track the status of my application?",
			answer:   "Log in to your dashboard and open the Applications tab. Every application shows its current stage, and our support team updates the status as it progresses.",
			order:    1,
		},
	}

	for _, faq := range faqs {
		var highlight *string
		if faq.highlight != "" {
			highlight = &faq.highlight
		}
		_, err := conn.Exec(ctx, `
			INSERT INTO faqs (category, question, answer, highlight, display_order)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT DO NOTHING
		`, faq.category, faq.question, faq.answer, highlight, faq.order)
		if err != nil {
			return fmt.Errorf("failed to seed FAQ: %w", err)
		}
	}

	return nil
}

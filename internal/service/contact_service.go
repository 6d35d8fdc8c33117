package service

import (
	"context"
	"regexp"
	"strings"

	"cashper-api/internal/domain"
	"cashper-api/internal/repository"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/utils"

	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// maxPageNumber keeps (page-1)*pageSize within int range; pages past it read
// as empty rather than erroring
const maxPageNumber = 1 << 20

// ContactService enforces the business rules of the contact/FAQ module.
// Every admin-only operation takes the acting caller explicitly; nothing is
// inferred from ambient state.
type ContactService struct {
	submissions     repository.SubmissionRepository
	faqs            repository.FAQRepository
	cache           *CacheService // nil when Redis is not configured
	defaultPageSize int
	maxPageSize     int
	logger          *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(submissions repository.SubmissionRepository, faqs repository.FAQRepository, cache *CacheService, defaultPageSize, maxPageSize int, logger *zap.Logger) *ContactService {
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &ContactService{
		submissions:     submissions,
		faqs:            faqs,
		cache:           cache,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          logger,
	}
}

// Submit validates and stores a contact form submission. actor may be nil for
// anonymous submissions; when present the identity is attached to the record.
func (s *ContactService) Submit(ctx context.Context, req *domain.ContactSubmissionRequest, actor *domain.UserProfile) (*domain.ContactSubmission, error) {
	details := map[string]interface{}{}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		details["name"] = "name is required"
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		details["email"] = "email is required"
	} else if !emailRegex.MatchString(email) {
		details["email"] = "email must be a valid address"
	}

	phone, err := utils.NormalizePhoneNumber(req.Phone)
	if err != nil {
		details["phone"] = err.Error()
	}

	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		details["subject"] = "subject is required"
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		details["message"] = "message is required"
	}

	if len(details) > 0 {
		return nil, errors.NewValidationError("Validation failed", details)
	}

	submission := &domain.ContactSubmission{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Subject: subject,
		Message: message,
		Status:  domain.StatusNew,
	}
	if actor != nil {
		submission.SubmittedBy = &domain.SubmittedBy{Sub: actor.Sub, Email: actor.Email}
	}

	if err := s.submissions.Insert(ctx, submission); err != nil {
		s.logger.Error("Failed to insert contact submission", zap.Error(err))
		return nil, errors.NewInternalError("Failed to submit contact form", err)
	}

	if s.cache != nil {
		s.cache.InvalidateStatistics(ctx)
	}

	s.logger.Info("Contact submission created",
		zap.String("submission_id", submission.ID),
		zap.Bool("authenticated", actor != nil))

	return submission, nil
}

// GetSubmission fetches one submission for an admin, marking it read
func (s *ContactService) GetSubmission(ctx context.Context, id string, actor *domain.UserProfile) (*domain.ContactSubmission, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to fetch submission", err)
	}
	if submission == nil {
		return nil, errors.NewNotFoundError("Contact submission not found")
	}

	if !submission.IsRead {
		if _, err := s.submissions.MarkRead(ctx, id); err != nil {
			// Read tracking is best effort; the fetch itself succeeded
			s.logger.Warn("Failed to mark submission read",
				zap.String("submission_id", id),
				zap.Error(err))
		} else {
			submission.IsRead = true
			if s.cache != nil {
				s.cache.InvalidateStatistics(ctx)
			}
		}
	}

	return submission, nil
}

// UpdateStatus moves a submission to a new workflow status. Any status may
// move to any other; the workflow is operator-driven, not sequential.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, req *domain.ContactStatusUpdateRequest, actor *domain.UserProfile) (*domain.ContactSubmission, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	status, err := domain.ParseSubmissionStatus(req.Status)
	if err != nil {
		return nil, errors.NewFieldValidationError("status", "status must be one of: new, in_progress, resolved, closed")
	}

	submission, err := s.submissions.UpdateStatus(ctx, id, status, req.AdminNotes)
	if err != nil {
		return nil, errors.NewInternalError("Failed to update submission status", err)
	}
	if submission == nil {
		return nil, errors.NewNotFoundError("Contact submission not found")
	}

	if s.cache != nil {
		s.cache.InvalidateStatistics(ctx)
	}

	s.logger.Info("Submission status updated",
		zap.String("submission_id", id),
		zap.String("status", string(status)),
		zap.String("admin", actor.Sub))

	return submission, nil
}

// MarkRead flags a submission as read
func (s *ContactService) MarkRead(ctx context.Context, id string, actor *domain.UserProfile) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}

	ok, err := s.submissions.MarkRead(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to mark submission read", err)
	}
	if !ok {
		return errors.NewNotFoundError("Contact submission not found")
	}

	if s.cache != nil {
		s.cache.InvalidateStatistics(ctx)
	}

	return nil
}

// List returns one page of submissions with pagination metadata
func (s *ContactService) List(ctx context.Context, filter domain.SubmissionFilter, page, pageSize int, actor *domain.UserProfile) (*domain.PaginatedSubmissions, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if page > maxPageNumber {
		page = maxPageNumber
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	items, total, err := s.submissions.ListPage(ctx, filter, page, pageSize)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list submissions", err)
	}
	if items == nil {
		items = []*domain.ContactSubmission{}
	}

	return &domain.PaginatedSubmissions{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: (total + int64(pageSize) - 1) / int64(pageSize),
	}, nil
}

// Statistics returns the aggregate submission counts, served from cache when
// Redis is available
func (s *ContactService) Statistics(ctx context.Context, actor *domain.UserProfile) (*domain.ContactStatistics, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	fallback := func(ctx context.Context) (*domain.ContactStatistics, error) {
		return s.submissions.Statistics(ctx)
	}

	var stats *domain.ContactStatistics
	var err error
	if s.cache != nil {
		stats, err = s.cache.GetStatisticsWithCache(ctx, fallback)
	} else {
		stats, err = fallback(ctx)
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to fetch statistics", err)
	}

	return stats, nil
}

// CreateFAQ stores a new FAQ entry
func (s *ContactService) CreateFAQ(ctx context.Context, req *domain.FAQRequest, actor *domain.UserProfile) (*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	entry, appErr := s.buildFAQEntry(req)
	if appErr != nil {
		return nil, appErr
	}

	if err := s.faqs.Insert(ctx, entry); err != nil {
		s.logger.Error("Failed to insert FAQ entry", zap.Error(err))
		return nil, errors.NewInternalError("Failed to create FAQ", err)
	}

	if s.cache != nil {
		s.cache.InvalidateFAQs(ctx)
	}

	return entry, nil
}

// ListPublicFAQ returns the active FAQ entries, optionally filtered by
// category. No authentication is required.
func (s *ContactService) ListPublicFAQ(ctx context.Context, rawCategory string) ([]*domain.FAQEntry, error) {
	category, err := domain.ParseFAQCategoryFilter(rawCategory)
	if err != nil {
		return nil, errors.NewFieldValidationError("category", "category must be one of: all, general, loans, insurance, investments, tax")
	}

	fallback := func(ctx context.Context) ([]*domain.FAQEntry, error) {
		return s.faqs.List(ctx, category, true)
	}

	categoryKey := rawCategory
	if categoryKey == "" {
		categoryKey = "all"
	}

	var entries []*domain.FAQEntry
	if s.cache != nil {
		entries, err = s.cache.GetPublicFAQsWithCache(ctx, categoryKey, fallback)
	} else {
		entries, err = fallback(ctx)
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to fetch FAQs", err)
	}
	if entries == nil {
		entries = []*domain.FAQEntry{}
	}

	return entries, nil
}

// ListAllFAQ returns every FAQ entry including inactive ones
func (s *ContactService) ListAllFAQ(ctx context.Context, rawCategory string, actor *domain.UserProfile) ([]*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	category, err := domain.ParseFAQCategoryFilter(rawCategory)
	if err != nil {
		return nil, errors.NewFieldValidationError("category", "category must be one of: all, general, loans, insurance, investments, tax")
	}

	entries, err := s.faqs.List(ctx, category, false)
	if err != nil {
		return nil, errors.NewInternalError("Failed to fetch FAQs", err)
	}
	if entries == nil {
		entries = []*domain.FAQEntry{}
	}

	return entries, nil
}

// GetFAQ fetches one FAQ entry
func (s *ContactService) GetFAQ(ctx context.Context, id string, actor *domain.UserProfile) (*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	entry, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to fetch FAQ", err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("FAQ not found")
	}

	return entry, nil
}

// UpdateFAQ replaces the editable fields of an FAQ entry
func (s *ContactService) UpdateFAQ(ctx context.Context, id string, req *domain.FAQRequest, actor *domain.UserProfile) (*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	entry, appErr := s.buildFAQEntry(req)
	if appErr != nil {
		return nil, appErr
	}

	updated, err := s.faqs.Update(ctx, id, entry)
	if err != nil {
		return nil, errors.NewInternalError("Failed to update FAQ", err)
	}
	if updated == nil {
		return nil, errors.NewNotFoundError("FAQ not found")
	}

	if s.cache != nil {
		s.cache.InvalidateFAQs(ctx)
	}

	return updated, nil
}

// ToggleFAQ sets the active flag. Toggling off and back on restores
// visibility without altering question, answer or order.
func (s *ContactService) ToggleFAQ(ctx context.Context, id string, isActive bool, actor *domain.UserProfile) (*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	entry, err := s.faqs.SetActive(ctx, id, isActive)
	if err != nil {
		return nil, errors.NewInternalError("Failed to toggle FAQ", err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("FAQ not found")
	}

	if s.cache != nil {
		s.cache.InvalidateFAQs(ctx)
	}

	return entry, nil
}

// ReorderFAQ moves an FAQ entry to a new display position
func (s *ContactService) ReorderFAQ(ctx context.Context, id string, order int, actor *domain.UserProfile) (*domain.FAQEntry, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}

	if order < 0 {
		return nil, errors.NewFieldValidationError("order", "order must be zero or positive")
	}

	entry, err := s.faqs.SetOrder(ctx, id, order)
	if err != nil {
		return nil, errors.NewInternalError("Failed to reorder FAQ", err)
	}
	if entry == nil {
		return nil, errors.NewNotFoundError("FAQ not found")
	}

	if s.cache != nil {
		s.cache.InvalidateFAQs(ctx)
	}

	return entry, nil
}

// requireAdmin checks the administrative capability of the acting caller
func (s *ContactService) requireAdmin(actor *domain.UserProfile) error {
	if actor == nil {
		return errors.NewAuthenticationError("Authentication required")
	}
	if !actor.IsAdmin() {
		return errors.NewAuthorizationError("Administrative access required")
	}
	return nil
}

// buildFAQEntry validates an FAQ create/update payload
func (s *ContactService) buildFAQEntry(req *domain.FAQRequest) (*domain.FAQEntry, *errors.AppError) {
	details := map[string]interface{}{}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		details["question"] = "question is required"
	}

	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		details["answer"] = "answer is required"
	}

	category, err := domain.ParseFAQCategory(req.Category)
	if err != nil {
		details["category"] = "category must be one of: general, loans, insurance, investments, tax"
	}

	order := 0
	if req.Order != nil {
		if *req.Order < 0 {
			details["order"] = "order must be zero or positive"
		} else {
			order = *req.Order
		}
	}

	if len(details) > 0 {
		return nil, errors.NewValidationError("Validation failed", details)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &domain.FAQEntry{
		Category:  category,
		Question:  question,
		Answer:    answer,
		Highlight: req.Highlight,
		Order:     order,
		IsActive:  isActive,
	}, nil
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cashper-api/internal/domain"
	"cashper-api/internal/middleware"
	"cashper-api/internal/service"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// ContactHandler handles contact submission HTTP requests
type ContactHandler struct {
	contactService *service.ContactService
	logger         *logger.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService, logger *logger.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit handles POST /api/contact/submit
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	actor := middleware.UserFromContext(r.Context())

	submission, err := h.contactService.Submit(r.Context(), &req, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, submission, h.logger)
}

// List handles GET /api/contact/list
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())

	filter, err := parseSubmissionFilter(r)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	page := parseIntParam(r, "page", 1)
	pageSize := parseIntParam(r, "pageSize", 0)

	result, err := h.contactService.List(r.Context(), filter, page, pageSize, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result, h.logger)
}

// GetByID handles GET /api/contact/{id}
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	submission, err := h.contactService.GetSubmission(r.Context(), id, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, submission, h.logger)
}

// UpdateStatus handles PATCH /api/contact/{id}/status
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req domain.ContactStatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	submission, err := h.contactService.UpdateStatus(r.Context(), id, &req, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, submission, h.logger)
}

// MarkRead handles PATCH /api/contact/{id}/read
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.contactService.MarkRead(r.Context(), id, actor); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Submission marked as read"}, h.logger)
}

// Statistics handles GET /api/contact/statistics
func (h *ContactHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())

	stats, err := h.contactService.Statistics(r.Context(), actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats, h.logger)
}

// parseSubmissionFilter reads the listing filter query parameters
func parseSubmissionFilter(r *http.Request) (domain.SubmissionFilter, error) {
	filter := domain.SubmissionFilter{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseSubmissionStatus(raw)
		if err != nil {
			return filter, errors.NewFieldValidationError("status", "status must be one of: new, in_progress, resolved, closed")
		}
		filter.Status = &status
	}

	if raw := r.URL.Query().Get("isRead"); raw != "" {
		isRead, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.NewFieldValidationError("isRead", "isRead must be true or false")
		}
		filter.IsRead = &isRead
	}

	return filter, nil
}

// parseIntParam reads an integer query parameter with a fallback
func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

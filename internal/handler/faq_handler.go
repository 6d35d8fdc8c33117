package handler

import (
	"encoding/json"
	"net/http"

	"cashper-api/internal/domain"
	"cashper-api/internal/middleware"
	"cashper-api/internal/service"
	"cashper-api/pkg/errors"
	"cashper-api/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// FAQHandler handles FAQ HTTP requests
type FAQHandler struct {
	contactService *service.ContactService
	logger         *logger.Logger
}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler(contactService *service.ContactService, logger *logger.Logger) *FAQHandler {
	return &FAQHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// ListPublic handles GET /api/contact/faq
func (h *FAQHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	entries, err := h.contactService.ListPublicFAQ(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries, h.logger)
}

// Create handles POST /api/contact/faq
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())

	var req domain.FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	entry, err := h.contactService.CreateFAQ(r.Context(), &req, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, entry, h.logger)
}

// ListAll handles GET /api/contact/faq/all
func (h *FAQHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())

	entries, err := h.contactService.ListAllFAQ(r.Context(), r.URL.Query().Get("category"), actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries, h.logger)
}

// GetByID handles GET /api/contact/faq/{id}
func (h *FAQHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	entry, err := h.contactService.GetFAQ(r.Context(), id, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry, h.logger)
}

// Update handles PUT /api/contact/faq/{id}
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req domain.FAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	entry, err := h.contactService.UpdateFAQ(r.Context(), id, &req, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry, h.logger)
}

// ToggleActive handles PATCH /api/contact/faq/{id}/active
func (h *FAQHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req domain.FAQToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	entry, err := h.contactService.ToggleFAQ(r.Context(), id, req.IsActive, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry, h.logger)
}

// SetOrder handles PATCH /api/contact/faq/{id}/order
func (h *FAQHandler) SetOrder(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req domain.FAQOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, errors.NewValidationError("Invalid request body", nil), h.logger)
		return
	}

	entry, err := h.contactService.ReorderFAQ(r.Context(), id, req.Order, actor)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entry, h.logger)
}

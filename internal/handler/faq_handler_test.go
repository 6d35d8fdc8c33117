package handler

import (
	"net/http"
	"testing"

	"cashper-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faqPayload() map[string]interface{} {
	return map[string]interface{}{
		"category": "loans",
		"question": "What documents do I need for a personal loan?",
		"answer":   "PAN card, address proof and three months of bank statements.",
	}
}

func TestCreateFAQEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.FAQEntry
	decodeBody(t, rec, &created)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, domain.FAQCategoryLoans, created.Category)

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodPost, "/api/contact/faq", "", faqPayload()).Code)
	assert.Equal(t, http.StatusForbidden, doRequest(t, router, http.MethodPost, "/api/contact/faq", userToken, faqPayload()).Code)

	bad := faqPayload()
	bad["category"] = "crypto"
	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, bad).Code)
}

func TestPublicFAQEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var visible domain.FAQEntry
	decodeBody(t, rec, &visible)

	hiddenPayload := faqPayload()
	hiddenPayload["question"] = "Retired question"
	hiddenPayload["isActive"] = false
	rec = doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, hiddenPayload)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Public list is open and excludes inactive entries
	rec = doRequest(t, router, http.MethodGet, "/api/contact/faq", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var public []domain.FAQEntry
	decodeBody(t, rec, &public)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	// Category filter
	rec = doRequest(t, router, http.MethodGet, "/api/contact/faq?category=tax", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []domain.FAQEntry
	decodeBody(t, rec, &filtered)
	assert.Empty(t, filtered)

	assert.Equal(t, http.StatusBadRequest, doRequest(t, router, http.MethodGet, "/api/contact/faq?category=crypto", "", nil).Code)

	// Admin listing still sees the inactive entry
	rec = doRequest(t, router, http.MethodGet, "/api/contact/faq/all", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.FAQEntry
	decodeBody(t, rec, &all)
	assert.Len(t, all, 2)
}

func TestUpdateFAQEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.FAQEntry
	decodeBody(t, rec, &created)

	update := faqPayload()
	update["answer"] = "Only a PAN card and one month of statements."
	update["category"] = "general"

	rec = doRequest(t, router, http.MethodPut, "/api/contact/faq/"+created.ID, adminToken, update)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.FAQEntry
	decodeBody(t, rec, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, domain.FAQCategoryGeneral, updated.Category)
	assert.Equal(t, "Only a PAN card and one month of statements.", updated.Answer)

	rec = doRequest(t, router, http.MethodPut, "/api/contact/faq/missing", adminToken, update)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToggleFAQEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.FAQEntry
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodPatch, "/api/contact/faq/"+created.ID+"/active", adminToken,
		map[string]bool{"isActive": false})
	require.Equal(t, http.StatusOK, rec.Code)

	var toggled domain.FAQEntry
	decodeBody(t, rec, &toggled)
	assert.False(t, toggled.IsActive)
	assert.Equal(t, created.Question, toggled.Question)

	rec = doRequest(t, router, http.MethodPatch, "/api/contact/faq/missing/active", adminToken,
		map[string]bool{"isActive": false})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetFAQOrderEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.FAQEntry
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodPatch, "/api/contact/faq/"+created.ID+"/order", adminToken,
		map[string]int{"order": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	var moved domain.FAQEntry
	decodeBody(t, rec, &moved)
	assert.Equal(t, 4, moved.Order)

	rec = doRequest(t, router, http.MethodPatch, "/api/contact/faq/"+created.ID+"/order", adminToken,
		map[string]int{"order": -2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFAQByIDEndpoint(t *testing.T) {
	router, _, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/contact/faq", adminToken, faqPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.FAQEntry
	decodeBody(t, rec, &created)

	rec = doRequest(t, router, http.MethodGet, "/api/contact/faq/"+created.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched domain.FAQEntry
	decodeBody(t, rec, &fetched)
	assert.Equal(t, created.Question, fetched.Question)

	assert.Equal(t, http.StatusNotFound, doRequest(t, router, http.MethodGet, "/api/contact/faq/missing", adminToken, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, router, http.MethodGet, "/api/contact/faq/"+created.ID, "", nil).Code)
}

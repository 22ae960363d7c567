package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arpmotors/siteadmin/internal/model"
	"github.com/arpmotors/siteadmin/internal/store"
)

// ContentHandler serves the singleton content sections: about, contact
// info, footer settings, and per-page meta. Reads materialize defaults;
// updates are partial and upsert-first, so there is no update-before-create
// failure mode.
type ContentHandler struct {
	store *store.Store
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(st *store.Store) *ContentHandler {
	return &ContentHandler{store: st}
}

// GetAbout returns the about blurb, defaulted on first read.
// GET /admin/about
func (h *ContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.store.GetAboutSection(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load about section")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

// UpdateAbout applies a partial update to the about blurb.
// PUT /admin/about
func (h *ContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var patch model.AboutSectionPatch
	if err := readJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	about, err := h.store.UpdateAboutSection(r.Context(), &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update about section")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

// GetContactInfo returns the contact details, defaulted on first read.
// GET /admin/contact/info
func (h *ContentHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.GetContactInfo(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load contact info")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// UpdateContactInfo applies a partial update to the contact details.
// PUT /admin/contact/info
func (h *ContentHandler) UpdateContactInfo(w http.ResponseWriter, r *http.Request) {
	var patch model.ContactInfoPatch
	if err := readJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	info, err := h.store.UpdateContactInfo(r.Context(), &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update contact info")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// GetFooter returns the footer settings, defaulted on first read.
// GET /admin/footer
func (h *ContentHandler) GetFooter(w http.ResponseWriter, r *http.Request) {
	settings, err := h.store.GetFooterSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load footer settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// UpdateFooter applies a partial update to the footer settings.
// PUT /admin/footer
func (h *ContentHandler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	var patch model.FooterSettingsPatch
	if err := readJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.store.UpdateFooterSettings(r.Context(), &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update footer settings")
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

// GetPageMeta returns the header/title block for a page key, defaulted on
// first read.
// GET /admin/meta/{pageKey}
func (h *ContentHandler) GetPageMeta(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if pageKey == "" {
		writeError(w, http.StatusBadRequest, "Page key is required")
		return
	}

	meta, err := h.store.GetPageMeta(r.Context(), pageKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load page meta")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// UpdatePageMeta applies a partial update to the page-meta row for a key,
// creating it first if absent.
// PUT /admin/meta/{pageKey}
func (h *ContentHandler) UpdatePageMeta(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if pageKey == "" {
		writeError(w, http.StatusBadRequest, "Page key is required")
		return
	}

	var patch model.PageMetaPatch
	if err := readJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	meta, err := h.store.UpdatePageMeta(r.Context(), pageKey, &patch)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update page meta")
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

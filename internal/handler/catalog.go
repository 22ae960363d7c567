package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arpmotors/siteadmin/internal/model"
	"github.com/arpmotors/siteadmin/internal/store"
)

// CatalogHandler serves the multi-row content resources: vehicles, gallery,
// hero slides, chat options, included features/policies, and contact form
// fields.
type CatalogHandler struct {
	store *store.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(st *store.Store) *CatalogHandler {
	return &CatalogHandler{store: st}
}

// ---------------------------------------------------------------------------
// Vehicles
// ---------------------------------------------------------------------------

// ListVehicles returns all vehicles.
// GET /admin/vehicles
func (h *CatalogHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.store.ListVehicles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}
	if vehicles == nil {
		vehicles = []model.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// GetVehicle returns one vehicle by slug.
// GET /admin/vehicles/{slug}
func (h *CatalogHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	v, err := h.store.GetVehicleBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to load vehicle")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// CreateVehicle inserts a new vehicle; the slug must be unique.
// POST /admin/vehicles
func (h *CatalogHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v model.Vehicle
	if err := readJSON(r, &v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if v.Slug == "" {
		writeError(w, http.StatusBadRequest, "Slug is required")
		return
	}

	if err := h.store.CreateVehicle(r.Context(), &v); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "A vehicle with this slug already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// UpdateVehicle replaces the stored fields of a vehicle.
// PUT /admin/vehicles/{slug}
func (h *CatalogHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var v model.Vehicle
	if err := readJSON(r, &v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.store.UpdateVehicle(r.Context(), slug, &v); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}

	updated, err := h.store.GetVehicleBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load vehicle")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteVehicle removes a vehicle by slug.
// DELETE /admin/vehicles/{slug}
func (h *CatalogHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := h.store.DeleteVehicle(r.Context(), slug); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Deleted successfully"})
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

// ListGallery returns all gallery items.
// GET /admin/gallery
func (h *CatalogHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.ListGallery(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list gallery")
		return
	}
	if items == nil {
		items = []model.GalleryItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateGalleryItem adds a gallery image by URL.
// POST /admin/gallery
func (h *CatalogHandler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var item model.GalleryItem
	if err := readJSON(r, &item); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if item.Image == "" {
		writeError(w, http.StatusBadRequest, "Image URL is required")
		return
	}

	if err := h.store.CreateGalleryItem(r.Context(), &item); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// DeleteGalleryItem removes a gallery item by ID.
// DELETE /admin/gallery/{id}
func (h *CatalogHandler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid gallery item id")
		return
	}

	if err := h.store.DeleteGalleryItem(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete gallery item")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Image deleted successfully"})
}

// ---------------------------------------------------------------------------
// Hero slides
// ---------------------------------------------------------------------------

// ListHeroSlides returns all slides in display order.
// GET /admin/hero/slides
func (h *CatalogHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := h.store.ListHeroSlides(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list hero slides")
		return
	}
	if slides == nil {
		slides = []model.HeroSlide{}
	}
	writeJSON(w, http.StatusOK, slides)
}

// CreateHeroSlide adds a slide to the hero carousel.
// POST /admin/hero/slides
func (h *CatalogHandler) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var slide model.HeroSlide
	if err := readJSON(r, &slide); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if slide.ImageURL == "" {
		writeError(w, http.StatusBadRequest, "Image URL is required")
		return
	}

	if err := h.store.CreateHeroSlide(r.Context(), &slide); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create hero slide")
		return
	}
	writeJSON(w, http.StatusCreated, slide)
}

// UpdateHeroSlide replaces the stored fields of a slide.
// PUT /admin/hero/slides/{id}
func (h *CatalogHandler) UpdateHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid slide id")
		return
	}

	var slide model.HeroSlide
	if err := readJSON(r, &slide); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.store.UpdateHeroSlide(r.Context(), id, &slide); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Slide not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update hero slide")
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

// DeleteHeroSlide removes a slide by ID.
// DELETE /admin/hero/slides/{id}
func (h *CatalogHandler) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid slide id")
		return
	}

	if err := h.store.DeleteHeroSlide(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Slide not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete hero slide")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Slide deleted"})
}

// ---------------------------------------------------------------------------
// Chat options
// ---------------------------------------------------------------------------

// ListChatOptions returns the chat widget options, seeding a default option
// when none exist yet.
// GET /admin/chatbot/options
func (h *CatalogHandler) ListChatOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.store.ListChatOptions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list chat options")
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// ReplaceChatOptions swaps the full chat option set in one transaction.
// PUT /admin/chatbot/options/bulk
func (h *CatalogHandler) ReplaceChatOptions(w http.ResponseWriter, r *http.Request) {
	var options []model.ChatOption
	if err := readJSON(r, &options); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.store.ReplaceChatOptions(r.Context(), options); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update chat options")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Chatbot options updated successfully"})
}

// ---------------------------------------------------------------------------
// Included features and policies
// ---------------------------------------------------------------------------

// ListFeatures returns the feature-grid entries.
// GET /admin/include/features
func (h *CatalogHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.store.ListFeatures(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list features")
		return
	}
	if features == nil {
		features = []model.Feature{}
	}
	writeJSON(w, http.StatusOK, features)
}

// CreateFeature adds a feature-grid entry.
// POST /admin/include/features
func (h *CatalogHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var f model.Feature
	if err := readJSON(r, &f); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.store.CreateFeature(r.Context(), &f); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create feature")
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// DeleteFeature removes a feature by ID.
// DELETE /admin/include/features/{id}
func (h *CatalogHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid feature id")
		return
	}

	if err := h.store.DeleteFeature(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Feature not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete feature")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Deleted"})
}

// ListPolicies returns the policy cards.
// GET /admin/include/policies
func (h *CatalogHandler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.store.ListPolicies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list policies")
		return
	}
	if policies == nil {
		policies = []model.Policy{}
	}
	writeJSON(w, http.StatusOK, policies)
}

// CreatePolicy adds a policy card.
// POST /admin/include/policies
func (h *CatalogHandler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var p model.Policy
	if err := readJSON(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.store.CreatePolicy(r.Context(), &p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create policy")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// DeletePolicy removes a policy by ID.
// DELETE /admin/include/policies/{id}
func (h *CatalogHandler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid policy id")
		return
	}

	if err := h.store.DeletePolicy(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Policy not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete policy")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Deleted"})
}

// ---------------------------------------------------------------------------
// Contact form fields
// ---------------------------------------------------------------------------

// ListContactFields returns the contact form fields in stable order.
// GET /admin/contact/fields
func (h *CatalogHandler) ListContactFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.store.ListContactFields(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list contact fields")
		return
	}
	if fields == nil {
		fields = []model.ContactField{}
	}
	writeJSON(w, http.StatusOK, fields)
}

// CreateContactField adds a contact form field.
// POST /admin/contact/fields
func (h *CatalogHandler) CreateContactField(w http.ResponseWriter, r *http.Request) {
	var f model.ContactField
	if err := readJSON(r, &f); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if f.Label == "" {
		writeError(w, http.StatusBadRequest, "Label is required")
		return
	}

	if err := h.store.CreateContactField(r.Context(), &f); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create contact field")
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// DeleteContactField removes a contact form field by ID.
// DELETE /admin/contact/fields/{id}
func (h *CatalogHandler) DeleteContactField(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt64(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid field id")
		return
	}

	if err := h.store.DeleteContactField(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Field not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete contact field")
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Field deleted"})
}

// ---------------------------------------------------------------------------
// Dashboard stats
// ---------------------------------------------------------------------------

// GetStats returns row counts for the admin dashboard.
// GET /admin/stats
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/cache"
	"portfolio/internal/models"
	"portfolio/internal/service"
)

// Testimonials groups the testimonial endpoints.
type Testimonials struct {
	svc   *service.Testimonials
	cache *cache.ResponseCache
}

// NewTestimonials creates the testimonial handler group. rc may be nil.
func NewTestimonials(svc *service.Testimonials, rc *cache.ResponseCache) *Testimonials {
	return &Testimonials{svc: svc, cache: rc}
}

// List handles GET /testimonials and returns only active entries.
func (h *Testimonials) List(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.cache, cache.VisibleTestimonialsKey(), "list testimonials", func(ctx context.Context) (any, error) {
		return h.svc.ListVisible(ctx)
	})
}

// Create handles POST /testimonials.
func (h *Testimonials) Create(w http.ResponseWriter, r *http.Request) {
	var req testimonialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "create testimonial", err)
		return
	}
	if err := models.Validate(req); err != nil {
		writeError(w, r, "create testimonial", err)
		return
	}

	t, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, r, "create testimonial", err)
		return
	}

	h.cache.InvalidateGroup(r.Context(), cache.TestimonialsGroup)
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /testimonials/{id}.
func (h *Testimonials) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "delete testimonial", err)
		return
	}

	h.cache.InvalidateGroup(r.Context(), cache.TestimonialsGroup)
	writeMessage(w, "Testimonial deleted successfully")
}

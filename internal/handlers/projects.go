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

// KeyParam is the URL parameter shared by GET /projects/{key} (a category)
// and DELETE /projects/{key} (a project id).
const KeyParam = "key"

// Projects groups the project endpoints. Listings are served through the
// response cache and invalidated on every create or delete.
type Projects struct {
	svc   *service.Projects
	cache *cache.ResponseCache
}

// NewProjects creates the project handler group. rc may be nil.
func NewProjects(svc *service.Projects, rc *cache.ResponseCache) *Projects {
	return &Projects{svc: svc, cache: rc}
}

// List handles GET /projects.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.cache, cache.AllProjectsKey(), "list projects", func(ctx context.Context) (any, error) {
		return h.svc.ListAll(ctx)
	})
}

// ByCategory handles GET /projects/{key}.
func (h *Projects) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, KeyParam)
	serveCached(w, r, h.cache, cache.CategoryKey(category), "list projects by category", func(ctx context.Context) (any, error) {
		return h.svc.ListByCategory(ctx, category)
	})
}

// Featured handles GET /projects/featured.
func (h *Projects) Featured(w http.ResponseWriter, r *http.Request) {
	serveCached(w, r, h.cache, cache.FeaturedProjectsKey(), "list featured projects", func(ctx context.Context) (any, error) {
		return h.svc.ListFeatured(ctx)
	})
}

// Get handles GET /projects/single/{id}.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "get project", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create handles POST /projects.
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "create project", err)
		return
	}
	if err := models.Validate(req); err != nil {
		writeError(w, r, "create project", err)
		return
	}

	p, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, r, "create project", err)
		return
	}

	h.cache.InvalidateGroup(r.Context(), cache.ProjectsGroup)
	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /projects/{key}.
func (h *Projects) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, KeyParam)); err != nil {
		writeError(w, r, "delete project", err)
		return
	}

	h.cache.InvalidateGroup(r.Context(), cache.ProjectsGroup)
	writeMessage(w, "Project deleted successfully")
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

// Profile groups the singleton profile endpoints.
type Profile struct {
	svc *service.Profile
}

// NewProfile creates the profile handler group.
func NewProfile(svc *service.Profile) *Profile {
	return &Profile{svc: svc}
}

// Get handles GET /profile. The default profile is created on first use.
func (h *Profile) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, r, "get profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Update handles PATCH /profile. Keys that are absent or null are left
// untouched.
func (h *Profile) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ProfileUpdate
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, "update profile", err)
		return
	}

	p, err := h.svc.Update(r.Context(), patch)
	if err != nil {
		writeError(w, r, "update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DownloadCV handles POST /profile/cv-download.
func (h *Profile) DownloadCV(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.IncrementCVDownload(r.Context()); err != nil {
		writeError(w, r, "increment cv downloads", err)
		return
	}
	writeMessage(w, "CV download count incremented")
}

// Health handles GET /api/.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Portfolio 2025 API is running",
		"status":  "healthy",
	})
}

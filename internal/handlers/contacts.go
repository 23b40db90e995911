// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

// Contacts groups the contact inbox endpoints. Listings are never cached so
// new messages show up immediately.
type Contacts struct {
	svc *service.Contacts
}

// NewContacts creates the contact handler group.
func NewContacts(svc *service.Contacts) *Contacts {
	return &Contacts{svc: svc}
}

// Create handles POST /contacts.
func (h *Contacts) Create(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "create contact", err)
		return
	}
	if err := models.Validate(req); err != nil {
		writeError(w, r, "create contact", err)
		return
	}

	c, err := h.svc.Create(r.Context(), req.toModel())
	if err != nil {
		writeError(w, r, "create contact", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// List handles GET /contacts.
func (h *Contacts) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeError(w, r, "list contacts", err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// MarkRead handles PATCH /contacts/{id}/read.
func (h *Contacts) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "mark contact read", err)
		return
	}
	writeMessage(w, "Contact marked as read")
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted through the site's contact form.
// IsRead is the only field that changes after creation.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// ContactCreate holds the fields of an inbound contact message.
type ContactCreate struct {
	Name    string `json:"name" validate:"max=200"`
	Email   string `json:"email" validate:"max=320"`
	Message string `json:"message" validate:"max=10000"`
}

// NewContact builds an unread contact message.
func NewContact(in ContactCreate, now time.Time) Contact {
	return Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: now.UTC(),
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a client quote. Inactive testimonials are kept but never
// shown on the public listing.
type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Message   string    `json:"message"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// TestimonialCreate holds the fields of a new testimonial. A nil IsActive
// means the testimonial is visible.
type TestimonialCreate struct {
	Name     string `json:"name" validate:"max=200"`
	Role     string `json:"role" validate:"max=200"`
	Company  string `json:"company" validate:"max=200"`
	Message  string `json:"message" validate:"max=5000"`
	Avatar   string `json:"avatar" validate:"max=2048"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// NewTestimonial builds a testimonial, defaulting IsActive to true.
func NewTestimonial(in TestimonialCreate, now time.Time) Testimonial {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return Testimonial{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Role:      in.Role,
		Company:   in.Company,
		Message:   in.Message,
		Avatar:    in.Avatar,
		CreatedAt: now.UTC(),
		IsActive:  active,
	}
}

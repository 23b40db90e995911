// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the documents stored in each collection and the
// input shapes used to create or update them.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Project categories used by the portfolio frontend. The category field is
// free text in storage; these are the values the site filters on.
const (
	CategoryCV       = "cv"
	CategoryBranding = "branding"
	CategorySocial   = "social"
)

// Categories lists the conventional project categories in display order.
var Categories = []string{CategoryCV, CategoryBranding, CategorySocial}

// Project is a portfolio piece. Projects are created and deleted, never
// edited in place.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	IsFeatured  bool      `json:"is_featured"`
}

// ProjectCreate holds the caller-supplied fields of a new project.
type ProjectCreate struct {
	Title       string   `json:"title" validate:"max=300"`
	Description string   `json:"description" validate:"max=5000"`
	Image       string   `json:"image" validate:"max=2048"`
	Category    string   `json:"category" validate:"max=100"`
	Tags        []string `json:"tags" validate:"required,max=50,dive,max=100"`
	IsFeatured  bool     `json:"is_featured"`
}

// NewProject builds a project from its create shape, assigning a fresh id
// and the creation time.
func NewProject(in ProjectCreate, now time.Time) Project {
	tags := make([]string, len(in.Tags))
	copy(tags, in.Tags)

	return Project{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
		Tags:        tags,
		CreatedAt:   now.UTC(),
		IsFeatured:  in.IsFeatured,
	}
}

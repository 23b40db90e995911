// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "portfolio/internal/models"

// Request bodies use pointer fields so a missing key can be told apart from
// a zero value; required fields are enforced before conversion.

type projectRequest struct {
	Title       *string   `json:"title" validate:"required"`
	Description *string   `json:"description" validate:"required"`
	Image       *string   `json:"image" validate:"required"`
	Category    *string   `json:"category" validate:"required"`
	Tags        *[]string `json:"tags" validate:"required"`
	IsFeatured  *bool     `json:"is_featured"`
}

func (p projectRequest) toModel() models.ProjectCreate {
	in := models.ProjectCreate{
		Title:       *p.Title,
		Description: *p.Description,
		Image:       *p.Image,
		Category:    *p.Category,
		Tags:        *p.Tags,
	}
	if p.IsFeatured != nil {
		in.IsFeatured = *p.IsFeatured
	}
	return in
}

type contactRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email" validate:"required"`
	Message *string `json:"message" validate:"required"`
}

func (c contactRequest) toModel() models.ContactCreate {
	return models.ContactCreate{
		Name:    *c.Name,
		Email:   *c.Email,
		Message: *c.Message,
	}
}

type testimonialRequest struct {
	Name     *string `json:"name" validate:"required"`
	Role     *string `json:"role" validate:"required"`
	Company  *string `json:"company" validate:"required"`
	Message  *string `json:"message" validate:"required"`
	Avatar   *string `json:"avatar" validate:"required"`
	IsActive *bool   `json:"is_active"`
}

func (t testimonialRequest) toModel() models.TestimonialCreate {
	return models.TestimonialCreate{
		Name:     *t.Name,
		Role:     *t.Role,
		Company:  *t.Company,
		Message:  *t.Message,
		Avatar:   *t.Avatar,
		IsActive: t.IsActive,
	}
}

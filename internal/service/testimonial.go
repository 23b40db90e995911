// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// Testimonials manages client testimonials.
type Testimonials struct {
	coll store.Collection
	now  clock
}

// NewTestimonials returns a testimonial service over coll.
func NewTestimonials(coll store.Collection) *Testimonials {
	return &Testimonials{coll: coll, now: utcNow}
}

// ListVisible returns only active testimonials.
func (s *Testimonials) ListVisible(ctx context.Context) ([]models.Testimonial, error) {
	docs, err := s.coll.FindMany(ctx, store.Filter{"is_active": true}, store.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return store.UnmarshalAll[models.Testimonial](docs)
}

// Create stores a new testimonial; it is active unless in says otherwise.
func (s *Testimonials) Create(ctx context.Context, in models.TestimonialCreate) (*models.Testimonial, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	t := models.NewTestimonial(in, s.now())
	doc, err := store.Marshal(t)
	if err != nil {
		return nil, err
	}
	if err := s.coll.InsertOne(ctx, t.ID, doc); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return &t, nil
}

// Delete removes the testimonial with the given id.
func (s *Testimonials) Delete(ctx context.Context, id string) error {
	deleted, err := s.coll.DeleteOne(ctx, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if deleted == 0 {
		return notFound("Testimonial")
	}
	return nil
}

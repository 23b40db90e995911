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

// Projects manages the projects collection.
type Projects struct {
	coll store.Collection
	now  clock
}

// NewProjects returns a project service over coll.
func NewProjects(coll store.Collection) *Projects {
	return &Projects{coll: coll, now: utcNow}
}

// ListAll returns every project, up to store.MaxBatch.
func (s *Projects) ListAll(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, store.Filter{})
}

// ListByCategory returns projects whose category equals category exactly.
// An unknown category yields an empty list.
func (s *Projects) ListByCategory(ctx context.Context, category string) ([]models.Project, error) {
	return s.find(ctx, store.Filter{"category": category})
}

// ListFeatured returns the featured projects.
func (s *Projects) ListFeatured(ctx context.Context) ([]models.Project, error) {
	return s.find(ctx, store.Filter{"is_featured": true})
}

// Create validates in and stores a new project.
func (s *Projects) Create(ctx context.Context, in models.ProjectCreate) (*models.Project, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	p := models.NewProject(in, s.now())
	doc, err := store.Marshal(p)
	if err != nil {
		return nil, err
	}
	if err := s.coll.InsertOne(ctx, p.ID, doc); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &p, nil
}

// Get returns the project with the given id.
func (s *Projects) Get(ctx context.Context, id string) (*models.Project, error) {
	doc, err := s.coll.FindOne(ctx, store.Filter{"id": id})
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if doc == nil {
		return nil, notFound("Project")
	}

	p, err := store.Unmarshal[models.Project](doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the project with the given id.
func (s *Projects) Delete(ctx context.Context, id string) error {
	deleted, err := s.coll.DeleteOne(ctx, store.Filter{"id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if deleted == 0 {
		return notFound("Project")
	}
	return nil
}

func (s *Projects) find(ctx context.Context, filter store.Filter) ([]models.Project, error) {
	docs, err := s.coll.FindMany(ctx, filter, store.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return store.UnmarshalAll[models.Project](docs)
}

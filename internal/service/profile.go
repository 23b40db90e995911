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

// singleton matches the only document in the profile collection.
var singleton = store.Filter{}

// Profile manages the singleton profile record.
type Profile struct {
	coll store.Collection
	now  clock
}

// NewProfile returns a profile service over coll.
func NewProfile(coll store.Collection) *Profile {
	return &Profile{coll: coll, now: utcNow}
}

// Get returns the profile, creating the default record on first use.
// Concurrent first calls all receive the same record.
func (s *Profile) Get(ctx context.Context) (*models.ProfileInfo, error) {
	doc, err := s.coll.FindOne(ctx, singleton)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if doc == nil {
		def := models.DefaultProfile(s.now())
		fresh, err := store.Marshal(def)
		if err != nil {
			return nil, err
		}
		doc, err = s.coll.FindOrInsert(ctx, singleton, def.ID, fresh)
		if err != nil {
			return nil, fmt.Errorf("create default profile: %w", err)
		}
	}

	p, err := store.Unmarshal[models.ProfileInfo](doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies the set fields of patch and returns the stored result.
// updated_at is refreshed whenever at least one field is written.
func (s *Profile) Update(ctx context.Context, patch models.ProfileUpdate) (*models.ProfileInfo, error) {
	if err := models.Validate(patch); err != nil {
		return nil, err
	}

	existing, err := s.coll.FindOne(ctx, singleton)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if existing == nil {
		return nil, notFound("Profile")
	}

	if !patch.IsEmpty() {
		fields := patch.Fields()
		fields["updated_at"] = s.now()
		matched, err := s.coll.UpdateOne(ctx, singleton, fields)
		if err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		if matched == 0 {
			return nil, notFound("Profile")
		}
	}

	doc, err := s.coll.FindOne(ctx, singleton)
	if err != nil {
		return nil, fmt.Errorf("reload profile: %w", err)
	}
	if doc == nil {
		return nil, notFound("Profile")
	}

	p, err := store.Unmarshal[models.ProfileInfo](doc)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// IncrementCVDownload adds one to the CV download counter with a single
// atomic store operation.
func (s *Profile) IncrementCVDownload(ctx context.Context) error {
	matched, err := s.coll.Increment(ctx, singleton, models.CVDownloadCountField, 1)
	if err != nil {
		return fmt.Errorf("increment cv downloads: %w", err)
	}
	if matched == 0 {
		return notFound("Profile")
	}
	return nil
}

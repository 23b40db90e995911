// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/store"
)

// Seed inserts the sample projects and testimonials into whichever of the
// two collections is empty. A collection holding any document is left
// alone, whatever its content.
func Seed(ctx context.Context, projects, testimonials store.Collection) error {
	now := time.Now().UTC()

	n, err := seedIfEmpty(ctx, projects, "projects", func() ([]seedDoc, error) {
		docs := make([]seedDoc, 0, len(sampleProjects))
		for _, in := range sampleProjects {
			p := models.NewProject(in, now)
			raw, err := store.Marshal(p)
			if err != nil {
				return nil, err
			}
			docs = append(docs, seedDoc{id: p.ID, doc: raw})
		}
		return docs, nil
	})
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("sample projects inserted", "count", n)
	}

	n, err = seedIfEmpty(ctx, testimonials, "testimonials", func() ([]seedDoc, error) {
		docs := make([]seedDoc, 0, len(sampleTestimonials))
		for _, in := range sampleTestimonials {
			t := models.NewTestimonial(in, now)
			raw, err := store.Marshal(t)
			if err != nil {
				return nil, err
			}
			docs = append(docs, seedDoc{id: t.ID, doc: raw})
		}
		return docs, nil
	})
	if err != nil {
		return err
	}
	if n > 0 {
		slog.Info("sample testimonials inserted", "count", n)
	}

	return nil
}

type seedDoc struct {
	id  string
	doc store.Document
}

// seedIfEmpty inserts the built documents when coll has none and returns
// how many were inserted.
func seedIfEmpty(ctx context.Context, coll store.Collection, name string, build func() ([]seedDoc, error)) (int, error) {
	count, err := coll.Count(ctx, store.Filter{})
	if err != nil {
		return 0, fmt.Errorf("seed check %s: %w", name, err)
	}
	if count > 0 {
		slog.Info("collection already seeded, skipping", "collection", name, "count", count)
		return 0, nil
	}

	docs, err := build()
	if err != nil {
		return 0, fmt.Errorf("seed build %s: %w", name, err)
	}
	for _, d := range docs {
		if err := coll.InsertOne(ctx, d.id, d.doc); err != nil {
			return 0, fmt.Errorf("seed insert %s: %w", name, err)
		}
	}
	return len(docs), nil
}

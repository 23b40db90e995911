// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides document collections: a PostgreSQL JSONB backend
// for production and an in-memory backend for development and tests. Both
// satisfy the same Collection contract consumed by the services.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxBatch caps the number of documents returned by a single FindMany.
const MaxBatch = 1000

// Collection names.
const (
	ProjectsCollection     = "projects"
	ContactsCollection     = "contacts"
	TestimonialsCollection = "testimonials"
	ProfileCollection      = "profile"
)

// ErrUnavailable wraps every failure of the underlying storage (connection
// loss, timeouts, driver errors).
var ErrUnavailable = errors.New("store unavailable")

// Document is a JSON-encoded record.
type Document = json.RawMessage

// Filter selects documents whose fields equal the given values exactly.
// An empty filter matches every document.
type Filter map[string]any

// Sort orders FindMany results by a timestamp field.
type Sort struct {
	Field      string
	Descending bool
}

// FindOptions tunes FindMany. A zero Limit, or one above MaxBatch, means
// MaxBatch.
type FindOptions struct {
	Sort  *Sort
	Limit int
}

// Collection is a set of JSON documents addressed by filter.
type Collection interface {
	// FindMany returns the matching documents in insertion order unless a
	// sort is given.
	FindMany(ctx context.Context, filter Filter, opts FindOptions) ([]Document, error)

	// FindOne returns the first matching document, or nil if none match.
	FindOne(ctx context.Context, filter Filter) (Document, error)

	// InsertOne stores doc under id.
	InsertOne(ctx context.Context, id string, doc Document) error

	// UpdateOne overwrites the given top-level fields on the first matching
	// document and reports how many documents matched (0 or 1).
	UpdateOne(ctx context.Context, filter Filter, set map[string]any) (int64, error)

	// Increment atomically adds delta to a numeric field on the first
	// matching document and reports how many documents matched.
	Increment(ctx context.Context, filter Filter, field string, delta int64) (int64, error)

	// DeleteOne removes the first matching document and reports how many
	// documents were deleted.
	DeleteOne(ctx context.Context, filter Filter) (int64, error)

	// Count returns the number of matching documents.
	Count(ctx context.Context, filter Filter) (int64, error)

	// FindOrInsert returns the first document matching filter, inserting doc
	// under id when none exists. Concurrent callers on a collection with a
	// singleton constraint all observe the same document.
	FindOrInsert(ctx context.Context, filter Filter, id string, doc Document) (Document, error)
}

// Collections groups the four collections used by the API.
type Collections struct {
	Projects     Collection
	Contacts     Collection
	Testimonials Collection
	Profile      Collection
}

// Marshal encodes v as a document.
func Marshal(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

// Unmarshal decodes a document into a T.
func Unmarshal[T any](doc Document) (T, error) {
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return v, fmt.Errorf("decode document: %w", err)
	}
	return v, nil
}

// UnmarshalAll decodes every document. The result is never nil.
func UnmarshalAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := Unmarshal[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (o FindOptions) limit() int {
	if o.Limit <= 0 || o.Limit > MaxBatch {
		return MaxBatch
	}
	return o.Limit
}

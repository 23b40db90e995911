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

// newestFirst orders contacts by creation time, most recent first.
var newestFirst = &store.Sort{Field: "created_at", Descending: true}

// Contacts manages the contact inbox. Messages are never deleted.
type Contacts struct {
	coll store.Collection
	now  clock
}

// NewContacts returns a contact service over coll.
func NewContacts(coll store.Collection) *Contacts {
	return &Contacts{coll: coll, now: utcNow}
}

// Create stores an unread contact message.
func (s *Contacts) Create(ctx context.Context, in models.ContactCreate) (*models.Contact, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}

	c := models.NewContact(in, s.now())
	doc, err := store.Marshal(c)
	if err != nil {
		return nil, err
	}
	if err := s.coll.InsertOne(ctx, c.ID, doc); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &c, nil
}

// ListAll returns every contact message, newest first.
func (s *Contacts) ListAll(ctx context.Context) ([]models.Contact, error) {
	docs, err := s.coll.FindMany(ctx, store.Filter{}, store.FindOptions{Sort: newestFirst})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return store.UnmarshalAll[models.Contact](docs)
}

// MarkRead flags a message as read. Marking an already read message
// succeeds.
func (s *Contacts) MarkRead(ctx context.Context, id string) error {
	matched, err := s.coll.UpdateOne(ctx, store.Filter{"id": id}, map[string]any{"is_read": true})
	if err != nil {
		return fmt.Errorf("mark contact read: %w", err)
	}
	if matched == 0 {
		return notFound("Contact")
	}
	return nil
}

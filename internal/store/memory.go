// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"
)

// MemCollection keeps documents in process memory. A single mutex guards
// every operation, so each call is atomic with respect to the others.
type MemCollection struct {
	name string

	mu   sync.Mutex
	docs []memDoc
}

type memDoc struct {
	id     string
	fields map[string]any
}

// NewMemCollection returns an empty in-memory collection.
func NewMemCollection(name string) *MemCollection {
	return &MemCollection{name: name}
}

// NewMemory returns the API's collections held in memory.
func NewMemory() *Collections {
	return &Collections{
		Projects:     NewMemCollection(ProjectsCollection),
		Contacts:     NewMemCollection(ContactsCollection),
		Testimonials: NewMemCollection(TestimonialsCollection),
		Profile:      NewMemCollection(ProfileCollection),
	}
}

func (c *MemCollection) FindMany(ctx context.Context, filter Filter, opts FindOptions) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, c.fail("find", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]memDoc, 0)
	for _, d := range c.docs {
		if d.matches(want) {
			matched = append(matched, d)
		}
	}

	if opts.Sort != nil {
		field, desc := opts.Sort.Field, opts.Sort.Descending
		if desc {
			// Equal timestamps list the latest insert first.
			slices.Reverse(matched)
		}
		sort.SliceStable(matched, func(i, j int) bool {
			a, b := timeField(matched[i].fields, field), timeField(matched[j].fields, field)
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	}

	if limit := opts.limit(); len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]Document, 0, len(matched))
	for _, d := range matched {
		doc, err := json.Marshal(d.fields)
		if err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (c *MemCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, c.fail("find one", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(want)
}

func (c *MemCollection) InsertOne(ctx context.Context, id string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return c.fail("insert", err)
	}
	fields, err := decodeFields(doc)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.insertLocked(id, fields)
}

func (c *MemCollection) UpdateOne(ctx context.Context, filter Filter, set map[string]any) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, c.fail("update", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}
	patch, err := normalize(set)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(want)
	if i == -1 {
		return 0, nil
	}
	for k, v := range patch {
		c.docs[i].fields[k] = v
	}
	return 1, nil
}

func (c *MemCollection) Increment(ctx context.Context, filter Filter, field string, delta int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, c.fail("increment", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(want)
	if i == -1 {
		return 0, nil
	}

	var current int64
	if n, ok := c.docs[i].fields[field].(json.Number); ok {
		current, err = n.Int64()
		if err != nil {
			return 0, fmt.Errorf("increment %s.%s: %w", c.name, field, err)
		}
	}
	c.docs[i].fields[field] = json.Number(strconv.FormatInt(current+delta, 10))
	return 1, nil
}

func (c *MemCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, c.fail("delete", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(want)
	if i == -1 {
		return 0, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return 1, nil
}

func (c *MemCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, c.fail("count", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for _, d := range c.docs {
		if d.matches(want) {
			n++
		}
	}
	return n, nil
}

func (c *MemCollection) FindOrInsert(ctx context.Context, filter Filter, id string, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, c.fail("find or insert", err)
	}
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	fields, err := decodeFields(doc)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing, err := c.findLocked(want)
	if err != nil || existing != nil {
		return existing, err
	}
	if err := c.insertLocked(id, fields); err != nil {
		return nil, err
	}
	return c.findLocked(want)
}

func (c *MemCollection) findLocked(want map[string]json.RawMessage) (Document, error) {
	i := c.indexLocked(want)
	if i == -1 {
		return nil, nil
	}
	doc, err := json.Marshal(c.docs[i].fields)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return doc, nil
}

func (c *MemCollection) insertLocked(id string, fields map[string]any) error {
	for _, d := range c.docs {
		if d.id == id {
			return fmt.Errorf("insert %s: duplicate id %q", c.name, id)
		}
	}
	c.docs = append(c.docs, memDoc{id: id, fields: fields})
	return nil
}

func (c *MemCollection) indexLocked(want map[string]json.RawMessage) int {
	for i, d := range c.docs {
		if d.matches(want) {
			return i
		}
	}
	return -1
}

func (c *MemCollection) fail(op string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, c.name, ErrUnavailable, err)
}

// matches compares the JSON encoding of each filtered field.
func (d memDoc) matches(want map[string]json.RawMessage) bool {
	for k, v := range want {
		got, ok := d.fields[k]
		if !ok {
			return false
		}
		enc, err := json.Marshal(got)
		if err != nil || !bytes.Equal(enc, v) {
			return false
		}
	}
	return true
}

func normalizeFilter(filter Filter) (map[string]json.RawMessage, error) {
	want := make(map[string]json.RawMessage, len(filter))
	for k, v := range filter {
		norm, err := normalizeValue(v)
		if err != nil {
			return nil, err
		}
		enc, err := json.Marshal(norm)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		want[k] = enc
	}
	return want, nil
}

// normalize round-trips values through JSON so stored fields have the same
// shapes a decoded document would have.
func normalize(set map[string]any) (map[string]any, error) {
	raw, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	return decodeFields(raw)
}

func normalizeValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode filter: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}
	return out, nil
}

func decodeFields(doc []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()
	fields := make(map[string]any)
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return fields, nil
}

// timeField parses an RFC 3339 field; missing or malformed values sort first.
func timeField(fields map[string]any, key string) time.Time {
	s, _ := fields[key].(string)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// PGCollection stores documents in a PostgreSQL table with the layout
// (id TEXT PRIMARY KEY, doc JSONB, seq BIGSERIAL). Filters are evaluated
// with JSONB containment, which is an exact match for scalar values.
type PGCollection struct {
	db    *sql.DB
	name  string
	table string
}

// NewPGCollection returns a collection backed by the table of the same name.
func NewPGCollection(db *sql.DB, name string) *PGCollection {
	return &PGCollection{
		db:    db,
		name:  name,
		table: pgx.Identifier{name}.Sanitize(),
	}
}

// NewPostgres returns the API's collections on the given database.
func NewPostgres(db *sql.DB) *Collections {
	return &Collections{
		Projects:     NewPGCollection(db, ProjectsCollection),
		Contacts:     NewPGCollection(db, ContactsCollection),
		Testimonials: NewPGCollection(db, TestimonialsCollection),
		Profile:      NewPGCollection(db, ProfileCollection),
	}
}

// firstMatch selects the id of the oldest document matching $1.
func (c *PGCollection) firstMatch() string {
	return `(SELECT id FROM ` + c.table + ` WHERE doc @> $1::jsonb ORDER BY seq LIMIT 1)`
}

func (c *PGCollection) FindMany(ctx context.Context, filter Filter, opts FindOptions) ([]Document, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	args := []any{f, opts.limit()}
	order := `seq`
	if opts.Sort != nil {
		// Equal timestamps fall back to insertion order in the same direction.
		order = `(doc->>$3::text)::timestamptz, seq`
		if opts.Sort.Descending {
			order = `(doc->>$3::text)::timestamptz DESC, seq DESC`
		}
		args = append(args, opts.Sort.Field)
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT doc FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY `+order+` LIMIT $2`,
		args...,
	)
	if err != nil {
		return nil, c.fail("find", err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, c.fail("scan", err)
		}
		docs = append(docs, Document(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, c.fail("find", err)
	}
	return docs, nil
}

func (c *PGCollection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	var raw []byte
	err = c.db.QueryRowContext(ctx,
		`SELECT doc FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY seq LIMIT 1`, f,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, c.fail("find one", err)
	}
	return Document(raw), nil
}

func (c *PGCollection) InsertOne(ctx context.Context, id string, doc Document) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO `+c.table+` (id, doc) VALUES ($1, $2::jsonb)`, id, string(doc),
	)
	if err != nil {
		return c.fail("insert", err)
	}
	return nil
}

func (c *PGCollection) UpdateOne(ctx context.Context, filter Filter, set map[string]any) (int64, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}
	patch, err := json.Marshal(set)
	if err != nil {
		return 0, fmt.Errorf("encode update: %w", err)
	}

	res, err := c.db.ExecContext(ctx,
		`UPDATE `+c.table+` SET doc = doc || $2::jsonb WHERE id = `+c.firstMatch(),
		f, string(patch),
	)
	if err != nil {
		return 0, c.fail("update", err)
	}
	return c.affected("update", res)
}

func (c *PGCollection) Increment(ctx context.Context, filter Filter, field string, delta int64) (int64, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	// A single UPDATE takes the row lock, so concurrent increments serialize
	// without lost updates.
	res, err := c.db.ExecContext(ctx,
		`UPDATE `+c.table+`
		SET doc = jsonb_set(doc, ARRAY[$2::text], to_jsonb(COALESCE((doc->>$2::text)::bigint, 0) + $3::bigint))
		WHERE id = `+c.firstMatch(),
		f, field, delta,
	)
	if err != nil {
		return 0, c.fail("increment", err)
	}
	return c.affected("increment", res)
}

func (c *PGCollection) DeleteOne(ctx context.Context, filter Filter) (int64, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	res, err := c.db.ExecContext(ctx,
		`DELETE FROM `+c.table+` WHERE id = `+c.firstMatch(), f,
	)
	if err != nil {
		return 0, c.fail("delete", err)
	}
	return c.affected("delete", res)
}

func (c *PGCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	f, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM `+c.table+` WHERE doc @> $1::jsonb`, f,
	).Scan(&n)
	if err != nil {
		return 0, c.fail("count", err)
	}
	return n, nil
}

// FindOrInsert relies on a unique index to reject a second document; the
// profile table has one on a constant expression. ON CONFLICT DO NOTHING
// waits for a concurrent inserter to commit, so the read that follows sees
// the winning document.
func (c *PGCollection) FindOrInsert(ctx context.Context, filter Filter, id string, doc Document) (Document, error) {
	existing, err := c.FindOne(ctx, filter)
	if err != nil || existing != nil {
		return existing, err
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO `+c.table+` (id, doc) VALUES ($1, $2::jsonb) ON CONFLICT DO NOTHING`,
		id, string(doc),
	)
	if err != nil {
		return nil, c.fail("find or insert", err)
	}

	existing, err = c.FindOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("find or insert %s: document vanished after insert", c.name)
	}
	return existing, nil
}

func (c *PGCollection) affected(op string, res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, c.fail(op, err)
	}
	return n, nil
}

func (c *PGCollection) fail(op string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, c.name, ErrUnavailable, err)
}

func encodeFilter(filter Filter) (string, error) {
	if len(filter) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return "", fmt.Errorf("encode filter: %w", err)
	}
	return string(b), nil
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service implements the portfolio operations on top of the
// document collections: projects, contact messages, testimonials and the
// singleton profile. Each service receives its collection at construction.
package service

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup, update or delete targets a
// document that does not exist. The wrapped message names the entity,
// e.g. "Project not found".
var ErrNotFound = errors.New("not found")

func notFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// clock returns the current time; services keep it as a field so tests can
// control timestamps.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

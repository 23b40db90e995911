// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go caches encoded JSON listings in Valkey. Public reads of the
// project and testimonial listings are served from the cache until a
// create or delete on the same collection invalidates them.
//
// Every group carries a generation counter that is part of each entry's
// key. Invalidation bumps the counter, so a listing loaded before a write
// and stored after it lands under a generation nobody reads any more.
package cache

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "resp:"

	// generationKeyPrefix holds the per-group generation counters. It must
	// not share responseKeyPrefix or invalidation would scan it away.
	generationKeyPrefix = "respgen:"

	// DefaultTTL is how long a cached listing stays valid.
	DefaultTTL = 5 * time.Minute
)

// Key groups, used as prefixes so a whole collection can be invalidated.
const (
	ProjectsGroup     = "projects:"
	TestimonialsGroup = "testimonials:"
)

// ResponseCache stores encoded responses in Valkey. A nil *ResponseCache is
// valid and behaves as an always-missing cache.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache backed by the given client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Generation is the group generation a listing was read under. Pass it back
// to Set so a body loaded before an invalidation is never served after it.
type Generation struct {
	group string
	n     int64
	valid bool
}

// Get returns the cached body for key together with the generation of its
// group. key must start with one of the group prefixes.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, Generation, bool) {
	if rc == nil {
		return nil, Generation{}, false
	}

	gen, err := rc.generation(ctx, groupOf(key))
	if err != nil {
		slog.Warn("response cache generation error", "key", key, "error", err)
		return nil, Generation{}, false
	}

	val, err := rc.client.Get(ctx, entryKey(key, gen)).Bytes()
	if err == redis.Nil {
		return nil, gen, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, gen, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, gen, true
}

// Set stores body under key for the generation returned by Get. Bodies from
// a generation that has since been invalidated are dropped.
func (rc *ResponseCache) Set(ctx context.Context, key string, gen Generation, body []byte) {
	if rc == nil || !gen.valid || gen.group != groupOf(key) {
		return
	}

	current, err := rc.generation(ctx, gen.group)
	if err != nil {
		slog.Warn("response cache generation error", "key", key, "error", err)
		return
	}
	if current.n != gen.n {
		slog.Debug("response cache set skipped", "key", key, "generation", gen.n, "current", current.n)
		return
	}

	if err := rc.client.Set(ctx, entryKey(key, gen), body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// InvalidateGroup moves group to a new generation and removes the cached
// responses stored under older ones.
func (rc *ResponseCache) InvalidateGroup(ctx context.Context, group string) {
	if rc == nil {
		return
	}

	if err := rc.client.Incr(ctx, generationKeyPrefix+group).Err(); err != nil {
		slog.Warn("response cache generation bump error", "group", group, "error", err)
	}

	var cursor uint64
	var deleted int
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, responseKeyPrefix+group+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "group", group, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "group", group, "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("response cache invalidated", "group", group, "deleted", deleted)
	}
}

func (rc *ResponseCache) generation(ctx context.Context, group string) (Generation, error) {
	n, err := rc.client.Get(ctx, generationKeyPrefix+group).Int64()
	if err == redis.Nil {
		return Generation{group: group, valid: true}, nil
	}
	if err != nil {
		return Generation{}, err
	}
	return Generation{group: group, n: n, valid: true}, nil
}

// groupOf returns the group prefix of key, up to and including the first
// colon.
func groupOf(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i+1]
	}
	return key
}

func entryKey(key string, gen Generation) string {
	return responseKeyPrefix + key + "@" + strconv.FormatInt(gen.n, 10)
}

// AllProjectsKey is the key of the full project listing.
func AllProjectsKey() string {
	return ProjectsGroup + "all"
}

// FeaturedProjectsKey is the key of the featured project listing.
func FeaturedProjectsKey() string {
	return ProjectsGroup + "featured"
}

// CategoryKey is the key of a single category listing.
func CategoryKey(category string) string {
	return ProjectsGroup + "category:" + category
}

// VisibleTestimonialsKey is the key of the public testimonial listing.
func VisibleTestimonialsKey() string {
	return TestimonialsGroup + "visible"
}

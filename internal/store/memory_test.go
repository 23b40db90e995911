// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Flag      bool      `json:"flag"`
	Count     int64     `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

func insertDoc(t *testing.T, c Collection, d testDoc) {
	t.Helper()
	doc, err := Marshal(d)
	require.NoError(t, err)
	require.NoError(t, c.InsertOne(context.Background(), d.ID, doc))
}

func TestMemCollection_FindManyFilters(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")

	insertDoc(t, c, testDoc{ID: "1", Kind: "a", Flag: true})
	insertDoc(t, c, testDoc{ID: "2", Kind: "b"})
	insertDoc(t, c, testDoc{ID: "3", Kind: "a"})

	t.Run("empty filter returns all in insertion order", func(t *testing.T) {
		docs, err := c.FindMany(ctx, Filter{}, FindOptions{})
		require.NoError(t, err)
		got, err := UnmarshalAll[testDoc](docs)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"1", "2", "3"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("string field", func(t *testing.T) {
		docs, err := c.FindMany(ctx, Filter{"kind": "a"}, FindOptions{})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})

	t.Run("bool field", func(t *testing.T) {
		docs, err := c.FindMany(ctx, Filter{"flag": true}, FindOptions{})
		require.NoError(t, err)
		got, err := UnmarshalAll[testDoc](docs)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("case sensitive", func(t *testing.T) {
		docs, err := c.FindMany(ctx, Filter{"kind": "A"}, FindOptions{})
		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})

	t.Run("limit", func(t *testing.T) {
		docs, err := c.FindMany(ctx, Filter{}, FindOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, docs, 2)
	})
}

func TestMemCollection_FindManyCapsAtMaxBatch(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	for i := 0; i < MaxBatch+5; i++ {
		insertDoc(t, c, testDoc{ID: fmt.Sprintf("%d", i)})
	}

	docs, err := c.FindMany(ctx, Filter{}, FindOptions{Limit: MaxBatch * 2})
	require.NoError(t, err)
	assert.Len(t, docs, MaxBatch)
}

func TestMemCollection_SortDescending(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// Fractional seconds of different widths must still order by time.
	insertDoc(t, c, testDoc{ID: "old", CreatedAt: base.Add(100 * time.Millisecond)})
	insertDoc(t, c, testDoc{ID: "new", CreatedAt: base.Add(120 * time.Millisecond)})
	insertDoc(t, c, testDoc{ID: "oldest", CreatedAt: base})

	docs, err := c.FindMany(ctx, Filter{}, FindOptions{Sort: &Sort{Field: "created_at", Descending: true}})
	require.NoError(t, err)
	got, err := UnmarshalAll[testDoc](docs)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
	assert.Equal(t, "oldest", got[2].ID)
}

func TestMemCollection_SortTiesFollowDirection(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"a", "b", "c"} {
		insertDoc(t, c, testDoc{ID: id, CreatedAt: at})
	}

	ids := func(desc bool) []string {
		docs, err := c.FindMany(ctx, Filter{}, FindOptions{Sort: &Sort{Field: "created_at", Descending: desc}})
		require.NoError(t, err)
		got, err := UnmarshalAll[testDoc](docs)
		require.NoError(t, err)
		out := make([]string, 0, len(got))
		for _, d := range got {
			out = append(out, d.ID)
		}
		return out
	}

	assert.Equal(t, []string{"c", "b", "a"}, ids(true))
	assert.Equal(t, []string{"a", "b", "c"}, ids(false))
}

func TestMemCollection_FindOne(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	insertDoc(t, c, testDoc{ID: "1", Kind: "a"})

	doc, err := c.FindOne(ctx, Filter{"id": "1"})
	require.NoError(t, err)
	got, err := Unmarshal[testDoc](doc)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Kind)

	missing, err := c.FindOne(ctx, Filter{"id": "nope"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemCollection_InsertDuplicateID(t *testing.T) {
	c := NewMemCollection("things")
	insertDoc(t, c, testDoc{ID: "1"})

	doc, err := Marshal(testDoc{ID: "1"})
	require.NoError(t, err)
	assert.Error(t, c.InsertOne(context.Background(), "1", doc))
}

func TestMemCollection_UpdateOne(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	insertDoc(t, c, testDoc{ID: "1", Kind: "a", Count: 3})

	matched, err := c.UpdateOne(ctx, Filter{"id": "1"}, map[string]any{"flag": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	// Setting the same value again still matches.
	matched, err = c.UpdateOne(ctx, Filter{"id": "1"}, map[string]any{"flag": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	doc, err := c.FindOne(ctx, Filter{"id": "1"})
	require.NoError(t, err)
	got, err := Unmarshal[testDoc](doc)
	require.NoError(t, err)
	assert.True(t, got.Flag)
	assert.Equal(t, "a", got.Kind, "untouched fields are preserved")
	assert.Equal(t, int64(3), got.Count)

	matched, err = c.UpdateOne(ctx, Filter{"id": "missing"}, map[string]any{"flag": true})
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestMemCollection_IncrementConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	insertDoc(t, c, testDoc{ID: "1", Count: 10})

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			matched, err := c.Increment(ctx, Filter{}, "count", 1)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), matched)
		}()
	}
	wg.Wait()

	doc, err := c.FindOne(ctx, Filter{})
	require.NoError(t, err)
	got, err := Unmarshal[testDoc](doc)
	require.NoError(t, err)
	assert.Equal(t, int64(10+n), got.Count)
}

func TestMemCollection_IncrementMissingField(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	require.NoError(t, c.InsertOne(ctx, "1", Document(`{"id":"1"}`)))

	matched, err := c.Increment(ctx, Filter{"id": "1"}, "count", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	n, err := c.Count(ctx, Filter{"count": 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	matched, err = c.Increment(ctx, Filter{"id": "missing"}, "count", 1)
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestMemCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("things")
	insertDoc(t, c, testDoc{ID: "1"})
	insertDoc(t, c, testDoc{ID: "2"})

	deleted, err := c.DeleteOne(ctx, Filter{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = c.DeleteOne(ctx, Filter{"id": "1"})
	require.NoError(t, err)
	assert.Zero(t, deleted)

	n, err := c.Count(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMemCollection_FindOrInsertConcurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemCollection("singleton")

	const n = 50
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("cand-%d", i)
			doc, err := Marshal(testDoc{ID: id})
			if !assert.NoError(t, err) {
				return
			}
			got, err := c.FindOrInsert(ctx, Filter{}, id, doc)
			if !assert.NoError(t, err) {
				return
			}
			d, err := Unmarshal[testDoc](got)
			if assert.NoError(t, err) {
				ids[i] = d.ID
			}
		}(i)
	}
	wg.Wait()

	count, err := c.Count(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestMemCollection_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewMemCollection("things")
	_, err := c.FindMany(ctx, Filter{}, FindOptions{})
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))
}

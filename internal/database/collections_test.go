// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

// pgCollections returns the collections on an emptied test database.
func pgCollections(t *testing.T) *store.Collections {
	t.Helper()
	db := testDB(t)
	truncate(t, db)
	t.Cleanup(func() { truncate(t, db) })
	return store.NewPostgres(db)
}

func truncate(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`TRUNCATE projects, contacts, testimonials, profile`)
	require.NoError(t, err)
}

func TestPGSeedIdempotent(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()

	require.NoError(t, Seed(ctx, colls.Projects, colls.Testimonials))
	require.NoError(t, Seed(ctx, colls.Projects, colls.Testimonials))

	assert.EqualValues(t, 9, count(t, colls.Projects, store.Filter{}))
	assert.EqualValues(t, 3, count(t, colls.Testimonials, store.Filter{}))
	assert.EqualValues(t, 4, count(t, colls.Projects, store.Filter{"is_featured": true}))
}

func TestPGProjectRoundTrip(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	svc := service.NewProjects(colls.Projects)

	created, err := svc.Create(ctx, models.ProjectCreate{
		Title:    "Poster",
		Category: models.CategoryCV,
		Tags:     []string{"Print", "A3"},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Tags, got.Tags)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	cv, err := svc.ListByCategory(ctx, models.CategoryCV)
	require.NoError(t, err)
	assert.Len(t, cv, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), service.ErrNotFound)
}

func TestPGContactsNewestFirst(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	svc := service.NewContacts(colls.Contacts)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, models.ContactCreate{Name: "N", Email: "e@x.io", Message: msg})
		require.NoError(t, err)
		time.Sleep(time.Millisecond)
	}

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Message)
	assert.Equal(t, "first", list[2].Message)
}

func TestPGSortTiesFollowDirection(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	at := testNow.Format(time.RFC3339Nano)

	for _, id := range []string{"a", "b", "c"} {
		doc, err := store.Marshal(map[string]any{"id": id, "created_at": at})
		require.NoError(t, err)
		require.NoError(t, colls.Contacts.InsertOne(ctx, id, doc))
	}

	ids := func(desc bool) []string {
		docs, err := colls.Contacts.FindMany(ctx, store.Filter{}, store.FindOptions{Sort: &store.Sort{Field: "created_at", Descending: desc}})
		require.NoError(t, err)
		got, err := store.UnmarshalAll[struct {
			ID string `json:"id"`
		}](docs)
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

func TestPGProfileSingletonUnderConcurrency(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	svc := service.NewProfile(colls.Profile)

	const callers = 16
	ids := make([]string, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := svc.Get(ctx)
			if assert.NoError(t, err) {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.EqualValues(t, 1, count(t, colls.Profile, store.Filter{}))
}

func TestPGConcurrentCVIncrement(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	svc := service.NewProfile(colls.Profile)

	_, err := svc.Get(ctx)
	require.NoError(t, err)

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.IncrementCVDownload(ctx))
		}()
	}
	wg.Wait()

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, n, p.CVDownloadCount)
}

func TestPGProfilePartialUpdate(t *testing.T) {
	colls := pgCollections(t)
	ctx := context.Background()
	svc := service.NewProfile(colls.Profile)

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	bio := "X"
	after, err := svc.Update(ctx, models.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "X", after.Bio)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Email, after.Email)
	assert.Equal(t, before.TotalProjects, after.TotalProjects)
	assert.Equal(t, before.ID, after.ID)
}

// Copyright (c) 2026 Fyyur. All rights reserved.

package artist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/postgres/pgtest"
)

type pgFixture struct {
	artists *artist.PostgresRepository
	shows   *show.PostgresRepository
	seed    seed
	venue   int
}

func newPGFixture(t *testing.T) *pgFixture {
	t.Helper()
	pool := pgtest.Open(t)
	ctx := context.Background()

	fixture := &pgFixture{
		artists: artist.NewPostgresRepository(pool),
		shows:   show.NewPostgresRepository(pool),
	}

	_, s := seededStore()
	for _, record := range []*artist.Artist{&s.petals, &s.quevado, &s.sax} {
		record.ID = 0
		require.NoError(t, fixture.artists.Create(ctx, record))
	}
	fixture.seed = s

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO "Venue" (name, city, state, address) VALUES ('The Musical Hop', 'San Francisco', 'CA', '1015 Folsom Street') RETURNING id`,
	).Scan(&fixture.venue))

	return fixture
}

func TestPostgresRepository_GetRoundTripsFields(t *testing.T) {
	fixture := newPGFixture(t)

	got, err := fixture.artists.Get(context.Background(), fixture.seed.petals.ID)
	require.NoError(t, err)
	assert.Equal(t, fixture.seed.petals, *got)

	_, err = fixture.artists.Get(context.Background(), fixture.seed.sax.ID+100)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPostgresRepository_Search(t *testing.T) {
	fixture := newPGFixture(t)
	now := time.Now()

	tests := []struct {
		term string
		want []string
	}{
		{"A", []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{"band", []string{"The Wild Sax Band"}},
		{"", []string{"Guns N Petals", "Matt Quevado", "The Wild Sax Band"}},
		{"%", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			summaries, err := fixture.artists.Search(context.Background(), tt.term, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(summaries))
		})
	}
}

func TestPostgresRepository_ListSummariesCountsUpcoming(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()
	now := time.Date(2030, 6, 15, 21, 0, 0, 0, time.UTC)

	for _, start := range []time.Time{now.Add(-time.Hour), now, now.Add(time.Hour)} {
		require.NoError(t, fixture.shows.Create(ctx, &show.Show{
			VenueID: fixture.venue, ArtistID: fixture.seed.sax.ID, StartTime: start,
		}))
	}

	summaries, err := fixture.artists.ListSummaries(ctx, now)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "The Wild Sax Band", summaries[2].Name)
	assert.Equal(t, 1, summaries[2].NumUpcomingShows)
	assert.Zero(t, summaries[0].NumUpcomingShows)
}

func TestPostgresRepository_Update(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()

	edited := fixture.seed.quevado
	edited.Genres = []string{"Jazz", "Soul"}
	edited.SeekingVenue = true
	edited.SeekingDescription = "Weekends only."
	require.NoError(t, fixture.artists.Update(ctx, &edited))

	got, err := fixture.artists.Get(ctx, edited.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, *got)

	missing := edited
	missing.ID = fixture.seed.sax.ID + 100
	assert.True(t, apperr.IsNotFound(fixture.artists.Update(ctx, &missing)))
}

func TestPostgresRepository_CreateRejectsBlankName(t *testing.T) {
	fixture := newPGFixture(t)

	err := fixture.artists.Create(context.Background(), &artist.Artist{Name: " "})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation), "got %v", err)

	summaries, err := fixture.artists.ListSummaries(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Len(t, summaries, 3)
}

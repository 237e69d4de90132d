// Copyright (c) 2026 Fyyur. All rights reserved.

package venue_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/core/venue"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/postgres/pgtest"
)

type pgFixture struct {
	pool   *pgxpool.Pool
	venues *venue.PostgresRepository
	shows  *show.PostgresRepository
	hop    venue.Venue
	park   venue.Venue
	artist int
}

func newPGFixture(t *testing.T) *pgFixture {
	t.Helper()
	pool := pgtest.Open(t)
	ctx := context.Background()

	fixture := &pgFixture{
		pool:   pool,
		venues: venue.NewPostgresRepository(pool),
		shows:  show.NewPostgresRepository(pool),
	}

	fixture.hop = venue.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street",
		Genres: []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}, SeekingTalent: true,
	}
	fixture.park = venue.Venue{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
		Address: "34 Whiskey Moore Ave", Genres: []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
	}
	require.NoError(t, fixture.venues.Create(ctx, &fixture.hop))
	require.NoError(t, fixture.venues.Create(ctx, &fixture.park))

	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO "Artist" (name, city, state) VALUES ('Guns N Petals', 'San Francisco', 'CA') RETURNING id`,
	).Scan(&fixture.artist))

	return fixture
}

func (fixture *pgFixture) book(t *testing.T, venueID int, start time.Time) {
	t.Helper()
	require.NoError(t, fixture.shows.Create(context.Background(), &show.Show{
		VenueID: venueID, ArtistID: fixture.artist, StartTime: start,
	}))
}

func (fixture *pgFixture) showCount(t *testing.T, venueID int) int {
	t.Helper()
	var count int
	require.NoError(t, fixture.pool.QueryRow(context.Background(),
		`SELECT count(*) FROM "Show" WHERE venue_id = $1`, venueID).Scan(&count))
	return count
}

func TestPostgresRepository_GetRoundTripsGenres(t *testing.T) {
	fixture := newPGFixture(t)

	got, err := fixture.venues.Get(context.Background(), fixture.hop.ID)
	require.NoError(t, err)
	assert.Equal(t, fixture.hop, *got)

	_, err = fixture.venues.Get(context.Background(), fixture.park.ID+100)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPostgresRepository_Search(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()
	now := time.Now()

	tests := []struct {
		term string
		want []string
	}{
		{"Hop", []string{"The Musical Hop"}},
		{"music", []string{"Park Square Live Music & Coffee", "The Musical Hop"}},
		{"", []string{"Park Square Live Music & Coffee", "The Musical Hop"}},
		{"%", []string{}},
		{"_", []string{}},
		{"&", []string{"Park Square Live Music & Coffee"}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			summaries, err := fixture.venues.Search(ctx, tt.term, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(summaries))
		})
	}
}

func TestPostgresRepository_UpcomingCountIsStrict(t *testing.T) {
	fixture := newPGFixture(t)
	now := time.Date(2030, 1, 1, 20, 0, 0, 0, time.UTC)

	fixture.book(t, fixture.hop.ID, now.Add(-time.Hour))
	fixture.book(t, fixture.hop.ID, now)
	fixture.book(t, fixture.hop.ID, now.Add(time.Hour))
	fixture.book(t, fixture.hop.ID, now.AddDate(0, 1, 0))

	summaries, err := fixture.venues.ListSummaries(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	counts := map[int]int{}
	for _, summary := range summaries {
		counts[summary.ID] = summary.NumUpcomingShows
	}
	assert.Equal(t, 2, counts[fixture.hop.ID])
	assert.Equal(t, 0, counts[fixture.park.ID])
}

func TestPostgresRepository_Update(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()

	edited := fixture.hop
	edited.Name = "The Musical Hop Revival"
	edited.Genres = []string{}
	edited.SeekingTalent = false
	edited.Website = "https://www.themusicalhop.com"
	require.NoError(t, fixture.venues.Update(ctx, &edited))

	got, err := fixture.venues.Get(ctx, fixture.hop.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, *got)

	missing := edited
	missing.ID = fixture.park.ID + 100
	assert.True(t, apperr.IsNotFound(fixture.venues.Update(ctx, &missing)))
}

func TestPostgresRepository_UpdateRollsBackOnFailure(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()

	broken := fixture.hop
	broken.Name = "   "
	err := fixture.venues.Update(ctx, &broken)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation), "got %v", err)

	got, err := fixture.venues.Get(ctx, fixture.hop.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
}

func TestPostgresRepository_DeleteCascade(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()
	fixture.book(t, fixture.hop.ID, time.Now().Add(-time.Hour))
	fixture.book(t, fixture.hop.ID, time.Now().Add(time.Hour))
	fixture.book(t, fixture.park.ID, time.Now().Add(time.Hour))

	removed, err := fixture.venues.Delete(ctx, fixture.hop.ID, venue.DeleteCascade)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = fixture.venues.Get(ctx, fixture.hop.ID)
	assert.True(t, apperr.IsNotFound(err))
	assert.Zero(t, fixture.showCount(t, fixture.hop.ID))
	assert.Equal(t, 1, fixture.showCount(t, fixture.park.ID))
}

func TestPostgresRepository_DeleteRestrict(t *testing.T) {
	fixture := newPGFixture(t)
	ctx := context.Background()
	fixture.book(t, fixture.hop.ID, time.Now().Add(time.Hour))

	_, err := fixture.venues.Delete(ctx, fixture.hop.ID, venue.DeleteRestrict)
	assert.True(t, apperr.HasCode(err, apperr.CodeIntegrity), "got %v", err)

	_, err = fixture.venues.Get(ctx, fixture.hop.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fixture.showCount(t, fixture.hop.ID))

	removed, err := fixture.venues.Delete(ctx, fixture.park.ID, venue.DeleteRestrict)
	require.NoError(t, err)
	assert.Zero(t, removed)

	_, err = fixture.venues.Delete(ctx, fixture.park.ID, venue.DeleteRestrict)
	assert.True(t, apperr.IsNotFound(err))
}

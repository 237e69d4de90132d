// Copyright (c) 2026 Fyyur. All rights reserved.

package artist_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/core/artist"
)

func TestForm_RoundTrip(t *testing.T) {
	form := validForm("The Wild Sax Band")
	form.Genres = []string{" Jazz ", "Classical", "Jazz", ""}

	record := form.Artist()
	assert.Equal(t, []string{"Jazz", "Classical"}, []string(record.Genres))
	assert.Zero(t, record.ID)

	back := artist.FormFrom(record)
	assert.Equal(t, []string{"Jazz", "Classical"}, back.Genres)
	assert.Equal(t, form.SeekingDescription, back.SeekingDescription)
	assert.True(t, back.SeekingVenue)
}

func TestFormFrom_DoesNotAliasGenres(t *testing.T) {
	record := artist.Artist{Name: "Matt Quevado", Genres: []string{"Jazz"}}

	form := artist.FormFrom(record)
	form.Genres[0] = "Soul"

	assert.Equal(t, "Jazz", record.Genres[0])
}

func TestDetail_JSONFlattensArtist(t *testing.T) {
	detail := artist.Detail{
		Artist: artist.Artist{ID: 4, Name: "Guns N Petals"},
		PastShows: []artist.Appearance{{
			VenueID: 1, VenueName: "The Musical Hop", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		}},
		UpcomingShows:  []artist.Appearance{},
		PastShowsCount: 1,
	}

	raw, err := json.Marshal(detail)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Guns N Petals", decoded["name"])
	assert.Equal(t, []any{}, decoded["genres"])
	assert.Equal(t, []any{}, decoded["upcoming_shows"])
	assert.EqualValues(t, 1, decoded["past_shows_count"])
	assert.Contains(t, string(raw), `"venue_name":"The Musical Hop"`)
	assert.Contains(t, string(raw), `"start_time":"2019-05-21T21:30:00Z"`)
}

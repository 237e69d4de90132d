// Copyright (c) 2026 Fyyur. All rights reserved.

package show_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/core/show"
)

func TestSplit(t *testing.T) {
	now := time.Date(2026, 5, 21, 21, 30, 0, 0, time.UTC)
	listings := []show.Listing{
		{ID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ID: 2, StartTime: now.Add(time.Second)},
		{ID: 3, StartTime: now},
		{ID: 4, StartTime: now.Add(-time.Nanosecond)},
		{ID: 5, StartTime: now.Add(30 * 24 * time.Hour)},
	}

	buckets := show.Split(listings, now)

	assert.Equal(t, []int{1, 4}, ids(buckets.Past))
	assert.Equal(t, []int{2, 5}, ids(buckets.Upcoming))
}

func TestSplit_Empty(t *testing.T) {
	buckets := show.Split(nil, time.Now())
	assert.NotNil(t, buckets.Past)
	assert.NotNil(t, buckets.Upcoming)
	assert.Empty(t, buckets.Past)
	assert.Empty(t, buckets.Upcoming)
}

func TestSplit_EveryListingInAtMostOneBucket(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var listings []show.Listing
	for offset := -3; offset <= 3; offset++ {
		listings = append(listings, show.Listing{ID: offset + 10, StartTime: now.Add(time.Duration(offset) * time.Hour)})
	}

	buckets := show.Split(listings, now)
	assert.Len(t, buckets.Past, 3)
	assert.Len(t, buckets.Upcoming, 3)
	for _, listing := range buckets.Past {
		assert.NotContains(t, ids(buckets.Upcoming), listing.ID)
	}
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  string
	}{
		{"form default", "2035-04-01 20:00:00"},
		{"datetime-local", "2035-04-01T20:00"},
		{"datetime-local seconds", "2035-04-01T20:00:00"},
		{"rfc3339", "2035-04-01T20:00:00Z"},
		{"rfc3339 offset", "2035-04-01T22:00:00+02:00"},
		{"padded", "  2035-04-01 20:00:00 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := show.ParseStartTime(tt.raw)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseStartTime_Invalid(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "01/04/2035 20:00", "2035-13-01 20:00:00"} {
		_, err := show.ParseStartTime(raw)
		assert.Error(t, err, raw)
	}
}

func ids(listings []show.Listing) []int {
	out := make([]int, 0, len(listings))
	for _, listing := range listings {
		out = append(out, listing.ID)
	}
	return out
}

// Copyright (c) 2026 Fyyur. All rights reserved.

// Package show records performances of an artist at a venue and splits them
// into past and upcoming relative to the current time.
package show

import (
	"fmt"
	"strings"
	"time"

	"github.com/KonIngel/Fyyur/pkg/slice"
)

// Show is one booking of an artist at a venue.
type Show struct {
	ID        int       `json:"id"`
	VenueID   int       `json:"venue_id"`
	ArtistID  int       `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// Listing is a show joined with the display fields of its venue and artist.
type Listing struct {
	ID              int       `json:"-"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Buckets holds listings partitioned around a reference time.
type Buckets struct {
	Past     []Listing
	Upcoming []Listing
}

/*
Split partitions listings into past (strictly before now) and upcoming
(strictly after now). A listing starting exactly at now belongs to neither.

Input order is preserved within each bucket and both buckets are non-nil.
*/
func Split(listings []Listing, now time.Time) Buckets {
	return Buckets{
		Past:     slice.Filter(listings, func(listing Listing) bool { return listing.StartTime.Before(now) }),
		Upcoming: slice.Filter(listings, func(listing Listing) bool { return listing.StartTime.After(now) }),
	}
}

// Form is the submitted new-show form.
type Form struct {
	ArtistID  int    `form:"artist_id" json:"artist_id" validate:"gt=0"`
	VenueID   int    `form:"venue_id" json:"venue_id" validate:"gt=0"`
	StartTime string `form:"start_time" json:"start_time"`
}

const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)

// StartTimeLayout is the layout the new-show form is pre-filled with.
const StartTimeLayout = "2006-01-02 15:04:05"

// startTimeLayouts are tried in order; zone-less layouts are read as UTC.
var startTimeLayouts = []string{
	StartTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseStartTime parses a submitted start time.
func ParseStartTime(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("show: unrecognized start time %q", raw)
}

// Copyright (c) 2026 Fyyur. All rights reserved.

// Package artist manages performers: listing and searching them, detail pages
// with past and upcoming shows, and the create and edit flows.
package artist

import (
	"slices"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/genre"
)

// Artist is a performer that plays shows at venues.
type Artist struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	City               string     `json:"city"`
	State              string     `json:"state"`
	Phone              string     `json:"phone"`
	Genres             genre.List `json:"genres"`
	ImageLink          string     `json:"image_link"`
	FacebookLink       string     `json:"facebook_link"`
	SeekingVenue       bool       `json:"seeking_venue"`
	SeekingDescription string     `json:"seeking_description"`
}

// Entry is one row of the artist list page.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Summary is an artist with its count of strictly upcoming shows.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// Appearance is one of the artist's shows at a venue.
type Appearance struct {
	VenueID        int       `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Detail is an artist with its shows split around the current time.
type Detail struct {
	Artist
	PastShows          []Appearance `json:"past_shows"`
	UpcomingShows      []Appearance `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// Form is the submitted artist create or edit form.
type Form struct {
	Name               string   `form:"name" json:"name" validate:"required,max=200"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required"`
	Phone              string   `form:"phone" json:"phone" validate:"max=120"`
	Genres             []string `form:"genres" json:"genres" validate:"dive,excludes=0x2C"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"max=500"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"max=120"`
	SeekingVenue       bool     `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=1000"`
}

const (
	FieldName         = "name"
	FieldState        = "state"
	FieldGenres       = "genres"
	FieldImageLink    = "image_link"
	FieldFacebookLink = "facebook_link"
)

// Artist converts the form into an artist record without an id.
func (form Form) Artist() Artist {
	return Artist{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		Genres:             genre.Normalize(form.Genres),
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: form.SeekingDescription,
	}
}

// FormFrom binds an existing artist into an edit form.
func FormFrom(artist Artist) Form {
	return Form{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             slices.Clone([]string(artist.Genres)),
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}

// Copyright (c) 2026 Fyyur. All rights reserved.

// Package venue manages the places that host shows: listing them grouped by
// city and state, searching by name, detail pages with past and upcoming
// shows, and the create, edit and delete flows.
package venue

import (
	"cmp"
	"slices"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/genre"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	ImageLink     string     `json:"image_link"`
	FacebookLink  string     `json:"facebook_link"`
	Genres        genre.List `json:"genres"`
	Website       string     `json:"website"`
	SeekingTalent bool       `json:"seeking_talent"`
}

// Summary is a venue with its count of strictly upcoming shows.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	City             string `json:"-"`
	State            string `json:"-"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing one city and state.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// Appearance is an artist's show at this venue.
type Appearance struct {
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Detail is a venue with its shows split around the current time.
type Detail struct {
	Venue
	PastShows          []Appearance `json:"past_shows"`
	UpcomingShows      []Appearance `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

// DeletePolicy decides what happens to a venue's shows when it is deleted.
type DeletePolicy string

const (
	// DeleteCascade removes the venue's shows together with the venue.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteRestrict refuses to delete a venue that still has shows.
	DeleteRestrict DeletePolicy = "restrict"
)

/*
GroupByLocation partitions venues into one [Area] per distinct (city, state)
pair. Areas are ordered by city then state, and venues by name within an area.

Every input venue appears in exactly one area.
*/
func GroupByLocation(summaries []Summary) []Area {
	sorted := slices.Clone(summaries)
	slices.SortStableFunc(sorted, func(a, b Summary) int {
		return cmp.Or(
			cmp.Compare(a.City, b.City),
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})

	areas := []Area{}
	for _, summary := range sorted {
		last := len(areas) - 1
		if last < 0 || areas[last].City != summary.City || areas[last].State != summary.State {
			areas = append(areas, Area{City: summary.City, State: summary.State, Venues: []Summary{}})
			last++
		}
		areas[last].Venues = append(areas[last].Venues, summary)
	}
	return areas
}

// Form is the submitted venue create or edit form.
type Form struct {
	Name          string   `form:"name" json:"name" validate:"required,max=200"`
	City          string   `form:"city" json:"city" validate:"required,max=120"`
	State         string   `form:"state" json:"state" validate:"required"`
	Address       string   `form:"address" json:"address" validate:"required,max=120"`
	Phone         string   `form:"phone" json:"phone" validate:"max=120"`
	ImageLink     string   `form:"image_link" json:"image_link" validate:"max=500"`
	FacebookLink  string   `form:"facebook_link" json:"facebook_link" validate:"max=120"`
	Genres        []string `form:"genres" json:"genres" validate:"dive,excludes=0x2C"`
	Website       string   `form:"website" json:"website" validate:"max=500"`
	SeekingTalent bool     `form:"seeking_talent" json:"seeking_talent"`
}

const (
	FieldName         = "name"
	FieldState        = "state"
	FieldGenres       = "genres"
	FieldImageLink    = "image_link"
	FieldFacebookLink = "facebook_link"
	FieldWebsite      = "website"
)

// Venue converts the form into a venue record without an id.
func (form Form) Venue() Venue {
	return Venue{
		Name:          form.Name,
		City:          form.City,
		State:         form.State,
		Address:       form.Address,
		Phone:         form.Phone,
		ImageLink:     form.ImageLink,
		FacebookLink:  form.FacebookLink,
		Genres:        genre.Normalize(form.Genres),
		Website:       form.Website,
		SeekingTalent: form.SeekingTalent,
	}
}

// FormFrom binds an existing venue into an edit form.
func FormFrom(venue Venue) Form {
	return Form{
		Name:          venue.Name,
		City:          venue.City,
		State:         venue.State,
		Address:       venue.Address,
		Phone:         venue.Phone,
		ImageLink:     venue.ImageLink,
		FacebookLink:  venue.FacebookLink,
		Genres:        slices.Clone([]string(venue.Genres)),
		Website:       venue.Website,
		SeekingTalent: venue.SeekingTalent,
	}
}

// Copyright (c) 2026 Fyyur. All rights reserved.

package main

import (
	"time"

	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/venue"
)

var sampleVenues = []venue.Venue{
	{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "123-123-1234",
		Genres:        []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"},
		ImageLink:     "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
		FacebookLink:  "https://www.facebook.com/TheMusicalHop",
		Website:       "https://www.themusicalhop.com",
		SeekingTalent: true,
	},
	{
		Name:         "The Dueling Pianos Bar",
		City:         "New York",
		State:        "NY",
		Address:      "335 Delancey Street",
		Phone:        "914-003-1132",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		Website:      "https://www.theduelingpianos.com",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		City:         "San Francisco",
		State:        "CA",
		Address:      "34 Whiskey Moore Ave",
		Phone:        "415-000-1234",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
	},
}

var sampleArtists = []artist.Artist{
	{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	},
	{
		Name:         "Matt Quevado",
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		Genres:       []string{"Jazz"},
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
	},
	{
		Name:      "The Wild Sax Band",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		Genres:    []string{"Jazz", "Classical"},
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

// sampleShow books sampleArtists[Artist] at sampleVenues[Venue].
type sampleShow struct {
	Venue     int
	Artist    int
	StartTime time.Time
}

var sampleShows = []sampleShow{
	{Venue: 0, Artist: 0, StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{Venue: 2, Artist: 1, StartTime: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{Venue: 2, Artist: 2, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{Venue: 2, Artist: 2, StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{Venue: 2, Artist: 2, StartTime: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

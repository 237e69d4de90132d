// Copyright (c) 2026 Fyyur. All rights reserved.

package schema

// ArtistTable represents the "Artist" table
type ArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	Genres             string
	ImageLink          string
	FacebookLink       string
	SeekingVenue       string
	SeekingDescription string
}

// Artist is the schema definition for "Artist"
var Artist = ArtistTable{
	Table:              `"Artist"`,
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	Genres:             "genres",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	SeekingVenue:       "seeking_venue",
	SeekingDescription: "seeking_description",
}

// Columns lists every column in scan order.
func (t ArtistTable) Columns() []string {
	return append([]string{t.ID}, t.EditableColumns()...)
}

// EditableColumns lists the columns an edit replaces, in scan order.
func (t ArtistTable) EditableColumns() []string {
	return []string{
		t.Name, t.City, t.State, t.Phone, t.Genres, t.ImageLink,
		t.FacebookLink, t.SeekingVenue, t.SeekingDescription,
	}
}

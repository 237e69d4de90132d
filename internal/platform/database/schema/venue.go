// Copyright (c) 2026 Fyyur. All rights reserved.

// Package schema names the tables and columns the repositories query, so SQL
// strings never repeat raw identifiers.
package schema

// VenueTable represents the "Venue" table
type VenueTable struct {
	Table         string
	ID            string
	Name          string
	City          string
	State         string
	Address       string
	Phone         string
	ImageLink     string
	FacebookLink  string
	Genres        string
	Website       string
	SeekingTalent string
}

// Venue is the schema definition for "Venue"
var Venue = VenueTable{
	Table:         `"Venue"`,
	ID:            "id",
	Name:          "name",
	City:          "city",
	State:         "state",
	Address:       "address",
	Phone:         "phone",
	ImageLink:     "image_link",
	FacebookLink:  "facebook_link",
	Genres:        "genres",
	Website:       "website",
	SeekingTalent: "seeking_talent",
}

// Columns lists every column in scan order.
func (t VenueTable) Columns() []string {
	return append([]string{t.ID}, t.EditableColumns()...)
}

// EditableColumns lists the columns an edit replaces, in scan order.
func (t VenueTable) EditableColumns() []string {
	return []string{
		t.Name, t.City, t.State, t.Address, t.Phone, t.ImageLink,
		t.FacebookLink, t.Genres, t.Website, t.SeekingTalent,
	}
}

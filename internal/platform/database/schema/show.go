// Copyright (c) 2026 Fyyur. All rights reserved.

package schema

// ShowTable represents the "Show" table
type ShowTable struct {
	Table     string
	ID        string
	VenueID   string
	ArtistID  string
	StartTime string
}

// Show is the schema definition for "Show"
var Show = ShowTable{
	Table:     `"Show"`,
	ID:        "id",
	VenueID:   "venue_id",
	ArtistID:  "artist_id",
	StartTime: "start_time",
}

func (t ShowTable) Columns() []string {
	return []string{t.ID, t.VenueID, t.ArtistID, t.StartTime}
}

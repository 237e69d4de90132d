// Copyright (c) 2026 Fyyur. All rights reserved.

package show

import "context"

type Repository interface {
	Create(context context.Context, show *Show) error
	ListAll(context context.Context) ([]Listing, error)
	ListByVenue(context context.Context, venueID int) ([]Listing, error)
	ListByArtist(context context.Context, artistID int) ([]Listing, error)
}

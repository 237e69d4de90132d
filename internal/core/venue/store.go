// Copyright (c) 2026 Fyyur. All rights reserved.

package venue

import (
	"context"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/show"
)

// Repository persists venues. Upcoming show counts are computed against the
// supplied now so every caller shares the service clock.
type Repository interface {
	ListSummaries(context context.Context, now time.Time) ([]Summary, error)
	Search(context context.Context, term string, now time.Time) ([]Summary, error)
	Get(context context.Context, id int) (*Venue, error)
	Create(context context.Context, venue *Venue) error
	Update(context context.Context, venue *Venue) error

	// Delete removes the venue under policy and reports how many shows went with it.
	Delete(context context.Context, id int, policy DeletePolicy) (int, error)
}

// ShowLister lists the shows held at one venue.
type ShowLister interface {
	ListByVenue(context context.Context, venueID int) ([]show.Listing, error)
}

// Copyright (c) 2026 Fyyur. All rights reserved.

package artist

import (
	"context"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/show"
)

type Repository interface {
	ListSummaries(context context.Context, now time.Time) ([]Summary, error)
	Search(context context.Context, term string, now time.Time) ([]Summary, error)
	Get(context context.Context, id int) (*Artist, error)
	Create(context context.Context, artist *Artist) error
	Update(context context.Context, artist *Artist) error
}

// ShowLister lists the shows one artist plays.
type ShowLister interface {
	ListByArtist(context context.Context, artistID int) ([]show.Listing, error)
}

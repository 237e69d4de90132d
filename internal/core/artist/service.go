// Copyright (c) 2026 Fyyur. All rights reserved.

package artist

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/genre"
	"github.com/KonIngel/Fyyur/internal/core/location"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/platform/validate"
	"github.com/KonIngel/Fyyur/pkg/slice"
)

type Service struct {
	repo   Repository
	shows  ShowLister
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, shows ShowLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		shows:  shows,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the service clock. Tests use it to pin "now".
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// List returns every artist ordered by name.
func (service *Service) List(context context.Context) ([]Entry, error) {
	summaries, err := service.repo.ListSummaries(context, service.now())
	if err != nil {
		return nil, err
	}
	return slice.Map(summaries, func(summary Summary) Entry {
		return Entry{ID: summary.ID, Name: summary.Name}
	}), nil
}

// Search matches term case-insensitively anywhere in the artist name.
// A blank term matches every artist.
func (service *Service) Search(context context.Context, term string) (SearchResult, error) {
	summaries, err := service.repo.Search(context, strings.TrimSpace(term), service.now())
	if err != nil {
		return SearchResult{}, err
	}
	if summaries == nil {
		summaries = []Summary{}
	}
	return SearchResult{Count: len(summaries), Data: summaries}, nil
}

func (service *Service) Get(context context.Context, id int) (*Artist, error) {
	return service.repo.Get(context, id)
}

// GetDetail returns the artist with its shows split into past and upcoming.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	artist, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	listings, err := service.shows.ListByArtist(context, id)
	if err != nil {
		return nil, err
	}

	buckets := show.Split(listings, service.now())
	return &Detail{
		Artist:             *artist,
		PastShows:          slice.Map(buckets.Past, toAppearance),
		UpcomingShows:      slice.Map(buckets.Upcoming, toAppearance),
		PastShowsCount:     len(buckets.Past),
		UpcomingShowsCount: len(buckets.Upcoming),
	}, nil
}

func (service *Service) Create(context context.Context, form Form) (*Artist, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	artist := form.Artist()
	if err := service.repo.Create(context, &artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_created", slog.Int("artist_id", artist.ID), slog.String("name", artist.Name))
	return &artist, nil
}

// Update replaces every editable field of an existing artist. A missing
// artist wins over an invalid form.
func (service *Service) Update(context context.Context, id int, form Form) (*Artist, error) {
	if _, err := service.repo.Get(context, id); err != nil {
		return nil, err
	}

	if err := validateForm(form); err != nil {
		return nil, err
	}

	artist := form.Artist()
	artist.ID = id
	if err := service.repo.Update(context, &artist); err != nil {
		return nil, err
	}

	service.logger.Info("artist_updated", slog.Int("artist_id", id))
	return &artist, nil
}

func validateForm(form Form) error {
	validator := &validate.Validator{}
	validator.Struct(form)

	if form.State != "" {
		validator.OneOf(FieldState, form.State, location.States...)
	}

	validator.
		EachOneOf(FieldGenres, genre.Normalize(form.Genres), genre.Choices...).
		URL(FieldImageLink, form.ImageLink).
		URL(FieldFacebookLink, form.FacebookLink)

	return validator.Err()
}

func toAppearance(listing show.Listing) Appearance {
	return Appearance{
		VenueID:        listing.VenueID,
		VenueName:      listing.VenueName,
		VenueImageLink: listing.VenueImageLink,
		StartTime:      listing.StartTime,
	}
}

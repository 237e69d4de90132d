// Copyright (c) 2026 Fyyur. All rights reserved.

package venue

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
	policy DeletePolicy
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, shows ShowLister, policy DeletePolicy, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		shows:  shows,
		policy: policy,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the service clock. Tests use it to pin "now".
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// ListByLocation returns every venue grouped into areas.
func (service *Service) ListByLocation(context context.Context) ([]Area, error) {
	summaries, err := service.repo.ListSummaries(context, service.now())
	if err != nil {
		return nil, err
	}
	return GroupByLocation(summaries), nil
}

// Search matches term case-insensitively anywhere in the venue name.
// A blank term matches every venue.
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

func (service *Service) Get(context context.Context, id int) (*Venue, error) {
	return service.repo.Get(context, id)
}

// GetDetail returns the venue with its shows split into past and upcoming.
func (service *Service) GetDetail(context context.Context, id int) (*Detail, error) {
	venue, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	listings, err := service.shows.ListByVenue(context, id)
	if err != nil {
		return nil, err
	}

	buckets := show.Split(listings, service.now())
	return &Detail{
		Venue:              *venue,
		PastShows:          slice.Map(buckets.Past, toAppearance),
		UpcomingShows:      slice.Map(buckets.Upcoming, toAppearance),
		PastShowsCount:     len(buckets.Past),
		UpcomingShowsCount: len(buckets.Upcoming),
	}, nil
}

func (service *Service) Create(context context.Context, form Form) (*Venue, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}

	venue := form.Venue()
	if err := service.repo.Create(context, &venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created", slog.Int("venue_id", venue.ID), slog.String("name", venue.Name))
	return &venue, nil
}

/*
Update replaces every editable field of an existing venue.

A missing venue is reported as NOT_FOUND before the form is validated, so an
edit of a deleted venue never looks like a form mistake.
*/
func (service *Service) Update(context context.Context, id int, form Form) (*Venue, error) {
	if _, err := service.repo.Get(context, id); err != nil {
		return nil, err
	}

	if err := validateForm(form); err != nil {
		return nil, err
	}

	venue := form.Venue()
	venue.ID = id
	if err := service.repo.Update(context, &venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int("venue_id", id))
	return &venue, nil
}

// Delete removes the venue under the configured policy and returns the
// deleted record.
func (service *Service) Delete(context context.Context, id int) (*Venue, error) {
	venue, err := service.repo.Get(context, id)
	if err != nil {
		return nil, err
	}

	removedShows, err := service.repo.Delete(context, id, service.policy)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("venue_deleted",
		slog.Int("venue_id", id),
		slog.String("policy", string(service.policy)),
		slog.Int("removed_shows", removedShows),
	)
	return venue, nil
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
		URL(FieldFacebookLink, form.FacebookLink).
		URL(FieldWebsite, form.Website)

	return validator.Err()
}

func toAppearance(listing show.Listing) Appearance {
	return Appearance{
		ArtistID:        listing.ArtistID,
		ArtistName:      listing.ArtistName,
		ArtistImageLink: listing.ArtistImageLink,
		StartTime:       listing.StartTime,
	}
}

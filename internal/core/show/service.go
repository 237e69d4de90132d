// Copyright (c) 2026 Fyyur. All rights reserved.

package show

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KonIngel/Fyyur/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the service clock. Tests use it to pin "now".
func (service *Service) WithClock(now func() time.Time) *Service {
	service.now = now
	return service
}

// List returns every show with its venue and artist display fields.
func (service *Service) List(context context.Context) ([]Listing, error) {
	listings, err := service.repo.ListAll(context)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

/*
Create validates the form and records the show.

A venue or artist id with no matching row is rejected by the foreign keys and
surfaces as an INTEGRITY_ERROR; nothing is persisted.
*/
func (service *Service) Create(context context.Context, form Form) (*Show, error) {
	validator := &validate.Validator{}
	validator.Struct(form).Required(FieldStartTime, form.StartTime)

	startTime, parseErr := ParseStartTime(form.StartTime)
	if strings.TrimSpace(form.StartTime) != "" {
		validator.Custom(FieldStartTime, parseErr != nil, "Must be a date and time such as 2026-05-21 21:30:00")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	show := &Show{VenueID: form.VenueID, ArtistID: form.ArtistID, StartTime: startTime}
	if err := service.repo.Create(context, show); err != nil {
		return nil, err
	}

	service.logger.Info("show_created",
		slog.Int("show_id", show.ID),
		slog.Int("venue_id", show.VenueID),
		slog.Int("artist_id", show.ArtistID),
	)
	return show, nil
}

// DefaultForm returns the new-show form pre-filled with the current time.
func (service *Service) DefaultForm() Form {
	return Form{StartTime: service.now().UTC().Format(StartTimeLayout)}
}

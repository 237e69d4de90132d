// Copyright (c) 2026 Fyyur. All rights reserved.

// Command seed loads the sample venues, artists and shows into the database.
//
// Usage:
//
//	go run ./cmd/seed          # migrate and append the samples
//	go run ./cmd/seed -reset   # drop every table first
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/core/venue"
	"github.com/KonIngel/Fyyur/internal/platform/config"
	"github.com/KonIngel/Fyyur/internal/platform/constants"
	"github.com/KonIngel/Fyyur/internal/platform/migration"
	pgstore "github.com/KonIngel/Fyyur/internal/platform/postgres"
)

func main() {
	reset := flag.Bool("reset", false, "drop and recreate every table before seeding")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))

	cfg, err := config.LoadSeed()
	must(log, err, "load configuration")

	if *reset {
		must(log, migration.Reset(cfg.DatabaseURL, cfg.MigrationPath, log), "reset schema")
	} else {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	if err := seed(ctx, pool, log); err != nil {
		pool.Close()
		must(log, err, "insert samples")
	}
}

// seed inserts the samples through the same repositories the server uses.
func seed(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	venues := venue.NewPostgresRepository(pool)
	artists := artist.NewPostgresRepository(pool)
	shows := show.NewPostgresRepository(pool)

	venueIDs := make([]int, len(sampleVenues))
	for i, sample := range sampleVenues {
		if err := venues.Create(ctx, &sample); err != nil {
			return err
		}
		venueIDs[i] = sample.ID
	}

	artistIDs := make([]int, len(sampleArtists))
	for i, sample := range sampleArtists {
		if err := artists.Create(ctx, &sample); err != nil {
			return err
		}
		artistIDs[i] = sample.ID
	}

	for _, sample := range sampleShows {
		booking := show.Show{
			VenueID:   venueIDs[sample.Venue],
			ArtistID:  artistIDs[sample.Artist],
			StartTime: sample.StartTime,
		}
		if err := shows.Create(ctx, &booking); err != nil {
			return err
		}
	}

	log.Info("seed_completed",
		slog.Int("venues", len(venueIDs)),
		slog.Int("artists", len(artistIDs)),
		slog.Int("shows", len(sampleShows)),
	)
	return nil
}

func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("seed_failure", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}

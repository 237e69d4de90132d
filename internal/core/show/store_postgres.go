// Copyright (c) 2026 Fyyur. All rights reserved.

package show

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KonIngel/Fyyur/internal/platform/database/schema"
	"github.com/KonIngel/Fyyur/internal/platform/dberr"
	"github.com/KonIngel/Fyyur/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// listingQuery selects columns in [Listing] field order.
var listingQuery = fmt.Sprintf(`
	SELECT s.%s, s.%s, v.%s, v.%s, s.%s, a.%s, a.%s, s.%s
	FROM %s s
	JOIN %s v ON v.%s = s.%s
	JOIN %s a ON a.%s = s.%s
`,
	schema.Show.ID, schema.Show.VenueID, schema.Venue.Name, schema.Venue.ImageLink,
	schema.Show.ArtistID, schema.Artist.Name, schema.Artist.ImageLink, schema.Show.StartTime,
	schema.Show.Table,
	schema.Venue.Table, schema.Venue.ID, schema.Show.VenueID,
	schema.Artist.Table, schema.Artist.ID, schema.Show.ArtistID,
)

var listingOrder = fmt.Sprintf(" ORDER BY s.%s ASC, s.%s ASC", schema.Show.StartTime, schema.Show.ID)

func (repository *PostgresRepository) Create(context context.Context, show *Show) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.Show.Table, schema.Show.VenueID, schema.Show.ArtistID, schema.Show.StartTime,
		schema.Show.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	})
	return dberr.Wrap(err, "create_show")
}

func (repository *PostgresRepository) ListAll(context context.Context) ([]Listing, error) {
	return repository.list(context, "list_shows", listingQuery+listingOrder)
}

func (repository *PostgresRepository) ListByVenue(context context.Context, venueID int) ([]Listing, error) {
	query := listingQuery + fmt.Sprintf(" WHERE s.%s = $1", schema.Show.VenueID) + listingOrder
	return repository.list(context, "list_venue_shows", query, venueID)
}

func (repository *PostgresRepository) ListByArtist(context context.Context, artistID int) ([]Listing, error) {
	query := listingQuery + fmt.Sprintf(" WHERE s.%s = $1", schema.Show.ArtistID) + listingOrder
	return repository.list(context, "list_artist_shows", query, artistID)
}

func (repository *PostgresRepository) list(context context.Context, action, query string, args ...any) ([]Listing, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Listing])
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return listings, nil
}

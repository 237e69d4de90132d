// Copyright (c) 2026 Fyyur. All rights reserved.

package venue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KonIngel/Fyyur/internal/core/genre"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
	"github.com/KonIngel/Fyyur/internal/platform/database/schema"
	"github.com/KonIngel/Fyyur/internal/platform/dberr"
	"github.com/KonIngel/Fyyur/internal/platform/postgres"
)

const resourceName = "Venue"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// summaryQuery selects columns in [Summary] field order; $1 is "now".
var summaryQuery = fmt.Sprintf(`
	SELECT v.%s, v.%s, v.%s, v.%s,
		(SELECT count(*) FROM %s s WHERE s.%s = v.%s AND s.%s > $1)
	FROM %s v
`,
	schema.Venue.ID, schema.Venue.Name, schema.Venue.City, schema.Venue.State,
	schema.Show.Table, schema.Show.VenueID, schema.Venue.ID, schema.Show.StartTime,
	schema.Venue.Table,
)

var summaryOrder = fmt.Sprintf(" ORDER BY v.%s, v.%s, v.%s, v.%s",
	schema.Venue.City, schema.Venue.State, schema.Venue.Name, schema.Venue.ID,
)

func (repository *PostgresRepository) ListSummaries(context context.Context, now time.Time) ([]Summary, error) {
	return repository.summaries(context, "list_venues", summaryQuery+summaryOrder, now)
}

func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Summary, error) {
	query := summaryQuery + fmt.Sprintf(" WHERE v.%s ILIKE $2", schema.Venue.Name) + summaryOrder
	return repository.summaries(context, "search_venues", query, now, postgres.ContainsPattern(term))
}

func (repository *PostgresRepository) summaries(context context.Context, action, query string, args ...any) ([]Summary, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}

	summaries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Summary])
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return summaries, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Venue, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Venue.Columns(), ", "), schema.Venue.Table, schema.Venue.ID,
	)

	venue, err := scanVenue(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.NotFound(err, resourceName, "get_venue")
	}
	return venue, nil
}

func (repository *PostgresRepository) Create(context context.Context, venue *Venue) error {
	columns := schema.Venue.EditableColumns()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`,
		schema.Venue.Table, strings.Join(columns, ", "),
		postgres.Placeholders(1, len(columns)),
		schema.Venue.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, editableArgs(venue)...).Scan(&venue.ID)
	})
	return dberr.Wrap(err, "create_venue")
}

func (repository *PostgresRepository) Update(context context.Context, venue *Venue) error {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		schema.Venue.Table, postgres.SetClause(schema.Venue.EditableColumns(), 2), schema.Venue.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query, append([]any{venue.ID}, editableArgs(venue)...)...)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return dberr.NotFound(err, resourceName, "update_venue")
}

/*
Delete removes the venue inside one transaction.

The venue row is locked first so no show can be booked against it while its
shows are counted. Under [DeleteRestrict] a venue with shows is rejected with
INTEGRITY_ERROR; under [DeleteCascade] its shows are deleted first.
*/
func (repository *PostgresRepository) Delete(context context.Context, id int, policy DeletePolicy) (int, error) {
	lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
		schema.Venue.ID, schema.Venue.Table, schema.Venue.ID)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`,
		schema.Show.Table, schema.Show.VenueID)
	deleteShowsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Show.Table, schema.Show.VenueID)
	deleteVenueQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Venue.Table, schema.Venue.ID)

	removedShows := 0
	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		var lockedID int
		if err := tx.QueryRow(context, lockQuery, id).Scan(&lockedID); err != nil {
			return err
		}

		var showCount int
		if err := tx.QueryRow(context, countQuery, id).Scan(&showCount); err != nil {
			return err
		}

		if showCount > 0 {
			if policy != DeleteCascade {
				return apperr.Integrity(fmt.Sprintf("Venue still has %d show(s) and cannot be deleted", showCount))
			}
			cmd, err := tx.Exec(context, deleteShowsQuery, id)
			if err != nil {
				return err
			}
			removedShows = int(cmd.RowsAffected())
		}

		_, err := tx.Exec(context, deleteVenueQuery, id)
		return err
	})
	if err != nil {
		return 0, dberr.NotFound(err, resourceName, "delete_venue")
	}
	return removedShows, nil
}

func editableArgs(venue *Venue) []any {
	return []any{
		venue.Name, venue.City, venue.State, venue.Address, venue.Phone, venue.ImageLink,
		venue.FacebookLink, genre.Join(venue.Genres), venue.Website, venue.SeekingTalent,
	}
}

func scanVenue(row pgx.Row) (*Venue, error) {
	venue := &Venue{}
	var genres string
	err := row.Scan(
		&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address, &venue.Phone,
		&venue.ImageLink, &venue.FacebookLink, &genres, &venue.Website, &venue.SeekingTalent,
	)
	if err != nil {
		return nil, err
	}
	venue.Genres = genre.Split(genres)
	return venue, nil
}

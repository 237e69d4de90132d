// Copyright (c) 2026 Fyyur. All rights reserved.

package artist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KonIngel/Fyyur/internal/core/genre"
	"github.com/KonIngel/Fyyur/internal/platform/database/schema"
	"github.com/KonIngel/Fyyur/internal/platform/dberr"
	"github.com/KonIngel/Fyyur/internal/platform/postgres"
)

const resourceName = "Artist"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// summaryQuery selects columns in [Summary] field order; $1 is "now".
var summaryQuery = fmt.Sprintf(`
	SELECT a.%s, a.%s,
		(SELECT count(*) FROM %s s WHERE s.%s = a.%s AND s.%s > $1)
	FROM %s a
`,
	schema.Artist.ID, schema.Artist.Name,
	schema.Show.Table, schema.Show.ArtistID, schema.Artist.ID, schema.Show.StartTime,
	schema.Artist.Table,
)

var summaryOrder = fmt.Sprintf(" ORDER BY a.%s ASC, a.%s ASC", schema.Artist.Name, schema.Artist.ID)

func (repository *PostgresRepository) ListSummaries(context context.Context, now time.Time) ([]Summary, error) {
	return repository.summaries(context, "list_artists", summaryQuery+summaryOrder, now)
}

func (repository *PostgresRepository) Search(context context.Context, term string, now time.Time) ([]Summary, error) {
	query := summaryQuery + fmt.Sprintf(" WHERE a.%s ILIKE $2", schema.Artist.Name) + summaryOrder
	return repository.summaries(context, "search_artists", query, now, postgres.ContainsPattern(term))
}

func (repository *PostgresRepository) summaries(context context.Context, action, query string, args ...any) ([]Summary, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	summaries := []Summary{}
	for rows.Next() {
		var summary Summary
		if err := rows.Scan(&summary.ID, &summary.Name, &summary.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist")
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return summaries, nil
}

func (repository *PostgresRepository) Get(context context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(schema.Artist.Columns(), ", "), schema.Artist.Table, schema.Artist.ID,
	)

	artist := &Artist{}
	var genres string
	err := repository.db.QueryRow(context, query, id).Scan(
		&artist.ID, &artist.Name, &artist.City, &artist.State, &artist.Phone, &genres,
		&artist.ImageLink, &artist.FacebookLink, &artist.SeekingVenue, &artist.SeekingDescription,
	)
	if err != nil {
		return nil, dberr.NotFound(err, resourceName, "get_artist")
	}

	artist.Genres = genre.Split(genres)
	return artist, nil
}

func (repository *PostgresRepository) Create(context context.Context, artist *Artist) error {
	columns := schema.Artist.EditableColumns()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (%s)
		RETURNING %s
	`,
		schema.Artist.Table, strings.Join(columns, ", "),
		postgres.Placeholders(1, len(columns)),
		schema.Artist.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		return tx.QueryRow(context, query, editableArgs(artist)...).Scan(&artist.ID)
	})
	return dberr.Wrap(err, "create_artist")
}

func (repository *PostgresRepository) Update(context context.Context, artist *Artist) error {
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		schema.Artist.Table, postgres.SetClause(schema.Artist.EditableColumns(), 2), schema.Artist.ID,
	)

	err := postgres.WithTx(context, repository.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(context, query, append([]any{artist.ID}, editableArgs(artist)...)...)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return dberr.NotFound(err, resourceName, "update_artist")
}

func editableArgs(artist *Artist) []any {
	return []any{
		artist.Name, artist.City, artist.State, artist.Phone, genre.Join(artist.Genres),
		artist.ImageLink, artist.FacebookLink, artist.SeekingVenue, artist.SeekingDescription,
	}
}

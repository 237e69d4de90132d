// Copyright (c) 2026 Fyyur. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KonIngel/Fyyur/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that are already an [apperr.AppError] pass through unchanged so that
// Wrap can be applied at every layer of a transaction without double wrapping.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if apperr.IsAppError(err) {
		return err
	}

	cause := fmt.Errorf("%s: %w", action, err)

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations reported by PostgreSQL
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return apperr.Integrity("Referenced record does not exist or is still in use").WithCause(cause)
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("Record already exists").WithCause(cause)
		case pgerrcode.NotNullViolation, pgerrcode.CheckViolation:
			return apperr.ValidationError("Required data is missing or invalid").WithCause(cause)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(cause)
}

// NotFound returns a NOT_FOUND error for the named resource when err is a
// missing-row error, and the [Wrap]ped error otherwise.
func NotFound(err error, resource, action string) error {
	wrapped := Wrap(err, action)
	if errors.Is(wrapped, ErrNotFound) {
		return apperr.NotFound(resource)
	}
	return wrapped
}

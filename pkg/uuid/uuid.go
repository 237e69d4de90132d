// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package uuid provides time-ordered unique identifiers for opaque tokens.

It wraps the standard UUID library to specifically generate Version 7 values.
Fyyur entities keep integer primary keys; UUIDs identify request ids and
pending flash notices.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
//
// It falls back to a random UUIDv4 if the v7 clock source fails.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	// Convert the UUID to a string
	return id.String()
}

// Copyright (c) 2026 Fyyur. All rights reserved.

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnsStartWithID(t *testing.T) {
	assert.Equal(t, Venue.ID, Venue.Columns()[0])
	assert.Equal(t, Artist.ID, Artist.Columns()[0])
	assert.Equal(t, Show.ID, Show.Columns()[0])

	assert.Len(t, Venue.Columns(), len(Venue.EditableColumns())+1)
	assert.Len(t, Artist.Columns(), len(Artist.EditableColumns())+1)
}

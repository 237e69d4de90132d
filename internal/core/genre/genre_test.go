// Copyright (c) 2026 Fyyur. All rights reserved.

package genre_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KonIngel/Fyyur/internal/core/genre"
)

func TestJoinSplitRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		list   []string
		joined string
	}{
		{"empty", []string{}, ""},
		{"nil", nil, ""},
		{"single", []string{"Jazz"}, "Jazz"},
		{"several", []string{"Jazz", "Reggae", "Swing"}, "Jazz,Reggae,Swing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined := genre.Join(tt.list)
			assert.Equal(t, tt.joined, joined)

			split := genre.Split(joined)
			require.NotNil(t, split)
			assert.Equal(t, genre.Normalize(tt.list), split)
		})
	}
}

func TestSplit_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, genre.List{"Jazz", "Blues"}, genre.Split(" Jazz , ,Blues,"))
	assert.Equal(t, genre.List{}, genre.Split(""))
	assert.Equal(t, genre.List{}, genre.Split(" , "))
}

func TestNormalize_Deduplicates(t *testing.T) {
	assert.Equal(t, genre.List{"Jazz", "Folk"}, genre.Normalize([]string{"Jazz", " Folk", "Jazz", ""}))
}

func TestContainsDelimiter(t *testing.T) {
	assert.True(t, genre.List{"Rock, Roll"}.ContainsDelimiter())
	assert.False(t, genre.List{"Rock n Roll", "Soul"}.ContainsDelimiter())
}

func TestMarshalJSON_NilIsEmptyArray(t *testing.T) {
	payload, err := json.Marshal(struct {
		Genres genre.List `json:"genres"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"genres": []}`, string(payload))
}

func TestIsChoice(t *testing.T) {
	assert.True(t, genre.IsChoice("Jazz"))
	assert.True(t, genre.IsChoice("R&B"))
	assert.False(t, genre.IsChoice("jazz"))
	assert.False(t, genre.IsChoice("Polka"))
}

// Copyright (c) 2026 Fyyur. All rights reserved.

package postgres

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds an ILIKE pattern matching term anywhere in the value.
// LIKE metacharacters in term match literally.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Placeholders renders n positional parameters starting at $start.
func Placeholders(start, n int) string {
	params := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(params, ", ")
}

// SetClause renders "col = $start, col2 = $start+1, ..." for an UPDATE.
func SetClause(columns []string, start int) string {
	assignments := make([]string, len(columns))
	for i, column := range columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, start+i)
	}
	return strings.Join(assignments, ", ")
}

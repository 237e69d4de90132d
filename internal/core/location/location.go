// Copyright (c) 2026 Fyyur. All rights reserved.

// Package location holds the US state codes offered by the venue and artist forms.
package location

import "slices"

// States are the two-letter state codes accepted by the forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// IsState reports whether code is one of [States].
func IsState(code string) bool {
	return slices.Contains(States, code)
}

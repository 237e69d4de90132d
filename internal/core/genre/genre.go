// Copyright (c) 2026 Fyyur. All rights reserved.

/*
Package genre handles the music genres attached to venues and artists.

Genres are a list in the domain and a single delimited column in the database.
[Join] and [Split] convert between the two; a [List] always marshals to a JSON
array, never null.
*/
package genre

import (
	"encoding/json"
	"slices"
	"strings"
)

// Delimiter separates genres in the stored column.
const Delimiter = ","

// Choices are the genres offered by the venue and artist forms.
var Choices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// List is an ordered list of genre names.
type List []string

// Join renders the list as the stored column value. The empty list joins to "".
func Join(list []string) string {
	return strings.Join(Normalize(list), Delimiter)
}

// Split parses a stored column value. Entries are trimmed and empty entries
// dropped, so "" yields an empty list rather than [""].
func Split(value string) List {
	list := List{}
	for _, entry := range strings.Split(value, Delimiter) {
		if clean := strings.TrimSpace(entry); clean != "" {
			list = append(list, clean)
		}
	}
	return list
}

// Normalize trims entries, drops empty ones and removes duplicates while
// keeping the first occurrence order.
func Normalize(values []string) List {
	list := make(List, 0, len(values))
	for _, value := range values {
		clean := strings.TrimSpace(value)
		if clean == "" || slices.Contains(list, clean) {
			continue
		}
		list = append(list, clean)
	}
	return list
}

// IsChoice reports whether value is one of the offered [Choices].
func IsChoice(value string) bool {
	return slices.Contains(Choices, value)
}

// String implements fmt.Stringer.
func (l List) String() string {
	return Join(l)
}

// ContainsDelimiter reports whether any entry would break the stored encoding.
func (l List) ContainsDelimiter() bool {
	return slices.ContainsFunc(l, func(entry string) bool {
		return strings.Contains(entry, Delimiter)
	})
}

// MarshalJSON renders a nil list as [] instead of null.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

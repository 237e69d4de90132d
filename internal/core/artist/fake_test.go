// Copyright (c) 2026 Fyyur. All rights reserved.

package artist_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/artist"
	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
)

// fakeStore keeps artists and their shows in memory and implements both
// artist.Repository and artist.ShowLister.
type fakeStore struct {
	mu      sync.Mutex
	nextID  int
	artists map[int]artist.Artist
	shows   []show.Listing
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, artists: map[int]artist.Artist{}}
}

func (store *fakeStore) add(a artist.Artist) artist.Artist {
	store.mu.Lock()
	defer store.mu.Unlock()
	a.ID = store.nextID
	store.nextID++
	store.artists[a.ID] = a
	return a
}

func (store *fakeStore) addShow(artistID, venueID int, venueName string, start time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.shows = append(store.shows, show.Listing{
		ID:         len(store.shows) + 1,
		VenueID:    venueID,
		VenueName:  venueName,
		ArtistID:   artistID,
		ArtistName: store.artists[artistID].Name,
		StartTime:  start,
	})
}

func (store *fakeStore) ListSummaries(_ context.Context, now time.Time) ([]artist.Summary, error) {
	return store.match("", now), nil
}

func (store *fakeStore) Search(_ context.Context, term string, now time.Time) ([]artist.Summary, error) {
	return store.match(term, now), nil
}

func (store *fakeStore) match(term string, now time.Time) []artist.Summary {
	store.mu.Lock()
	defer store.mu.Unlock()

	summaries := []artist.Summary{}
	for _, a := range store.artists {
		if !strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			continue
		}
		upcoming := 0
		for _, listing := range store.shows {
			if listing.ArtistID == a.ID && listing.StartTime.After(now) {
				upcoming++
			}
		}
		summaries = append(summaries, artist.Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming})
	}
	slices.SortFunc(summaries, func(a, b artist.Summary) int { return strings.Compare(a.Name, b.Name) })
	return summaries
}

func (store *fakeStore) Get(_ context.Context, id int) (*artist.Artist, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	a, ok := store.artists[id]
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	return &a, nil
}

func (store *fakeStore) Create(_ context.Context, a *artist.Artist) error {
	*a = store.add(*a)
	return nil
}

func (store *fakeStore) Update(_ context.Context, a *artist.Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.artists[a.ID]; !ok {
		return apperr.NotFound("Artist")
	}
	store.artists[a.ID] = *a
	return nil
}

func (store *fakeStore) ListByArtist(_ context.Context, artistID int) ([]show.Listing, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	listings := []show.Listing{}
	for _, listing := range store.shows {
		if listing.ArtistID == artistID {
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type seed struct {
	petals  artist.Artist
	quevado artist.Artist
	sax     artist.Artist
}

// seededStore holds the three sample artists. Guns N Petals has one past and
// one upcoming show.
func seededStore() (*fakeStore, seed) {
	store := newFakeStore()
	s := seed{
		petals: store.add(artist.Artist{
			Name: "Guns N Petals", City: "San Francisco", State: "CA",
			Genres: []string{"Rock n Roll"}, SeekingVenue: true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		}),
		quevado: store.add(artist.Artist{Name: "Matt Quevado", City: "New York", State: "NY", Genres: []string{"Jazz"}}),
		sax: store.add(artist.Artist{
			Name: "The Wild Sax Band", City: "San Francisco", State: "CA",
			Genres: []string{"Jazz", "Classical"},
		}),
	}
	store.addShow(s.petals.ID, 1, "The Musical Hop", testNow.Add(-24*time.Hour))
	store.addShow(s.petals.ID, 3, "Park Square Live Music & Coffee", testNow.Add(24*time.Hour))
	return store, s
}

func newService(store *fakeStore) *artist.Service {
	return artist.NewService(store, store, discardLogger()).WithClock(func() time.Time { return testNow })
}

func validForm(name string) artist.Form {
	return artist.Form{
		Name:               name,
		City:               "San Francisco",
		State:              "CA",
		Phone:              "432-325-5432",
		Genres:             []string{"Jazz", "Classical"},
		FacebookLink:       "https://www.facebook.com/TheWildSaxBand",
		ImageLink:          "https://images.example.com/sax.jpg",
		SeekingVenue:       true,
		SeekingDescription: "Booking anywhere on the west coast.",
	}
}

func names(summaries []artist.Summary) []string {
	out := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, summary.Name)
	}
	return out
}

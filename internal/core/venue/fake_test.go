// Copyright (c) 2026 Fyyur. All rights reserved.

package venue_test

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/KonIngel/Fyyur/internal/core/show"
	"github.com/KonIngel/Fyyur/internal/core/venue"
	"github.com/KonIngel/Fyyur/internal/platform/apperr"
)

// fakeStore keeps venues and their shows in memory and implements both
// venue.Repository and venue.ShowLister.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	venues map[int]venue.Venue
	shows  []show.Listing
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, venues: map[int]venue.Venue{}}
}

func (store *fakeStore) add(v venue.Venue) venue.Venue {
	store.mu.Lock()
	defer store.mu.Unlock()
	v.ID = store.nextID
	store.nextID++
	store.venues[v.ID] = v
	return v
}

func (store *fakeStore) addShow(venueID, artistID int, artistName string, start time.Time) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.shows = append(store.shows, show.Listing{
		ID:         len(store.shows) + 1,
		VenueID:    venueID,
		VenueName:  store.venues[venueID].Name,
		ArtistID:   artistID,
		ArtistName: artistName,
		StartTime:  start,
	})
}

func (store *fakeStore) ListSummaries(_ context.Context, now time.Time) ([]venue.Summary, error) {
	return store.match("", now), nil
}

func (store *fakeStore) Search(_ context.Context, term string, now time.Time) ([]venue.Summary, error) {
	return store.match(term, now), nil
}

func (store *fakeStore) match(term string, now time.Time) []venue.Summary {
	store.mu.Lock()
	defer store.mu.Unlock()

	summaries := []venue.Summary{}
	for _, v := range store.venues {
		if !strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			continue
		}
		upcoming := 0
		for _, listing := range store.shows {
			if listing.VenueID == v.ID && listing.StartTime.After(now) {
				upcoming++
			}
		}
		summaries = append(summaries, venue.Summary{ID: v.ID, Name: v.Name, City: v.City, State: v.State, NumUpcomingShows: upcoming})
	}
	slices.SortFunc(summaries, func(a, b venue.Summary) int { return a.ID - b.ID })
	return summaries
}

func (store *fakeStore) Get(_ context.Context, id int) (*venue.Venue, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	v, ok := store.venues[id]
	if !ok {
		return nil, apperr.NotFound("Venue")
	}
	return &v, nil
}

func (store *fakeStore) Create(_ context.Context, v *venue.Venue) error {
	*v = store.add(*v)
	return nil
}

func (store *fakeStore) Update(_ context.Context, v *venue.Venue) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.venues[v.ID]; !ok {
		return apperr.NotFound("Venue")
	}
	store.venues[v.ID] = *v
	return nil
}

func (store *fakeStore) Delete(_ context.Context, id int, policy venue.DeletePolicy) (int, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.venues[id]; !ok {
		return 0, apperr.NotFound("Venue")
	}

	remaining := store.shows[:0:0]
	for _, listing := range store.shows {
		if listing.VenueID != id {
			remaining = append(remaining, listing)
		}
	}
	removed := len(store.shows) - len(remaining)
	if removed > 0 && policy != venue.DeleteCascade {
		return 0, apperr.Integrity("Venue still has shows")
	}

	store.shows = remaining
	delete(store.venues, id)
	return removed, nil
}

func (store *fakeStore) ListByVenue(_ context.Context, venueID int) ([]show.Listing, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	listings := []show.Listing{}
	for _, listing := range store.shows {
		if listing.VenueID == venueID {
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// seededStore holds the two sample venues and one show on each side of testNow.
func seededStore() (*fakeStore, venue.Venue, venue.Venue) {
	store := newFakeStore()
	hop := store.add(venue.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA",
		Address: "1015 Folsom Street", Genres: []string{"Jazz", "Reggae"},
	})
	park := store.add(venue.Venue{
		Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
		Address: "34 Whiskey Moore Ave", Genres: []string{"Rock n Roll", "Jazz"},
	})
	store.addShow(hop.ID, 4, "Guns N Petals", testNow.Add(-24*time.Hour))
	store.addShow(park.ID, 6, "The Wild Sax Band", testNow.Add(24*time.Hour))
	return store, hop, park
}

func newService(store *fakeStore, policy venue.DeletePolicy) *venue.Service {
	return venue.NewService(store, store, policy, discardLogger()).WithClock(func() time.Time { return testNow })
}

func validForm(name string) venue.Form {
	return venue.Form{
		Name:          name,
		City:          "New York",
		State:         "NY",
		Address:       "335 Delancey Street",
		Phone:         "914-003-1132",
		Genres:        []string{"Jazz", "Classical"},
		FacebookLink:  "https://www.facebook.com/theduelingpianos",
		Website:       "https://www.theduelingpianos.com",
		SeekingTalent: true,
	}
}

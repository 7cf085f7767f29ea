package handler_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
)

var errStoreDown = errors.New("store down")

// memStore is an in-memory stand-in for the three repositories.  Setting
// failWrites makes every write fail the way a lost database would.
type memStore struct {
	mu         sync.Mutex
	venues     []model.Venue
	artists    []model.Artist
	shows      []model.Show
	nextID     int64
	failWrites bool
}

func (s *memStore) id() int64 { s.nextID++; return s.nextID }

type venueStore struct{ *memStore }
type artistStore struct{ *memStore }
type showStore struct{ *memStore }

func (s venueStore) Create(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	v.DeriveSeeking()
	v.ID = s.id()
	s.venues = append(s.venues, *v)
	return nil
}

func (s venueStore) GetByID(_ context.Context, id int64) (*model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.venues {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, repository.ErrVenueNotFound
}

func (s venueStore) List(context.Context) ([]model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.Venue(nil), s.venues...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].City < out[j].City
	})
	return out, nil
}

func (s venueStore) Recent(_ context.Context, limit int) ([]model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Venue
	for i := len(s.venues) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.venues[i])
	}
	return out, nil
}

func (s venueStore) Search(_ context.Context, term string) ([]model.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Venue
	for _, v := range s.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s venueStore) Update(_ context.Context, v *model.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	for i := range s.venues {
		if s.venues[i].ID == v.ID {
			v.DeriveSeeking()
			s.venues[i] = *v
			return nil
		}
	}
	return repository.ErrVenueNotFound
}

func (s venueStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	for i := range s.venues {
		if s.venues[i].ID == id {
			s.venues = append(s.venues[:i], s.venues[i+1:]...)
			kept := s.shows[:0]
			for _, sh := range s.shows {
				if sh.VenueID != id {
					kept = append(kept, sh)
				}
			}
			s.shows = kept
			return nil
		}
	}
	return repository.ErrVenueNotFound
}

func (s artistStore) Create(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	a.DeriveSeeking()
	a.ID = s.id()
	s.artists = append(s.artists, *a)
	return nil
}

func (s artistStore) GetByID(_ context.Context, id int64) (*model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.artists {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, repository.ErrArtistNotFound
}

func (s artistStore) List(context.Context) ([]model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Artist(nil), s.artists...), nil
}

func (s artistStore) Recent(_ context.Context, limit int) ([]model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Artist
	for i := len(s.artists) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.artists[i])
	}
	return out, nil
}

func (s artistStore) Search(_ context.Context, term string) ([]model.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Artist
	for _, a := range s.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s artistStore) Update(_ context.Context, a *model.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	for i := range s.artists {
		if s.artists[i].ID == a.ID {
			a.DeriveSeeking()
			s.artists[i] = *a
			return nil
		}
	}
	return repository.ErrArtistNotFound
}

func (s showStore) Create(_ context.Context, sh *model.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return errStoreDown
	}
	venueOK, artistOK := false, false
	for _, v := range s.venues {
		venueOK = venueOK || v.ID == sh.VenueID
	}
	for _, a := range s.artists {
		artistOK = artistOK || a.ID == sh.ArtistID
	}
	if !venueOK || !artistOK {
		return repository.ErrConflict
	}
	for _, x := range s.shows {
		if x.VenueID == sh.VenueID && x.ArtistID == sh.ArtistID && x.StartTime.Equal(sh.StartTime) {
			return repository.ErrConflict
		}
	}
	sh.ID = s.id()
	s.shows = append(s.shows, *sh)
	return nil
}

func (s showStore) All(context.Context) ([]model.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Show(nil), s.shows...), nil
}

func (s showStore) listing(keep func(model.Show) bool) []model.ShowListing {
	var out []model.ShowListing
	for _, sh := range s.shows {
		if !keep(sh) {
			continue
		}
		l := model.ShowListing{ID: sh.ID, VenueID: sh.VenueID, ArtistID: sh.ArtistID, StartTime: sh.StartTime}
		for _, v := range s.venues {
			if v.ID == sh.VenueID {
				l.VenueName, l.VenueImageLink = v.Name, v.ImageLink
			}
		}
		for _, a := range s.artists {
			if a.ID == sh.ArtistID {
				l.ArtistName, l.ArtistImageLink = a.Name, a.ImageLink
			}
		}
		out = append(out, l)
	}
	return out
}

func (s showStore) List(context.Context) ([]model.ShowListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listing(func(model.Show) bool { return true }), nil
}

func (s showStore) ListByVenue(_ context.Context, id int64) ([]model.ShowListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listing(func(sh model.Show) bool { return sh.VenueID == id }), nil
}

func (s showStore) ListByArtist(_ context.Context, id int64) ([]model.ShowListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listing(func(sh model.Show) bool { return sh.ArtistID == id }), nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.ListingEvent
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.ListingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

// countingPurger counts cache purges.
type countingPurger struct{ n int }

func (p *countingPurger) Purge(context.Context) error { p.n++; return nil }

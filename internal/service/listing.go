// Package service holds the listing logic that sits between the handlers and
// the repositories: grouping venues by area, splitting shows into past and
// upcoming, and publishing listing events.  Functions here take the current
// time as an argument so callers decide what "now" is.
package service

import (
	"time"

	"github.com/iliyamo/fyyur/internal/model"
)

// Area is one (city, state) group of the venue listing.
type Area struct {
	City   string
	State  string
	Venues []Summary
}

// Summary is the short form of a venue or artist used by the area listing
// and by search results.
type Summary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int
	Data  []Summary
}

// ByVenue and ByArtist select the side of a show that CountUpcoming counts.
var (
	ByVenue  = func(s model.Show) int64 { return s.VenueID }
	ByArtist = func(s model.Show) int64 { return s.ArtistID }
)

// IsUpcoming reports whether a show starting at start is upcoming at now.
// A show starting exactly now counts as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// CountUpcoming returns the number of upcoming shows per id picked by by.
func CountUpcoming(shows []model.Show, now time.Time, by func(model.Show) int64) map[int64]int {
	counts := make(map[int64]int)
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			counts[by(s)]++
		}
	}
	return counts
}

// GroupByArea groups venues by their (city, state) pair.  Groups appear in
// the order their first venue appears in venues, and venues keep their
// relative order inside a group.
func GroupByArea(venues []model.Venue, shows []model.Show, now time.Time) []Area {
	counts := CountUpcoming(shows, now, ByVenue)

	type areaKey struct{ city, state string }
	index := make(map[areaKey]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: counts[v.ID],
		})
	}
	return areas
}

// PartitionShows splits shows into past (start before now) and upcoming
// (start at or after now).  Every show lands in exactly one of the two and
// the input order is preserved.
func PartitionShows(shows []model.ShowListing, now time.Time) (past, upcoming []model.ShowListing) {
	past = make([]model.ShowListing, 0)
	upcoming = make([]model.ShowListing, 0)
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// SearchVenues builds the search result for matched venues.
func SearchVenues(venues []model.Venue, shows []model.Show, now time.Time) SearchResult {
	counts := CountUpcoming(shows, now, ByVenue)
	res := SearchResult{Count: len(venues), Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return res
}

// SearchArtists builds the search result for matched artists.
func SearchArtists(artists []model.Artist, shows []model.Show, now time.Time) SearchResult {
	counts := CountUpcoming(shows, now, ByArtist)
	res := SearchResult{Count: len(artists), Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		res.Data = append(res.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return res
}

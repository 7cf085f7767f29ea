package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/fyyur/internal/model"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGroupByArea(t *testing.T) {
	venues := []model.Venue{
		{ID: 3, Name: "Sunset", City: "Oakland", State: "CA"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "Park Square", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
	}
	shows := []model.Show{
		{VenueID: 1, StartTime: now.Add(time.Hour)},
		{VenueID: 1, StartTime: now},
		{VenueID: 1, StartTime: now.Add(-time.Second)},
		{VenueID: 2, StartTime: now.Add(-24 * time.Hour)},
		{VenueID: 4, StartTime: now.Add(48 * time.Hour)},
	}

	got := GroupByArea(venues, shows, now)
	assert.Equal(t, []Area{
		{City: "Oakland", State: "CA", Venues: []Summary{{ID: 3, Name: "Sunset"}}},
		{City: "San Francisco", State: "CA", Venues: []Summary{
			{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2},
			{ID: 4, Name: "Park Square", NumUpcomingShows: 1},
		}},
		{City: "New York", State: "NY", Venues: []Summary{{ID: 2, Name: "The Dueling Pianos Bar"}}},
	}, got)

	assert.Empty(t, GroupByArea(nil, shows, now))
}

func TestGroupByAreaSameCityDifferentState(t *testing.T) {
	venues := []model.Venue{
		{ID: 1, Name: "A", City: "Portland", State: "ME"},
		{ID: 2, Name: "B", City: "Portland", State: "OR"},
	}
	got := GroupByArea(venues, nil, now)
	assert.Len(t, got, 2)
}

func TestPartitionShows(t *testing.T) {
	shows := []model.ShowListing{
		{ID: 1, StartTime: now.Add(-time.Minute)},
		{ID: 2, StartTime: now},
		{ID: 3, StartTime: now.Add(time.Minute)},
		{ID: 4, StartTime: now.Add(-365 * 24 * time.Hour)},
	}
	past, upcoming := PartitionShows(shows, now)

	ids := func(ss []model.ShowListing) []int64 {
		out := []int64{}
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}
	assert.Equal(t, []int64{1, 4}, ids(past))
	assert.Equal(t, []int64{2, 3}, ids(upcoming), "a show starting now is upcoming")
	assert.Len(t, append(past, upcoming...), len(shows))

	past, upcoming = PartitionShows(nil, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
}

func TestSearchResults(t *testing.T) {
	shows := []model.Show{
		{VenueID: 1, ArtistID: 7, StartTime: now.Add(time.Hour)},
		{VenueID: 1, ArtistID: 8, StartTime: now.Add(-time.Hour)},
	}

	v := SearchVenues([]model.Venue{{ID: 1, Name: "The Musical Hop"}, {ID: 2, Name: "Hopscotch"}}, shows, now)
	assert.Equal(t, 2, v.Count)
	assert.Equal(t, []Summary{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 1}, {ID: 2, Name: "Hopscotch"}}, v.Data)

	a := SearchArtists([]model.Artist{{ID: 8, Name: "Matt Quevedo"}, {ID: 7, Name: "Guns N Petals"}}, shows, now)
	assert.Equal(t, 2, a.Count)
	assert.Equal(t, 0, a.Data[0].NumUpcomingShows)
	assert.Equal(t, 1, a.Data[1].NumUpcomingShows)

	empty := SearchVenues(nil, shows, now)
	assert.Zero(t, empty.Count)
	assert.Empty(t, empty.Data)
}

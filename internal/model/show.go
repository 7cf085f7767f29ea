package model

import "time"

// Show books one artist at one venue at a start time.  Rows of `shows` are
// unique on (venue_id, artist_id, start_time), so the same pair may appear
// several times at different times.
type Show struct {
	ID        int64     `db:"id"`
	VenueID   int64     `db:"venue_id"`
	ArtistID  int64     `db:"artist_id"`
	StartTime time.Time `db:"start_time"`
}

// ShowListing is a show joined with the names and images of both parties.
// It feeds the flat show listing and the detail pages.
type ShowListing struct {
	ID              int64     `db:"id"`
	VenueID         int64     `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	ArtistID        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	StartTime       time.Time `db:"start_time"`
}

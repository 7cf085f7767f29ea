package form

import (
	"strconv"
	"strings"

	"github.com/iliyamo/fyyur/internal/model"
)

// ShowForm books an artist at a venue.  Ids arrive as text so a bad value
// is reported as a field error rather than a binding failure.
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required,showtime"`
}

// Normalize trims whitespace from every field.
func (f *ShowForm) Normalize() {
	f.ArtistID = strings.TrimSpace(f.ArtistID)
	f.VenueID = strings.TrimSpace(f.VenueID)
	f.StartTime = strings.TrimSpace(f.StartTime)
}

// Show converts a validated form into a model.
func (f ShowForm) Show() (*model.Show, error) {
	artistID, err := strconv.ParseInt(f.ArtistID, 10, 64)
	if err != nil {
		return nil, err
	}
	venueID, err := strconv.ParseInt(f.VenueID, 10, 64)
	if err != nil {
		return nil, err
	}
	start, err := ParseShowTime(f.StartTime)
	if err != nil {
		return nil, err
	}
	return &model.Show{ArtistID: artistID, VenueID: venueID, StartTime: start}, nil
}

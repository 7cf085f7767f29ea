// Package repository contains data access logic for Show domain operations.
// A show books one artist at one venue; the listing queries join both sides
// so pages never have to look them up one by one.
package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const showListingSelect = `SELECT s.id, s.venue_id, v.name AS venue_name, v.image_link AS venue_image_link,
	s.artist_id, a.name AS artist_name, a.image_link AS artist_image_link, s.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sqlx.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sqlx.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create inserts a new show.  The start time is stored in UTC.  Booking
// the same venue, artist and start time twice, or referencing a missing
// venue or artist, fails with an error matching ErrConflict.
func (r *ShowRepo) Create(ctx context.Context, s *model.Show) error {
	s.StartTime = s.StartTime.UTC()
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
		id, err := insertID(ctx, tx, q, s.VenueID, s.ArtistID, s.StartTime)
		if err != nil {
			return fmt.Errorf("insert show: %w", constraintError(err))
		}
		s.ID = id
		return nil
	})
}

// All returns the bare show rows.  The venue listing uses it to count
// upcoming shows per venue in a single pass.
func (r *ShowRepo) All(ctx context.Context) ([]model.Show, error) {
	var out []model.Show
	if err := r.db.SelectContext(ctx, &out, `SELECT id, venue_id, artist_id, start_time FROM shows ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	return out, nil
}

// List returns every show joined with its venue and artist, in insertion
// order.  No filtering by time is applied.
func (r *ShowRepo) List(ctx context.Context) ([]model.ShowListing, error) {
	var out []model.ShowListing
	if err := r.db.SelectContext(ctx, &out, showListingSelect+` ORDER BY s.id`); err != nil {
		return nil, fmt.Errorf("list show listings: %w", err)
	}
	return out, nil
}

// ListByVenue returns the shows booked at a venue ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]model.ShowListing, error) {
	var out []model.ShowListing
	q := r.db.Rebind(showListingSelect + ` WHERE s.venue_id = ? ORDER BY s.start_time, s.id`)
	if err := r.db.SelectContext(ctx, &out, q, venueID); err != nil {
		return nil, fmt.Errorf("list venue shows: %w", err)
	}
	return out, nil
}

// ListByArtist returns the shows an artist plays ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]model.ShowListing, error) {
	var out []model.ShowListing
	q := r.db.Rebind(showListingSelect + ` WHERE s.artist_id = ? ORDER BY s.start_time, s.id`)
	if err := r.db.SelectContext(ctx, &out, q, artistID); err != nil {
		return nil, fmt.Errorf("list artist shows: %w", err)
	}
	return out, nil
}

// Package repository contains data access logic separated from HTTP handlers.
// This file holds the venue queries: create, lookup, listing, name search,
// update and the cascading delete.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const venueColumns = `id, name, city, state, address, phone, image_link, website,
	facebook_link, genres, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sqlx.DB
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sqlx.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// Create inserts a new venue in its own transaction.  SeekingTalent is
// derived from the description before the insert and the generated ID is
// assigned back to v.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	v.DeriveSeeking()
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		const q = `INSERT INTO venues (name, city, state, address, phone, image_link, website,
			facebook_link, genres, seeking_talent, seeking_description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		id, err := insertID(ctx, tx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
			v.Website, v.FacebookLink, v.Genres, v.SeekingTalent, v.SeekingDescription)
		if err != nil {
			return fmt.Errorf("insert venue: %w", constraintError(err))
		}
		v.ID = id
		return nil
	})
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id int64) (*model.Venue, error) {
	var v model.Venue
	q := r.db.Rebind(`SELECT ` + venueColumns + ` FROM venues WHERE id = ?`)
	if err := r.db.GetContext(ctx, &v, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue: %w", err)
	}
	return &v, nil
}

// List returns every venue ordered by state, city and id, which keeps
// venues of the same area next to each other.
func (r *VenueRepo) List(ctx context.Context) ([]model.Venue, error) {
	var out []model.Venue
	q := `SELECT ` + venueColumns + ` FROM venues ORDER BY state, city, id`
	if err := r.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return out, nil
}

// Recent returns the most recently listed venues, newest first.
func (r *VenueRepo) Recent(ctx context.Context, limit int) ([]model.Venue, error) {
	var out []model.Venue
	q := r.db.Rebind(`SELECT ` + venueColumns + ` FROM venues ORDER BY id DESC LIMIT ?`)
	if err := r.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("recent venues: %w", err)
	}
	return out, nil
}

// Search returns venues whose name contains term, ignoring case.  An empty
// term matches every venue.
func (r *VenueRepo) Search(ctx context.Context, term string) ([]model.Venue, error) {
	var out []model.Venue
	q := r.db.Rebind(`SELECT ` + venueColumns + ` FROM venues
		WHERE LOWER(name) LIKE ? ESCAPE '!' ORDER BY id`)
	if err := r.db.SelectContext(ctx, &out, q, likePattern(term)); err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	return out, nil
}

// Update overwrites every editable column of the venue with ID v.ID.  The
// existence check and the UPDATE share one transaction; a missing row
// yields ErrVenueNotFound.  Concurrent edits are last-writer-wins.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	v.DeriveSeeking()
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "venues", v.ID)
		if err != nil {
			return fmt.Errorf("check venue: %w", err)
		}
		if !ok {
			return ErrVenueNotFound
		}
		q := tx.Rebind(`UPDATE venues SET name = ?, city = ?, state = ?, address = ?, phone = ?,
			image_link = ?, website = ?, facebook_link = ?, genres = ?, seeking_talent = ?,
			seeking_description = ? WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, q, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
			v.Website, v.FacebookLink, v.Genres, v.SeekingTalent, v.SeekingDescription, v.ID); err != nil {
			return fmt.Errorf("update venue: %w", constraintError(err))
		}
		return nil
	})
}

// Delete removes a venue together with its shows.  Both deletes run in one
// transaction so a failure leaves the venue and its bookings intact.
func (r *VenueRepo) Delete(ctx context.Context, id int64) error {
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "venues", id)
		if err != nil {
			return fmt.Errorf("check venue: %w", err)
		}
		if !ok {
			return ErrVenueNotFound
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM shows WHERE venue_id = ?`), id); err != nil {
			return fmt.Errorf("delete venue shows: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM venues WHERE id = ?`), id); err != nil {
			return fmt.Errorf("delete venue: %w", err)
		}
		return nil
	})
}

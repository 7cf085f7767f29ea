package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/iliyamo/fyyur/internal/model"
)

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link,
	website, seeking_venue, seeking_description`

// ArtistRepo manages persistence for artists.  Artists have no delete path.
type ArtistRepo struct {
	db *sqlx.DB
}

// NewArtistRepo constructs an ArtistRepo with the given DB handle.
func NewArtistRepo(db *sqlx.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist and assigns the generated ID back to a.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	a.DeriveSeeking()
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		const q = `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
			website, seeking_venue, seeking_description)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		id, err := insertID(ctx, tx, q, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
			a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription)
		if err != nil {
			return fmt.Errorf("insert artist: %w", constraintError(err))
		}
		a.ID = id
		return nil
	})
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id int64) (*model.Artist, error) {
	var a model.Artist
	q := r.db.Rebind(`SELECT ` + artistColumns + ` FROM artists WHERE id = ?`)
	if err := r.db.GetContext(ctx, &a, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &a, nil
}

// List returns all artists ordered by id.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	var out []model.Artist
	if err := r.db.SelectContext(ctx, &out, `SELECT `+artistColumns+` FROM artists ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return out, nil
}

// Recent returns the most recently listed artists, newest first.
func (r *ArtistRepo) Recent(ctx context.Context, limit int) ([]model.Artist, error) {
	var out []model.Artist
	q := r.db.Rebind(`SELECT ` + artistColumns + ` FROM artists ORDER BY id DESC LIMIT ?`)
	if err := r.db.SelectContext(ctx, &out, q, limit); err != nil {
		return nil, fmt.Errorf("recent artists: %w", err)
	}
	return out, nil
}

// Search returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) Search(ctx context.Context, term string) ([]model.Artist, error) {
	var out []model.Artist
	q := r.db.Rebind(`SELECT ` + artistColumns + ` FROM artists
		WHERE LOWER(name) LIKE ? ESCAPE '!' ORDER BY id`)
	if err := r.db.SelectContext(ctx, &out, q, likePattern(term)); err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	return out, nil
}

// Update overwrites the editable columns of the artist with ID a.ID, or
// returns ErrArtistNotFound.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	a.DeriveSeeking()
	return WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "artists", a.ID)
		if err != nil {
			return fmt.Errorf("check artist: %w", err)
		}
		if !ok {
			return ErrArtistNotFound
		}
		q := tx.Rebind(`UPDATE artists SET name = ?, city = ?, state = ?, phone = ?, genres = ?,
			image_link = ?, facebook_link = ?, website = ?, seeking_venue = ?,
			seeking_description = ? WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, q, a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink,
			a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID); err != nil {
			return fmt.Errorf("update artist: %w", constraintError(err))
		}
		return nil
	})
}

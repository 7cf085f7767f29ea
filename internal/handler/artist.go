package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/repository"
	"github.com/iliyamo/fyyur/internal/service"
)

// ListArtists renders every artist.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.Artists.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/artists.html", echo.Map{"Artists": artists})
}

// SearchArtists renders the artists whose name contains search_term.
func (h *Handler) SearchArtists(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	artists, err := h.Artists.Search(ctx, term)
	if err != nil {
		return err
	}
	shows, err := h.Shows.All(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/search_artists.html", echo.Map{
		"Results":    service.SearchArtists(artists, shows, h.now()),
		"SearchTerm": term,
	})
}

// ShowArtist renders one artist with their past and upcoming shows.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	artist, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrArtistNotFound)
	}
	shows, err := h.Shows.ListByArtist(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := service.PartitionShows(shows, h.now())
	return c.Render(http.StatusOK, "pages/show_artist.html", echo.Map{
		"Artist":             artist,
		"PastShows":          past,
		"UpcomingShows":      upcoming,
		"PastShowsCount":     len(past),
		"UpcomingShowsCount": len(upcoming),
	})
}

// NewArtistForm renders the empty artist form.
func (h *Handler) NewArtistForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_artist.html", echo.Map{
		"Form":   form.ArtistForm{},
		"Errors": form.Errors{},
	})
}

// CreateArtist validates and stores a new artist, then redirects home.
func (h *Handler) CreateArtist(c echo.Context) error {
	var f form.ArtistForm
	errs, err := bindForm(c, &f)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.Render(http.StatusUnprocessableEntity, "forms/new_artist.html", echo.Map{
			"Form":   f,
			"Errors": errs,
		})
	}

	ctx := c.Request().Context()
	a := f.Artist()
	if err := h.Artists.Create(ctx, a); err != nil {
		h.Log.WithError(err).WithField("artist", f.Name).Error("create artist")
		middleware.AddFlash(c, "An error occurred. Artist "+f.Name+" could not be listed. :c")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	h.afterWrite(ctx, queue.KindCreated, queue.EntityArtist, a.ID, a.Name)
	middleware.AddFlash(c, "Artist "+a.Name+" was successfully listed!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditArtistForm renders the edit form pre-filled with the stored artist.
func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	artist, err := h.Artists.GetByID(c.Request().Context(), id)
	if err != nil {
		return notFound(err, repository.ErrArtistNotFound)
	}
	return c.Render(http.StatusOK, "forms/edit_artist.html", echo.Map{
		"ID":     artist.ID,
		"Name":   artist.Name,
		"Form":   form.ArtistFormFrom(artist),
		"Errors": form.Errors{},
	})
}

// UpdateArtist validates and stores an edited artist.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	current, err := h.Artists.GetByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrArtistNotFound)
	}

	var f form.ArtistForm
	errs, err := bindForm(c, &f)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.Render(http.StatusUnprocessableEntity, "forms/edit_artist.html", echo.Map{
			"ID":     current.ID,
			"Name":   current.Name,
			"Form":   f,
			"Errors": errs,
		})
	}

	a := f.Artist()
	a.ID = id
	detail := "/artists/" + strconv.FormatInt(id, 10)
	if err := h.Artists.Update(ctx, a); err != nil {
		if nf := notFound(err, repository.ErrArtistNotFound); nf == echo.ErrNotFound {
			return nf
		}
		h.Log.WithError(err).WithField("artist_id", id).Error("update artist")
		middleware.AddFlash(c, "An error occurred. Artist "+f.Name+" could not be updated. :c")
		return c.Redirect(http.StatusSeeOther, detail)
	}
	h.afterWrite(ctx, queue.KindUpdated, queue.EntityArtist, a.ID, a.Name)
	middleware.AddFlash(c, "Artist "+a.Name+" was successfully updated!")
	return c.Redirect(http.StatusSeeOther, detail)
}

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

// ListVenues renders all venues grouped by city and state.
func (h *Handler) ListVenues(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.List(ctx)
	if err != nil {
		return err
	}
	shows, err := h.Shows.All(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/venues.html", echo.Map{
		"Areas": service.GroupByArea(venues, shows, h.now()),
	})
}

// SearchVenues renders the venues whose name contains search_term.
func (h *Handler) SearchVenues(c echo.Context) error {
	ctx := c.Request().Context()
	term := c.FormValue("search_term")
	venues, err := h.Venues.Search(ctx, term)
	if err != nil {
		return err
	}
	shows, err := h.Shows.All(ctx)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/search_venues.html", echo.Map{
		"Results":    service.SearchVenues(venues, shows, h.now()),
		"SearchTerm": term,
	})
}

// ShowVenue renders one venue with its past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrVenueNotFound)
	}
	shows, err := h.Shows.ListByVenue(ctx, id)
	if err != nil {
		return err
	}
	past, upcoming := service.PartitionShows(shows, h.now())
	return c.Render(http.StatusOK, "pages/show_venue.html", echo.Map{
		"Venue":              venue,
		"PastShows":          past,
		"UpcomingShows":      upcoming,
		"PastShowsCount":     len(past),
		"UpcomingShowsCount": len(upcoming),
	})
}

// NewVenueForm renders the empty venue form.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_venue.html", echo.Map{
		"Form":   form.VenueForm{},
		"Errors": form.Errors{},
	})
}

// CreateVenue validates and stores a new venue, then redirects home.
func (h *Handler) CreateVenue(c echo.Context) error {
	var f form.VenueForm
	errs, err := bindForm(c, &f)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.Render(http.StatusUnprocessableEntity, "forms/new_venue.html", echo.Map{
			"Form":   f,
			"Errors": errs,
		})
	}

	ctx := c.Request().Context()
	v := f.Venue()
	if err := h.Venues.Create(ctx, v); err != nil {
		h.Log.WithError(err).WithField("venue", f.Name).Error("create venue")
		middleware.AddFlash(c, "An error occurred. Venue "+f.Name+" could not be listed. :c")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	h.afterWrite(ctx, queue.KindCreated, queue.EntityVenue, v.ID, v.Name)
	middleware.AddFlash(c, "Venue "+v.Name+" was successfully listed!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditVenueForm renders the edit form pre-filled with the stored venue.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	venue, err := h.Venues.GetByID(c.Request().Context(), id)
	if err != nil {
		return notFound(err, repository.ErrVenueNotFound)
	}
	return c.Render(http.StatusOK, "forms/edit_venue.html", echo.Map{
		"ID":     venue.ID,
		"Name":   venue.Name,
		"Form":   form.VenueFormFrom(venue),
		"Errors": form.Errors{},
	})
}

// UpdateVenue validates and stores an edited venue, then redirects to its
// page.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	current, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrVenueNotFound)
	}

	var f form.VenueForm
	errs, err := bindForm(c, &f)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.Render(http.StatusUnprocessableEntity, "forms/edit_venue.html", echo.Map{
			"ID":     current.ID,
			"Name":   current.Name,
			"Form":   f,
			"Errors": errs,
		})
	}

	v := f.Venue()
	v.ID = id
	detail := "/venues/" + strconv.FormatInt(id, 10)
	if err := h.Venues.Update(ctx, v); err != nil {
		if nf := notFound(err, repository.ErrVenueNotFound); nf == echo.ErrNotFound {
			return nf
		}
		h.Log.WithError(err).WithField("venue_id", id).Error("update venue")
		middleware.AddFlash(c, "An error occurred. Venue "+f.Name+" could not be updated. :c")
		return c.Redirect(http.StatusSeeOther, detail)
	}
	h.afterWrite(ctx, queue.KindUpdated, queue.EntityVenue, v.ID, v.Name)
	middleware.AddFlash(c, "Venue "+v.Name+" was successfully updated!")
	return c.Redirect(http.StatusSeeOther, detail)
}

// DeleteVenue removes a venue and its shows.  It answers 204 with the
// success notice queued as a flash for the page the client navigates to
// next.  A failure is a bare 500; the page script reports it in place.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		return notFound(err, repository.ErrVenueNotFound)
	}
	if err := h.Venues.Delete(ctx, id); err != nil {
		if nf := notFound(err, repository.ErrVenueNotFound); nf == echo.ErrNotFound {
			return nf
		}
		h.Log.WithError(err).WithField("venue_id", id).Error("delete venue")
		return c.NoContent(http.StatusInternalServerError)
	}
	h.afterWrite(ctx, queue.KindDeleted, queue.EntityVenue, id, venue.Name)
	middleware.AddFlash(c, "Venue "+venue.Name+" was successfully removed!")
	return c.NoContent(http.StatusNoContent)
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/middleware"
	"github.com/iliyamo/fyyur/internal/queue"
)

// ListShows renders every show with its venue and artist.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.Shows.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/shows.html", echo.Map{"Shows": shows})
}

// NewShowForm renders the empty show form.
func (h *Handler) NewShowForm(c echo.Context) error {
	return c.Render(http.StatusOK, "forms/new_show.html", echo.Map{
		"Form":   form.ShowForm{},
		"Errors": form.Errors{},
	})
}

// CreateShow validates and stores a new show.  An unknown venue or artist
// or a duplicate booking is reported as a failed listing.
func (h *Handler) CreateShow(c echo.Context) error {
	var f form.ShowForm
	errs, err := bindForm(c, &f)
	if err != nil {
		return err
	}
	if errs != nil {
		return c.Render(http.StatusUnprocessableEntity, "forms/new_show.html", echo.Map{
			"Form":   f,
			"Errors": errs,
		})
	}

	ctx := c.Request().Context()
	s, err := f.Show()
	if err == nil {
		err = h.Shows.Create(ctx, s)
	}
	if err != nil {
		h.Log.WithError(err).WithFields(logrus.Fields{
			"venue_id":  f.VenueID,
			"artist_id": f.ArtistID,
		}).Error("create show")
		middleware.AddFlash(c, "An error occurred. Show could not be listed. :c")
		return c.Redirect(http.StatusSeeOther, "/")
	}
	h.afterWrite(ctx, queue.KindCreated, queue.EntityShow, s.ID,
		fmt.Sprintf("artist %d at venue %d", s.ArtistID, s.VenueID))
	middleware.AddFlash(c, "Show was successfully listed!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// Package handler exposes the HTTP handlers of the listing site.  Handlers
// bind and validate forms, call the stores and either render a page or
// redirect with a flash notice.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/model"
	"github.com/iliyamo/fyyur/internal/queue"
	"github.com/iliyamo/fyyur/internal/service"
)

// recentLimit is how many venues and artists the home page lists.
const recentLimit = 10

// VenueStore is the venue persistence used by the handlers.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id int64) (*model.Venue, error)
	List(ctx context.Context) ([]model.Venue, error)
	Recent(ctx context.Context, limit int) ([]model.Venue, error)
	Search(ctx context.Context, term string) ([]model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id int64) error
}

// ArtistStore is the artist persistence used by the handlers.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id int64) (*model.Artist, error)
	List(ctx context.Context) ([]model.Artist, error)
	Recent(ctx context.Context, limit int) ([]model.Artist, error)
	Search(ctx context.Context, term string) ([]model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
}

// ShowStore is the show persistence used by the handlers.
type ShowStore interface {
	Create(ctx context.Context, s *model.Show) error
	All(ctx context.Context) ([]model.Show, error)
	List(ctx context.Context) ([]model.ShowListing, error)
	ListByVenue(ctx context.Context, venueID int64) ([]model.ShowListing, error)
	ListByArtist(ctx context.Context, artistID int64) ([]model.ShowListing, error)
}

// CachePurger drops cached listing pages after a write.
type CachePurger interface {
	Purge(ctx context.Context) error
}

// Handler carries everything the HTTP handlers need.  Publisher, Cache and
// Now are optional.
type Handler struct {
	Venues    VenueStore
	Artists   ArtistStore
	Shows     ShowStore
	Publisher service.Publisher
	Cache     CachePurger
	Log       *logrus.Logger
	Now       func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// bindForm binds the request body into f and validates it.  A non-nil
// Errors means the form is invalid and must be re-rendered.
func bindForm(c echo.Context, f interface{ Normalize() }) (form.Errors, error) {
	if err := c.Bind(f); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form submission")
	}
	f.Normalize()
	if err := c.Validate(f); err != nil {
		if errs, ok := form.FieldErrors(err); ok {
			return errs, nil
		}
		return nil, err
	}
	return nil, nil
}

// parseID reads the numeric :id path parameter.  Anything else is a 404.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// notFound maps the store sentinels to a 404 and passes other errors on.
func notFound(err error, sentinels ...error) error {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return echo.ErrNotFound
		}
	}
	return err
}

// afterWrite purges the page cache and announces the committed change.
// Neither step can fail the request.
func (h *Handler) afterWrite(ctx context.Context, kind, entity string, id int64, name string) {
	if h.Cache != nil {
		if err := h.Cache.Purge(ctx); err != nil {
			h.Log.WithError(err).Warn("purge page cache")
		}
	}
	if h.Publisher == nil {
		return
	}
	ev := queue.NewListingEvent(kind, entity, id, name, h.now())
	if err := h.Publisher.Publish(ctx, ev); err != nil {
		h.Log.WithError(err).WithFields(logrus.Fields{"entity": entity, "id": id}).Warn("publish listing event")
	}
}

// Package router wires the HTTP routes to their handlers and attaches the
// route-level middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/view"
)

// Middlewares groups the route-level middleware.  A nil entry is skipped.
type Middlewares struct {
	Cache     echo.MiddlewareFunc // GET listing pages
	RateLimit echo.MiddlewareFunc // form submissions and searches
}

// RegisterRoutes registers every page, form, health and static route.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, mw Middlewares) {
	cached := use(mw.Cache)
	limited := use(mw.RateLimit)

	e.GET("/healthz", handler.Health)
	e.StaticFS("/static", view.Static())

	e.GET("/", h.Home)

	e.GET("/venues", h.ListVenues, cached...)
	e.POST("/venues/search", h.SearchVenues, limited...)
	e.GET("/venues/create", h.NewVenueForm)
	e.POST("/venues/create", h.CreateVenue, limited...)
	e.GET("/venues/:id", h.ShowVenue)
	e.DELETE("/venues/:id", h.DeleteVenue, limited...)
	e.GET("/venues/:id/edit", h.EditVenueForm)
	e.POST("/venues/:id/edit", h.UpdateVenue, limited...)

	e.GET("/artists", h.ListArtists, cached...)
	e.POST("/artists/search", h.SearchArtists, limited...)
	e.GET("/artists/create", h.NewArtistForm)
	e.POST("/artists/create", h.CreateArtist, limited...)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm)
	e.POST("/artists/:id/edit", h.UpdateArtist, limited...)

	e.GET("/shows", h.ListShows, cached...)
	e.GET("/shows/create", h.NewShowForm)
	e.POST("/shows/create", h.CreateShow, limited...)
}

func use(m echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if m == nil {
		return nil
	}
	return []echo.MiddlewareFunc{m}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Home renders the landing page with the latest venues and artists.
func (h *Handler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	venues, err := h.Venues.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}
	artists, err := h.Artists.Recent(ctx, recentLimit)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pages/home.html", echo.Map{
		"Venues":  venues,
		"Artists": artists,
	})
}

package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/form"
	"github.com/iliyamo/fyyur/internal/handler"
	"github.com/iliyamo/fyyur/internal/middleware"
)

// NewEcho builds the echo instance serving the site: renderer, validator,
// error pages, the global middleware chain and every route.
func NewEcho(h *handler.Handler, renderer echo.Renderer, flash *middleware.Flash, log *logrus.Logger, mw Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = form.NewValidator()
	e.HTTPErrorHandler = h.HTTPErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.AccessLog(log))
	e.Use(flash.Middleware())

	RegisterRoutes(e, h, mw)
	return e
}

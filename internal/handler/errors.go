package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler renders the 404 and 500 pages.  Other client errors,
// such as a rate limit rejection, are answered with their message as text.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	var rerr error
	switch {
	case code == http.StatusNotFound:
		rerr = c.Render(code, "errors/404.html", echo.Map{})
	case code >= http.StatusInternalServerError:
		h.Log.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Error("request failed")
		rerr = c.Render(code, "errors/500.html", echo.Map{})
	default:
		rerr = c.String(code, msg)
	}
	if rerr != nil {
		h.Log.WithError(rerr).Error("render error page")
		_ = c.String(code, http.StatusText(code))
	}
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/fyyur/internal/utils"
)

// FlashCookie is the cookie carrying one-shot notices across a redirect.
const FlashCookie = "fyyur_flash"

const flashStateKey = "flash.state"

// flashState tracks the messages of one request: the ones that arrived
// with it and the ones added for the next page.
type flashState struct {
	incoming []string
	hadToken bool
	consumed bool
	pending  []string
}

// Flash stores notices in an HS256-signed cookie.  Messages added during a
// request are shown by the next page that renders them, then dropped.
type Flash struct {
	secret string
	ttl    time.Duration
	log    *logrus.Logger
}

// NewFlash returns a Flash signing cookies with secret.
func NewFlash(secret string, log *logrus.Logger) *Flash {
	return &Flash{secret: secret, ttl: 5 * time.Minute, log: log}
}

// Middleware loads the incoming cookie and writes the outgoing one just
// before the response header is sent.
func (f *Flash) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if strings.HasPrefix(c.Request().URL.Path, "/static/") {
				return next(c)
			}
			st := &flashState{}
			if ck, err := c.Cookie(FlashCookie); err == nil && ck.Value != "" {
				st.hadToken = true
				msgs, err := utils.ParseFlash(f.secret, ck.Value)
				if err != nil {
					f.log.WithError(err).Debug("flash: dropping cookie")
				}
				st.incoming = msgs
			}
			c.Set(flashStateKey, st)
			c.Response().Before(func() { f.write(c, st) })
			return next(c)
		}
	}
}

func (f *Flash) write(c echo.Context, st *flashState) {
	var keep []string
	if !st.consumed {
		keep = append(keep, st.incoming...)
	}
	keep = append(keep, st.pending...)

	if len(keep) == 0 {
		if st.hadToken {
			c.SetCookie(&http.Cookie{Name: FlashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
		}
		return
	}
	token, err := utils.SignFlash(f.secret, keep, f.ttl)
	if err != nil {
		f.log.WithError(err).Error("flash: sign cookie")
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     FlashCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(f.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// AddFlash queues msg for the next rendered page.
func AddFlash(c echo.Context, msg string) {
	if st, ok := c.Get(flashStateKey).(*flashState); ok {
		st.pending = append(st.pending, msg)
	}
}

// Flashes returns the messages that arrived with the request.  They are
// dropped from the cookie only after shown is called.
func Flashes(c echo.Context) (msgs []string, shown func()) {
	st, ok := c.Get(flashStateKey).(*flashState)
	if !ok {
		return nil, func() {}
	}
	return st.incoming, func() { st.consumed = true }
}

// HasFlashCookie reports whether the request carries a flash cookie.
func HasFlashCookie(r *http.Request) bool {
	ck, err := r.Cookie(FlashCookie)
	return err == nil && ck.Value != ""
}

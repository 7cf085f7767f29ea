// Package view renders the HTML pages.  Templates and static assets are
// embedded in the binary; every page is parsed together with the shared
// layout and partials into its own template set.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fyyur/internal/form"
)

//go:embed templates static
var assets embed.FS

// FlashSource returns the flash messages pending for a request and a func
// marking them as shown.  The messages stay pending until shown is called.
type FlashSource func(c echo.Context) (msgs []string, shown func())

// Renderer implements echo.Renderer over html/template.
type Renderer struct {
	pages   map[string]*template.Template
	flashes FlashSource
}

// NewRenderer parses every page under templates/pages, templates/forms and
// templates/errors.  Pages are addressed by their path relative to
// templates, e.g. "pages/home.html".  locale drives the datetime func.
func NewRenderer(locale string, flashes FlashSource) (*Renderer, error) {
	funcs := template.FuncMap{
		"datetime": func(v any, format ...string) (string, error) {
			f := ""
			if len(format) > 0 {
				f = format[0]
			}
			return FormatDatetime(v, f, locale)
		},
		"states":   func() []form.Choice { return form.States },
		"genres":   func() []form.Choice { return form.Genres },
		"hasGenre": hasGenre,
		"join":     strings.Join,
	}

	shared := []string{"templates/layouts/*.html", "templates/partials/*.html"}
	r := &Renderer{pages: make(map[string]*template.Template), flashes: flashes}
	for _, dir := range []string{"pages", "forms", "errors"} {
		files, err := fs.Glob(assets, "templates/"+dir+"/*.html")
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			t := template.New(path.Base(file)).Funcs(funcs)
			t, err = t.ParseFS(assets, append(shared, file)...)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", file, err)
			}
			r.pages[strings.TrimPrefix(file, "templates/")] = t
		}
	}
	return r, nil
}

// Render implements echo.Renderer.  data is normally an echo.Map; the
// pending flash messages are added to it under "Flashes" and count as
// shown only once the page rendered.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	m, ok := data.(echo.Map)
	if !ok {
		m = echo.Map{"Data": data}
	}
	var shown func()
	if _, set := m["Flashes"]; !set && r.flashes != nil && c != nil {
		m["Flashes"], shown = r.flashes(c)
	}
	if err := t.ExecuteTemplate(w, "layout", m); err != nil {
		return err
	}
	if shown != nil {
		shown()
	}
	return nil
}

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

func hasGenre(list []string, g string) bool {
	for _, s := range list {
		if s == g {
			return true
		}
	}
	return false
}

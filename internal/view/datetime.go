package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Display formats understood by FormatDatetime.
const (
	FormatFull   = "full"
	FormatMedium = "medium"
)

const (
	layoutFull   = "Monday January, 2, 2006 at 3:04PM"
	layoutMedium = "Mon 01, 02, 2006 3:04PM"
)

var inputLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"}

// FormatDatetime renders value with the full or medium pattern in locale.
// value may be a time.Time or a string in RFC3339 or "2006-01-02 15:04:05"
// form.  An empty format means medium; any other name is used as a Go
// layout as is.
func FormatDatetime(value any, format, locale string) (string, error) {
	t, err := toTime(value)
	if err != nil {
		return "", err
	}
	layout := format
	switch format {
	case "", FormatMedium:
		layout = layoutMedium
	case FormatFull:
		layout = layoutFull
	}
	if locale == "" {
		locale = string(monday.LocaleEnUS)
	}
	return monday.Format(t, layout, monday.Locale(locale)), nil
}

func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("datetime: nil time")
		}
		return *v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range inputLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("datetime: cannot parse %q", v)
	}
	return time.Time{}, fmt.Errorf("datetime: unsupported value %T", value)
}

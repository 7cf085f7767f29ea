// Package form holds the typed input schemas of the HTML forms together
// with the validator that checks them at the request boundary.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ShowTimeLayouts are the accepted start_time layouts, tried in order.  The
// second one is what a datetime-local input submits.
var ShowTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04"}

var phonePattern = regexp.MustCompile(`^\d{3}-?\d{3}-?\d{4}$`)

// Errors maps a form field name to its validation message.
type Errors map[string]string

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

// NewValidator returns a validator with the phone, state, genre and
// showtime rules registered.  Field errors are keyed by the `form` tag.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return stateSet[fl.Field().String()]
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return genreSet[fl.Field().String()]
	})
	_ = v.RegisterValidation("showtime", func(fl validator.FieldLevel) bool {
		_, err := ParseShowTime(fl.Field().String())
		return err == nil
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i any) error {
	return cv.v.Struct(i)
}

// FieldErrors converts the error returned by Validate into per-field
// messages.  ok is false when err is not a validation failure.
func FieldErrors(err error) (errs Errors, ok bool) {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return nil, false
	}
	errs = make(Errors, len(ves))
	for _, fe := range ves {
		name := fe.Field()
		// dive errors are reported as genres[1]; the form shows one message
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if _, seen := errs[name]; !seen {
			errs[name] = message(fe)
		}
	}
	return errs, true
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return "Select at least one option."
	case "max":
		return "Must be at most " + fe.Param() + " characters."
	case "url":
		return "Invalid URL."
	case "phone":
		return "Invalid phone number, use xxx-xxx-xxxx."
	case "state":
		return "Not a valid choice."
	case "genre":
		return "'" + fe.Value().(string) + "' is not a valid choice."
	case "number":
		return "Must be a numeric id."
	case "showtime":
		return "Not a valid datetime value, use YYYY-MM-DD HH:MM:SS."
	}
	return "Invalid value."
}

// ParseShowTime parses a submitted start time in any of ShowTimeLayouts.
// Times without a zone are taken as UTC.
func ParseShowTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range ShowTimeLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

// trimAll trims surrounding whitespace from every string in ss and drops
// the ones left empty.
func trimAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is the ordered genre list of a venue or artist.  It is stored as a
// JSON array in a TEXT column so every supported dialect can hold it.
type Genres []string

// Value implements driver.Valuer.  A nil list is stored as "[]".
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*g = Genres{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("genres: unsupported source type %T", src)
	}
	if len(raw) == 0 {
		*g = Genres{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("genres: %w", err)
	}
	*g = out
	return nil
}

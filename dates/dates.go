// Package dates normalizes user-supplied date strings into the canonical
// DD-MM-YYYY form all stored transaction dates use.
package dates

import (
	"errors"
	"time"
)

// Canonical is the layout every stored date is rendered with.
const Canonical = "02-01-2006"

// ErrInvalidFormat is returned when an input matches none of the accepted
// layouts.
var ErrInvalidFormat = errors.New("invalid date format")

// Accepted layouts, tried in order; the first successful parse wins, so
// ambiguous numeric dates resolve to the earlier layout (MM/DD before DD/MM).
var layouts = []string{
	"2006-01-02",
	"01/02/2006",
	"2 January 2006",
	"2006/01/02",
	"January 2, 2006",
	"02 Jan, 2006",
	"2006, Jan 02",
	"02/01/06",
	"02/01/2006",
	"January 02, 2006",
	"02 January 2006",
	"02.01.2006",
	"02-01-2006",
}

// Normalize parses s against the accepted layouts and re-renders it as
// DD-MM-YYYY. It returns ErrInvalidFormat when no layout matches.
func Normalize(s string) (string, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(Canonical), nil
		}
	}
	return "", ErrInvalidFormat
}

// Split extracts the month and year from a canonical DD-MM-YYYY string.
func Split(canonical string) (month, year int, err error) {
	t, err := time.Parse(Canonical, canonical)
	if err != nil {
		return 0, 0, ErrInvalidFormat
	}
	return int(t.Month()), t.Year(), nil
}

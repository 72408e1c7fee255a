package publishing

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrConflictingFilters = errors.New("argument --date is mutually exclusive with options --before and --after")
	ErrMalformedDate      = errors.New("malformed date")
	ErrMissingSeries      = errors.New("series must be set")
)

var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.RFC3339Nano,
}

// RawDates holds date filters as they were typed
// by the user.
type RawDates struct {
	Date   string
	After  string
	Before string
}

// ParseCriteria validates the date filters and fills in
// the time fields of the returned Criteria.
func ParseCriteria(c Criteria, raw RawDates) (Criteria, error) {
	if raw.Date != "" && (raw.After != "" || raw.Before != "") {
		return Criteria{}, ErrConflictingFilters
	}
	if c.Series == "" {
		return Criteria{}, ErrMissingSeries
	}
	c.Date, c.After, c.Before = nil, nil, nil

	if raw.Date != "" {
		t, err := ParseDate(raw.Date)
		if err != nil {
			return Criteria{}, err
		}
		t = startOfDay(t)
		c.Date = &t
	}
	if raw.Before != "" {
		t, err := ParseDate(raw.Before)
		if err != nil {
			return Criteria{}, err
		}
		c.Before = &t
	}
	if raw.After != "" {
		t, err := ParseDate(raw.After)
		if err != nil {
			return Criteria{}, err
		}
		// the archive treats its lower bound as inclusive
		t = t.AddDate(0, 0, 1)
		c.After = &t
	}
	return c, nil
}

// startOfDay drops the time of day, keeping the zone.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a calendar date or timestamp. Values
// without a zone are treated as UTC.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

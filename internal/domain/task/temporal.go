package task

import (
	"strings"
	"time"
)

// DateLayout is the canonical rendering of a temporal target.
const DateLayout = "2006-01-02"

var temporalLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"2006-1-2",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
}

// NormalizeTemporalTarget converts raw scheduling input to a UTC YYYY-MM-DD date.
// Nil or blank input clears the target and returns nil.
func NormalizeTemporalTarget(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil, nil
	}
	for _, layout := range temporalLayouts {
		parsed, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		date := DateOf(parsed)
		return &date, nil
	}
	return nil, ErrInvalidTemporalTarget
}

// DateOf renders the UTC calendar date of t.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// NextDate returns the calendar day after date, or an error if date is malformed.
func NextDate(date string) (string, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidTemporalTarget
	}
	return parsed.AddDate(0, 0, 1).Format(DateLayout), nil
}

// IsDate reports whether s is a well-formed YYYY-MM-DD date.
func IsDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

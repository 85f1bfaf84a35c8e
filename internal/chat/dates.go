package chat

import (
	"strings"
	"time"
)

// dateLayouts are tried in order for literal due dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// ResolveDate turns a free-text date token into a calendar date at midnight.
// Relative words resolve against now; callers pass the same now for the whole
// request so the resolved date and its later bucketing can't straddle
// midnight. The second result is false when the token is not a date.
func ResolveDate(raw string, now time.Time) (time.Time, bool) {
	token := strings.ToLower(strings.TrimSpace(raw))
	switch token {
	case "today":
		return startOfDay(now), true
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), true
	}

	literal := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, literal, now.Location()); err == nil {
			return startOfDay(t), true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

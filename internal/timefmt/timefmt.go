// Package timefmt renders timestamps as locale-aware text.
package timefmt

import (
	"math"
	"strings"
	"time"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
)

// Placeholder is shown for a missing timestamp.
const Placeholder = "--"

var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Parse reads the timestamp forms the status backend emits: RFC 3339 with
// optional fraction, or naive ISO-8601 in the local zone.
func Parse(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, ts, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Relative describes ts relative to now, e.g. "3 min ago". An empty ts gives
// Placeholder and an unparseable one is returned unchanged.
func Relative(now time.Time, ts string, loc model.Locale) string {
	if strings.TrimSpace(ts) == "" {
		return Placeholder
	}
	t, ok := Parse(ts)
	if !ok {
		return ts
	}
	return RelativeTime(now, t, loc)
}

// RelativeTime is Relative for an already parsed time.
func RelativeTime(now, t time.Time, loc model.Locale) string {
	delta := now.Sub(t)
	if delta < 30*time.Second {
		return i18n.Resolve(loc, i18n.KeyTimeJustNow)
	}
	if delta < time.Hour {
		minutes := int(math.Round(delta.Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		return i18n.Format(loc, i18n.KeyTimeMinAgo, minutes)
	}
	if delta < 24*time.Hour {
		return i18n.Format(loc, i18n.KeyTimeHourAgo, int(delta/time.Hour))
	}
	if delta <= 7*24*time.Hour {
		return i18n.Format(loc, i18n.KeyTimeDayAgo, int(delta/(24*time.Hour)))
	}
	return i18n.Format(loc, i18n.KeyTimeOn, Absolute(t, loc))
}

// Absolute formats t as a full local date and time.
func Absolute(t time.Time, loc model.Locale) string {
	t = t.Local()
	if loc == model.LocaleZH {
		return t.Format("2006/1/2 15:04:05")
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}

// HourLabel formats ts as a two-digit hour and minute. Unparseable input is
// returned unchanged.
func HourLabel(ts string, loc model.Locale) string {
	t, ok := Parse(ts)
	if !ok {
		return ts
	}
	t = t.Local()
	if loc == model.LocaleZH {
		return t.Format("15:04")
	}
	return t.Format("03:04 PM")
}

// Clock is the header clock text.
func Clock(now time.Time, loc model.Locale) string {
	return Absolute(now, loc)
}

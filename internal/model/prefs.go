package model

import "strings"

// Locale is a display language.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// Theme is a visual palette.
type Theme string

const (
	ThemeDay   Theme = "day"
	ThemeNight Theme = "night"
)

// Preferences are the user's persisted display choices.
type Preferences struct {
	Locale Locale
	Theme  Theme
}

// DefaultPreferences is used on first run.
func DefaultPreferences() Preferences {
	return Preferences{Locale: LocaleZH, Theme: ThemeNight}
}

// ParseTheme accepts "day" or "night", case-insensitively.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDay:
		return ThemeDay, true
	case ThemeNight:
		return ThemeNight, true
	default:
		return "", false
	}
}

// Toggle flips between the two themes.
func (t Theme) Toggle() Theme {
	if t == ThemeDay {
		return ThemeNight
	}
	return ThemeDay
}

package i18n

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/user/homeportal/internal/model"
)

type table = [keyCount]string

var tables = map[model.Locale]*table{
	model.LocaleZH: &zhTable,
	model.LocaleEN: &enTable,
}

// Resolve returns the text for key in loc. Lookup order is the locale's
// table, then the English table, then the key's symbolic name.
func Resolve(loc model.Locale, key Key) string {
	return lookup(tables, loc, key)
}

func lookup(set map[model.Locale]*table, loc model.Locale, key Key) string {
	if key < 0 || key >= keyCount {
		return key.String()
	}
	if t, ok := set[loc]; ok && t[key] != "" {
		return t[key]
	}
	if t, ok := set[model.LocaleEN]; ok && t[key] != "" {
		return t[key]
	}
	return key.String()
}

// Format resolves key and substitutes its single placeholder: %d for an int
// argument, %s for a string argument. Other argument types leave the
// template untouched.
func Format(loc model.Locale, key Key, arg interface{}) string {
	return substitute(Resolve(loc, key), arg)
}

func substitute(tmpl string, arg interface{}) string {
	switch v := arg.(type) {
	case int:
		return strings.Replace(tmpl, "%d", strconv.Itoa(v), 1)
	case string:
		return strings.Replace(tmpl, "%s", v, 1)
	default:
		return tmpl
	}
}

// StatusKey returns the badge key for a service state.
func StatusKey(s model.ServiceState) Key {
	switch s {
	case model.StateUp:
		return KeyStatusUp
	case model.StateDown:
		return KeyStatusDown
	default:
		return KeyStatusUnknown
	}
}

// Supported lists the locales with a translation table.
func Supported() []model.Locale {
	return []model.Locale{model.LocaleZH, model.LocaleEN}
}

// Valid reports whether loc has a translation table.
func Valid(loc model.Locale) bool {
	_, ok := tables[loc]
	return ok
}

// Toggle flips between the two supported locales.
func Toggle(loc model.Locale) model.Locale {
	if loc == model.LocaleZH {
		return model.LocaleEN
	}
	return model.LocaleZH
}

var matcher = language.NewMatcher([]language.Tag{language.Chinese, language.English})

// ParseLocale maps a language tag or POSIX locale string (zh-CN,
// en_US.UTF-8) onto a supported locale.
func ParseLocale(s string) (model.Locale, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	if idx == 0 {
		return model.LocaleZH, true
	}
	return model.LocaleEN, true
}

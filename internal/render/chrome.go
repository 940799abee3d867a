package render

import (
	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
)

// ChromeView holds the static labels of the screen.
type ChromeView struct {
	Locale model.Locale
	Theme  model.Theme

	Tagline       string
	SectionSignal string
	SectionLAN    string
	SectionAlerts string
	SectionTable  string

	InternetTitle   string
	InternetState   string
	InternetTargets string
	InternetUpdated string
	UpstreamProbe   string
	WeatherTitle    string
	WeatherHint     string

	TableHeaders []string
	ToggleTable  string
	ThemeToggle  string
	LangToggle   string
	Loading      string

	HelpLanguage string
	HelpTheme    string
	HelpTable    string
	HelpRefresh  string
	HelpScroll   string
	HelpQuit     string
}

// Chrome renders the static labels for loc and theme. The toggle labels
// name the current mode, as the buttons of the web portal do.
func Chrome(loc model.Locale, theme model.Theme) ChromeView {
	r := func(k i18n.Key) string { return i18n.Resolve(loc, k) }

	themeKey := i18n.KeyThemeLabelNight
	if theme == model.ThemeDay {
		themeKey = i18n.KeyThemeLabelDay
	}
	langKey := i18n.KeyLangLabelEN
	if loc == model.LocaleZH {
		langKey = i18n.KeyLangLabelZH
	}

	return ChromeView{
		Locale: loc,
		Theme:  theme,

		Tagline:       r(i18n.KeyTagline),
		SectionSignal: r(i18n.KeySectionSignal),
		SectionLAN:    r(i18n.KeySectionLAN),
		SectionAlerts: r(i18n.KeySectionAlerts),
		SectionTable:  r(i18n.KeySectionTable),

		InternetTitle:   r(i18n.KeyCardInternetTitle),
		InternetState:   r(i18n.KeyInternetStateLabel),
		InternetTargets: r(i18n.KeyInternetTargetsLabel),
		InternetUpdated: r(i18n.KeyInternetUpdatedLabel),
		UpstreamProbe:   r(i18n.KeyUpstreamProbe),
		WeatherTitle:    r(i18n.KeyCardWeatherTitle),
		WeatherHint:     r(i18n.KeyWeatherSourceHint),

		TableHeaders: []string{
			r(i18n.KeyTableName),
			r(i18n.KeyTableCategory),
			r(i18n.KeyTableType),
			r(i18n.KeyTableStatus),
			r(i18n.KeyTableMetric),
			r(i18n.KeyTableLastChange),
		},
		ToggleTable: r(i18n.KeyToggleTable),
		ThemeToggle: r(themeKey),
		LangToggle:  r(langKey),
		Loading:     r(i18n.KeyLoading),

		HelpLanguage: r(i18n.KeyHelpLanguage),
		HelpTheme:    r(i18n.KeyHelpTheme),
		HelpTable:    r(i18n.KeyHelpTable),
		HelpRefresh:  r(i18n.KeyHelpRefresh),
		HelpScroll:   r(i18n.KeyHelpScroll),
		HelpQuit:     r(i18n.KeyHelpQuit),
	}
}

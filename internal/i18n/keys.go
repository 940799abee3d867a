// Package i18n resolves message keys to display text for the active locale.
package i18n

import "fmt"

// Key identifies a translatable message.
type Key int

const (
	KeyTagline Key = iota
	KeySectionSignal
	KeySectionLAN
	KeySectionAlerts
	KeySectionTable
	KeyCardInternetTitle
	KeyCardWeatherTitle
	KeyWeatherSourceHint
	KeyWeatherConditionUnknown
	KeyWeatherDayLabel
	KeyWeatherNightLabel
	KeyWeatherPrecipLabel
	KeyHourlyUnavailable
	KeyUpstreamProbe
	KeyUpstreamNone
	KeyKVType
	KeyKVEndpoint
	KeyKVHost
	KeyKVImportance
	KeyImportanceCore
	KeyImportanceNormal
	KeyLinkOpen
	KeyLinkNoUI
	KeyInternetStateLabel
	KeyInternetTargetsLabel
	KeyInternetUpdatedLabel
	KeyInternetUnknown
	KeyInternetOnline
	KeyInternetOffline
	KeyAvgRTT
	KeyTargetsReachable
	KeyAlertsEmpty
	KeyLoading
	KeyTableName
	KeyTableCategory
	KeyTableType
	KeyTableStatus
	KeyTableMetric
	KeyTableLastChange
	KeyToggleTable
	KeyStatusUp
	KeyStatusDown
	KeyStatusUnknown
	KeyWeatherUnavailable
	KeyWeatherFetchFailed
	KeyWeatherDisabled
	KeyWeatherWindLabel
	KeyWeatherCodeLabel
	KeyAuroraUnavailable
	KeyAuroraDisabled
	KeyAuroraError
	KeyAuroraActive
	KeyAuroraInactive
	KeyAuroraProbabilityLabel
	KeyThemeLabelDay
	KeyThemeLabelNight
	KeyLangLabelZH
	KeyLangLabelEN
	KeyAlertsLabelType
	KeyAlertsLabelCategory
	KeyAlertsLabelMetric
	KeyAlertsLabelLastChange
	KeyTimeJustNow
	KeyTimeMinAgo
	KeyTimeHourAgo
	KeyTimeDayAgo
	KeyTimeOn
	KeyHelpLanguage
	KeyHelpTheme
	KeyHelpTable
	KeyHelpRefresh
	KeyHelpScroll
	KeyHelpQuit

	keyCount
)

// keyNames doubles as the last-resort display text for a key.
var keyNames = [keyCount]string{
	KeyTagline:                 "tagline",
	KeySectionSignal:           "section_signal",
	KeySectionLAN:              "section_lan",
	KeySectionAlerts:           "section_alerts",
	KeySectionTable:            "section_table",
	KeyCardInternetTitle:       "card_internet_title",
	KeyCardWeatherTitle:        "card_weather_title",
	KeyWeatherSourceHint:       "weather_source_hint",
	KeyWeatherConditionUnknown: "weather_condition_unknown",
	KeyWeatherDayLabel:         "weather_day_label",
	KeyWeatherNightLabel:       "weather_night_label",
	KeyWeatherPrecipLabel:      "weather_precip_label",
	KeyHourlyUnavailable:       "hourly_unavailable",
	KeyUpstreamProbe:           "upstream_probe",
	KeyUpstreamNone:            "upstream_none",
	KeyKVType:                  "kv_type",
	KeyKVEndpoint:              "kv_endpoint",
	KeyKVHost:                  "kv_host",
	KeyKVImportance:            "kv_importance",
	KeyImportanceCore:          "importance_core",
	KeyImportanceNormal:        "importance_normal",
	KeyLinkOpen:                "link_open",
	KeyLinkNoUI:                "link_no_ui",
	KeyInternetStateLabel:      "internet_state_label",
	KeyInternetTargetsLabel:    "internet_targets_label",
	KeyInternetUpdatedLabel:    "internet_updated_label",
	KeyInternetUnknown:         "internet_unknown",
	KeyInternetOnline:          "internet_online",
	KeyInternetOffline:         "internet_offline",
	KeyAvgRTT:                  "avg_rtt",
	KeyTargetsReachable:        "targets_reachable",
	KeyAlertsEmpty:             "alerts_empty",
	KeyLoading:                 "loading",
	KeyTableName:               "table_name",
	KeyTableCategory:           "table_category",
	KeyTableType:               "table_type",
	KeyTableStatus:             "table_status",
	KeyTableMetric:             "table_metric",
	KeyTableLastChange:         "table_last_change",
	KeyToggleTable:             "toggle_table",
	KeyStatusUp:                "status_up",
	KeyStatusDown:              "status_down",
	KeyStatusUnknown:           "status_unknown",
	KeyWeatherUnavailable:      "weather_unavailable",
	KeyWeatherFetchFailed:      "weather_fetch_failed",
	KeyWeatherDisabled:         "weather_disabled",
	KeyWeatherWindLabel:        "weather_wind_label",
	KeyWeatherCodeLabel:        "weather_code_label",
	KeyAuroraUnavailable:       "aurora_unavailable",
	KeyAuroraDisabled:          "aurora_disabled",
	KeyAuroraError:             "aurora_error",
	KeyAuroraActive:            "aurora_active",
	KeyAuroraInactive:          "aurora_inactive",
	KeyAuroraProbabilityLabel:  "aurora_probability_label",
	KeyThemeLabelDay:           "theme_label_day",
	KeyThemeLabelNight:         "theme_label_night",
	KeyLangLabelZH:             "lang_label_zh",
	KeyLangLabelEN:             "lang_label_en",
	KeyAlertsLabelType:         "alerts_label_type",
	KeyAlertsLabelCategory:     "alerts_label_category",
	KeyAlertsLabelMetric:       "alerts_label_metric",
	KeyAlertsLabelLastChange:   "alerts_label_last_change",
	KeyTimeJustNow:             "time_just_now",
	KeyTimeMinAgo:              "time_min_ago",
	KeyTimeHourAgo:             "time_hour_ago",
	KeyTimeDayAgo:              "time_day_ago",
	KeyTimeOn:                  "time_on",
	KeyHelpLanguage:            "help_language",
	KeyHelpTheme:               "help_theme",
	KeyHelpTable:               "help_table",
	KeyHelpRefresh:             "help_refresh",
	KeyHelpScroll:              "help_scroll",
	KeyHelpQuit:                "help_quit",
}

// String returns the symbolic name of the key.
func (k Key) String() string {
	if k < 0 || k >= keyCount || keyNames[k] == "" {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// Keys returns every defined key in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

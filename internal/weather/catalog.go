// Package weather maps WMO weather codes to labels and icons.
package weather

import "github.com/user/homeportal/internal/model"

// Descriptor describes one weather condition.
type Descriptor struct {
	Label     map[model.Locale]string
	IconDay   string
	IconNight string
}

// LabelFor returns the label for loc, falling back to English.
func (d Descriptor) LabelFor(loc model.Locale) string {
	if l, ok := d.Label[loc]; ok && l != "" {
		return l
	}
	return d.Label[model.LocaleEN]
}

// Icon picks the day or night icon. The flag comes from the weather source,
// never from the wall clock.
func (d Descriptor) Icon(isDay bool) string {
	if isDay {
		return d.IconDay
	}
	return d.IconNight
}

func desc(zh, en, day, night string) Descriptor {
	return Descriptor{
		Label:     map[model.Locale]string{model.LocaleZH: zh, model.LocaleEN: en},
		IconDay:   day,
		IconNight: night,
	}
}

// Unknown is returned for absent or unrecognized codes.
var Unknown = desc("未知天气", "Unknown", "❔", "❔")

var catalog = map[int]Descriptor{
	0:  desc("晴朗", "Clear", "☀️", "🌙"),
	1:  desc("大部晴朗", "Mainly clear", "🌤️", "🌙"),
	2:  desc("局部多云", "Partly cloudy", "⛅", "☁️"),
	3:  desc("阴天", "Overcast", "☁️", "☁️"),
	45: desc("雾", "Fog", "🌫️", "🌫️"),
	48: desc("雾霾", "Depositing rime fog", "🌫️", "🌫️"),
	51: desc("轻毛毛雨", "Light drizzle", "🌦️", "🌧️"),
	53: desc("中等毛毛雨", "Moderate drizzle", "🌦️", "🌧️"),
	55: desc("浓毛毛雨", "Dense drizzle", "🌧️", "🌧️"),
	56: desc("轻冻毛毛雨", "Freezing drizzle", "🌧️", "🌧️"),
	57: desc("浓冻毛毛雨", "Freezing drizzle", "🌧️", "🌧️"),
	61: desc("小雨", "Light rain", "🌦️", "🌧️"),
	63: desc("中雨", "Moderate rain", "🌧️", "🌧️"),
	65: desc("大雨", "Heavy rain", "🌧️", "🌧️"),
	66: desc("轻冻雨", "Light freezing rain", "🌧️", "🌧️"),
	67: desc("重冻雨", "Heavy freezing rain", "🌧️", "🌧️"),
	71: desc("小雪", "Light snow", "🌨️", "🌨️"),
	73: desc("中雪", "Snow", "🌨️", "🌨️"),
	75: desc("大雪", "Heavy snow", "❄️", "❄️"),
	77: desc("雪粒", "Snow grains", "❄️", "❄️"),
	80: desc("阵雨", "Rain showers", "🌦️", "🌧️"),
	81: desc("强阵雨", "Heavy showers", "🌧️", "🌧️"),
	82: desc("暴雨", "Violent rain", "🌧️", "🌧️"),
	85: desc("阵雪", "Snow showers", "🌨️", "🌨️"),
	86: desc("强阵雪", "Heavy snow showers", "❄️", "❄️"),
	95: desc("雷暴", "Thunderstorm", "⛈️", "⛈️"),
	96: desc("雷暴伴冰雹", "Thunderstorm w/ hail", "⛈️", "⛈️"),
	99: desc("强雷暴伴冰雹", "Severe thunderstorm", "⛈️", "⛈️"),
}

// Describe returns the descriptor for code, or Unknown.
func Describe(code *int) Descriptor {
	if code == nil {
		return Unknown
	}
	if d, ok := catalog[*code]; ok {
		return d
	}
	return Unknown
}

// Known reports whether code has a catalog entry.
func Known(code int) bool {
	_, ok := catalog[code]
	return ok
}

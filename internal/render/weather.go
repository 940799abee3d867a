package render

import (
	"strconv"
	"strings"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/timefmt"
	"github.com/user/homeportal/internal/weather"
)

// HourlyChip is one hour of the forecast strip.
type HourlyChip struct {
	Label       string
	Temperature string
	Icon        string
	Precip      string
	Fallback    bool
}

// HourlyView is the forecast strip, or Empty when there is no forecast.
type HourlyView struct {
	Chips []HourlyChip
	Empty string
}

// AuroraView is the aurora line of the weather card.
type AuroraView struct {
	Kind        model.AuroraKind
	Text        string
	Active      bool
	Probability *float64
}

// WeatherPanel is the weather card.
type WeatherPanel struct {
	Available   bool
	Temperature string
	Detail      string
	Condition   string
	Icon        string
	Phase       string
	Hourly      HourlyView
	Aurora      AuroraView
}

func celsius(v *float64) string {
	if v == nil {
		return Placeholder + "°C"
	}
	return number(*v) + "°C"
}

// Weather renders the weather card. A nil view means no poll has completed.
func Weather(loc model.Locale, view model.WeatherView) WeatherPanel {
	switch v := view.(type) {
	case model.WeatherAvailable:
		d := weather.Describe(v.WeatherCode)
		phase := i18n.KeyWeatherNightLabel
		if v.IsDay {
			phase = i18n.KeyWeatherDayLabel
		}

		var detail []string
		if v.Windspeed != nil {
			detail = append(detail, i18n.Resolve(loc, i18n.KeyWeatherWindLabel)+" "+number(*v.Windspeed)+" km/h")
		}
		if v.WeatherCode != nil {
			detail = append(detail, i18n.Resolve(loc, i18n.KeyWeatherCodeLabel)+" "+strconv.Itoa(*v.WeatherCode))
		}

		return WeatherPanel{
			Available:   true,
			Temperature: celsius(v.Temperature),
			Detail:      strings.Join(detail, " | "),
			Condition:   d.LabelFor(loc),
			Icon:        d.Icon(v.IsDay),
			Phase:       i18n.Resolve(loc, phase),
			Hourly:      Hourly(loc, v.Hourly),
			Aurora:      Aurora(loc, v.Aurora),
		}
	case model.WeatherUnavailable:
		p := unavailablePanel(loc, unavailableKey(v.Reason), v.Aurora)
		p.Temperature = "N/A"
		return p
	default:
		p := unavailablePanel(loc, i18n.KeyWeatherUnavailable, model.AuroraStatus{})
		p.Temperature = Placeholder + "°C"
		return p
	}
}

func unavailablePanel(loc model.Locale, detail i18n.Key, aurora model.AuroraStatus) WeatherPanel {
	return WeatherPanel{
		Detail:    i18n.Resolve(loc, detail),
		Condition: i18n.Resolve(loc, i18n.KeyWeatherConditionUnknown),
		Icon:      weather.Unknown.IconDay,
		Hourly:    Hourly(loc, nil),
		Aurora:    Aurora(loc, aurora),
	}
}

func unavailableKey(r model.UnavailableReason) i18n.Key {
	switch r {
	case model.ReasonDisabled:
		return i18n.KeyWeatherDisabled
	case model.ReasonFetchFailed:
		return i18n.KeyWeatherFetchFailed
	default:
		return i18n.KeyWeatherUnavailable
	}
}

// Hourly renders the forecast strip. Icons always use the day variant.
func Hourly(loc model.Locale, entries []model.HourlyEntry) HourlyView {
	if len(entries) == 0 {
		return HourlyView{Empty: i18n.Resolve(loc, i18n.KeyHourlyUnavailable)}
	}

	chips := make([]HourlyChip, 0, len(entries))
	for _, e := range entries {
		label := timefmt.HourLabel(e.Time, loc)
		if e.Fallback {
			label += " *"
		}
		precip := Placeholder
		if e.PrecipitationProbability != nil {
			precip = number(*e.PrecipitationProbability) + "%"
		}
		chips = append(chips, HourlyChip{
			Label:       label,
			Temperature: celsius(e.Temperature),
			Icon:        weather.Describe(e.WeatherCode).IconDay,
			Precip:      i18n.Resolve(loc, i18n.KeyWeatherPrecipLabel) + ": " + precip,
			Fallback:    e.Fallback,
		})
	}
	return HourlyView{Chips: chips}
}

// Aurora renders the aurora line.
func Aurora(loc model.Locale, s model.AuroraStatus) AuroraView {
	v := AuroraView{Kind: s.Kind, Probability: s.Probability}
	switch s.Kind {
	case model.AuroraDisabled:
		v.Text = i18n.Resolve(loc, i18n.KeyAuroraDisabled)
	case model.AuroraError:
		v.Text = i18n.Resolve(loc, i18n.KeyAuroraError)
	case model.AuroraActive, model.AuroraInactive:
		label := i18n.KeyAuroraInactive
		if s.Kind == model.AuroraActive {
			label = i18n.KeyAuroraActive
			v.Active = true
		}
		prob := Placeholder
		if s.Probability != nil {
			prob = number(*s.Probability) + "%"
		}
		v.Text = i18n.Resolve(loc, label) + " (" + i18n.Resolve(loc, i18n.KeyAuroraProbabilityLabel) + ": " + prob + ")"
		if s.Degraded {
			v.Text += " · " + i18n.Resolve(loc, i18n.KeyAuroraError)
		}
	default:
		v.Text = i18n.Resolve(loc, i18n.KeyAuroraUnavailable)
	}
	return v
}

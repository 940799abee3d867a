package model

// UnavailableReason says why weather data is missing.
type UnavailableReason string

const (
	ReasonDisabled    UnavailableReason = "disabled"
	ReasonFetchFailed UnavailableReason = "fetch_failed"
	ReasonGeneric     UnavailableReason = "generic"
)

// WeatherView is the normalized result of a weather poll. It is implemented
// only by WeatherUnavailable and WeatherAvailable.
type WeatherView interface {
	weatherView()
	AuroraStatus() AuroraStatus
}

// WeatherUnavailable is a poll that produced no weather data.
type WeatherUnavailable struct {
	Reason UnavailableReason
	Aurora AuroraStatus
}

// WeatherAvailable is a poll with current conditions.
type WeatherAvailable struct {
	Temperature *float64
	Windspeed   *float64
	WeatherCode *int
	IsDay       bool
	Hourly      []HourlyEntry
	Aurora      AuroraStatus
}

func (WeatherUnavailable) weatherView() {}
func (WeatherAvailable) weatherView()   {}

// AuroraStatus implements WeatherView.
func (w WeatherUnavailable) AuroraStatus() AuroraStatus { return w.Aurora }

// AuroraStatus implements WeatherView.
func (w WeatherAvailable) AuroraStatus() AuroraStatus { return w.Aurora }

// AuroraKind discriminates AuroraStatus.
type AuroraKind int

const (
	AuroraUnknown AuroraKind = iota
	AuroraDisabled
	AuroraError
	AuroraActive
	AuroraInactive
)

func (k AuroraKind) String() string {
	switch k {
	case AuroraDisabled:
		return "disabled"
	case AuroraError:
		return "error"
	case AuroraActive:
		return "active"
	case AuroraInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// AuroraStatus is the aurora likelihood. Probability is only meaningful for
// AuroraActive and AuroraInactive; Degraded marks partial data quality.
type AuroraStatus struct {
	Kind        AuroraKind
	Probability *float64
	Degraded    bool
}

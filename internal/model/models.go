// Package model defines core data structures for homeportal.
package model

import (
	"encoding/json"
	"strings"
)

// ServiceType selects which metric a service reports.
type ServiceType string

const (
	TypeHTTP  ServiceType = "http"
	TypePing  ServiceType = "ping"
	TypeTCP   ServiceType = "tcp"
	TypeOther ServiceType = "other"
)

// ParseServiceType maps any unrecognized type to TypeOther.
func ParseServiceType(s string) ServiceType {
	switch ServiceType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeHTTP:
		return TypeHTTP
	case TypePing:
		return TypePing
	case TypeTCP:
		return TypeTCP
	default:
		return TypeOther
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *ServiceType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseServiceType(s)
	return nil
}

// ServiceState is the health of a single service.
type ServiceState string

const (
	StateUp      ServiceState = "up"
	StateDown    ServiceState = "down"
	StateUnknown ServiceState = "unknown"
)

// ParseServiceState maps empty or unrecognized values to StateUnknown.
func ParseServiceState(s string) ServiceState {
	switch ServiceState(strings.ToLower(strings.TrimSpace(s))) {
	case StateUp:
		return StateUp
	case StateDown:
		return StateDown
	default:
		return StateUnknown
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *ServiceState) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseServiceState(raw)
	return nil
}

// ServiceStatus is one probed service as reported by /api/status.
type ServiceStatus struct {
	Name           string       `json:"name"`
	Category       string       `json:"category"`
	Type           ServiceType  `json:"type"`
	Status         ServiceState `json:"status"`
	HTTPStatus     *int         `json:"http_status,omitempty"`
	ResponseTimeMs *float64     `json:"response_time_ms,omitempty"`
	AvgRTTMs       *float64     `json:"avg_rtt_ms,omitempty"`
	LatencyMs      *float64     `json:"latency_ms,omitempty"`
	LastChange     string       `json:"last_change,omitempty"`

	URL       string `json:"url,omitempty"`
	Host      string `json:"host,omitempty"`
	Port      int    `json:"port,omitempty"`
	Important bool   `json:"important,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// State returns the service status, treating the zero value as unknown.
func (s ServiceStatus) State() ServiceState {
	if s.Status == "" {
		return StateUnknown
	}
	return s.Status
}

// InternetSummary describes upstream reachability. A nil Online means the
// state is unknown, which is distinct from Online=false.
type InternetSummary struct {
	Online           *bool    `json:"online,omitempty"`
	AvgRTTMs         *float64 `json:"avg_rtt_ms,omitempty"`
	ReachableTargets *int     `json:"reachable_targets,omitempty"`
	TotalTargets     *int     `json:"total_targets,omitempty"`
	ExpectedTargets  *int     `json:"expected_targets,omitempty"`
}

// Total returns total_targets, falling back to expected_targets.
func (i InternetSummary) Total() *int {
	if i.TotalTargets != nil {
		return i.TotalTargets
	}
	return i.ExpectedTargets
}

// StatusSnapshot is one /api/status response.
type StatusSnapshot struct {
	Available        *bool            `json:"available,omitempty"`
	CheckedAt        string           `json:"checked_at,omitempty"`
	Internet         *InternetSummary `json:"internet,omitempty"`
	InternetServices []ServiceStatus  `json:"internet_services,omitempty"`
	Services         []ServiceStatus  `json:"services,omitempty"`
	Error            string           `json:"error,omitempty"`
}

// IsAvailable reports whether the snapshot carries data. The backend omits
// the field on success, so only an explicit false counts.
func (s *StatusSnapshot) IsAvailable() bool {
	if s == nil {
		return false
	}
	return s.Available == nil || *s.Available
}

// HourlyEntry is one slot of the hourly forecast strip.
type HourlyEntry struct {
	Time                     string   `json:"time"`
	Temperature              *float64 `json:"temperature,omitempty"`
	PrecipitationProbability *float64 `json:"precipitation_probability,omitempty"`
	WeatherCode              *int     `json:"weathercode,omitempty"`
	Fallback                 bool     `json:"fallback,omitempty"`
}

// RawAurora is the aurora block of /api/weather.
type RawAurora struct {
	Available   bool     `json:"available"`
	Reason      string   `json:"reason,omitempty"`
	Probability *float64 `json:"probability,omitempty"`
	Active      bool     `json:"active,omitempty"`
	Degraded    bool     `json:"degraded,omitempty"`
	Time        string   `json:"time,omitempty"`
}

// RawWeather is the /api/weather wire payload.
type RawWeather struct {
	Available   bool          `json:"available"`
	Reason      string        `json:"reason,omitempty"`
	Provider    string        `json:"provider,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	Windspeed   *float64      `json:"windspeed,omitempty"`
	WeatherCode *int          `json:"weathercode,omitempty"`
	IsDay       *bool         `json:"is_day,omitempty"`
	Hourly      []HourlyEntry `json:"hourly,omitempty"`
	Aurora      *RawAurora    `json:"aurora,omitempty"`
}

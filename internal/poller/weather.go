package poller

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/util"
)

// WeatherResult is one completed /api/weather poll. View is never nil.
type WeatherResult struct {
	Seq      uint64
	View     model.WeatherView
	Err      error
	Duration time.Duration
}

// WeatherPoller fetches current conditions, the hourly forecast and the
// aurora outlook.
type WeatherPoller struct {
	fetcher *Fetcher
	path    string
	metrics *Metrics
	seq     *atomic.Uint64
}

// NewWeatherPoller creates a weather poller. See NewStatusPoller for seq.
func NewWeatherPoller(f *Fetcher, path string, m *Metrics, seq *atomic.Uint64) *WeatherPoller {
	if seq == nil {
		seq = new(atomic.Uint64)
	}
	return &WeatherPoller{fetcher: f, path: path, metrics: m, seq: seq}
}

// Poll performs one fetch and classifies the payload.
func (p *WeatherPoller) Poll(ctx context.Context) WeatherResult {
	res := WeatherResult{Seq: p.seq.Add(1)}
	start := time.Now()

	var raw model.RawWeather
	reqID, err := p.fetcher.GetJSON(ctx, p.path, &raw)
	res.Duration = time.Since(start)

	available := false
	if err != nil {
		res.Err = err
		res.View = model.WeatherUnavailable{Reason: model.ReasonFetchFailed}
		util.Warn("Weather poll %d failed (%s, request %s): %v", res.Seq, FailureKind(err), reqID, err)
	} else {
		res.View = Classify(&raw)
		available = raw.Available
		if !available {
			util.Info("Weather poll %d: unavailable: %s", res.Seq, raw.Reason)
		}
	}

	p.metrics.ObservePoll(EndpointWeather, outcomeFor(err, available), res.Duration)
	return res
}

// Classify normalizes a weather payload. A nil payload is a fetch failure.
func Classify(raw *model.RawWeather) model.WeatherView {
	if raw == nil {
		return model.WeatherUnavailable{Reason: model.ReasonFetchFailed}
	}

	aurora := ClassifyAurora(raw.Aurora)

	if !raw.Available {
		reason := model.ReasonGeneric
		if strings.Contains(strings.ToLower(raw.Reason), "disabled") {
			reason = model.ReasonDisabled
		}
		return model.WeatherUnavailable{Reason: reason, Aurora: aurora}
	}

	return model.WeatherAvailable{
		Temperature: raw.Temperature,
		Windspeed:   raw.Windspeed,
		WeatherCode: raw.WeatherCode,
		IsDay:       raw.IsDay != nil && *raw.IsDay,
		Hourly:      raw.Hourly,
		Aurora:      aurora,
	}
}

// ClassifyAurora maps the aurora block to a status.
func ClassifyAurora(raw *model.RawAurora) model.AuroraStatus {
	if raw == nil {
		return model.AuroraStatus{Kind: model.AuroraUnknown}
	}

	if !raw.Available {
		reason := strings.ToLower(raw.Reason)
		switch {
		case strings.Contains(reason, "disabled"):
			return model.AuroraStatus{Kind: model.AuroraDisabled}
		case strings.Contains(reason, "unavailable"):
			return model.AuroraStatus{Kind: model.AuroraError}
		default:
			return model.AuroraStatus{Kind: model.AuroraUnknown}
		}
	}

	kind := model.AuroraInactive
	if raw.Active {
		kind = model.AuroraActive
	}
	return model.AuroraStatus{
		Kind:        kind,
		Probability: raw.Probability,
		Degraded:    raw.Degraded,
	}
}

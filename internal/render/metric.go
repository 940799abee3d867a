// Package render turns snapshots and weather views into display-ready view
// state. Everything here is a pure function of its inputs except Registry,
// which holds the per-service widgets between polls.
package render

import (
	"strconv"

	"github.com/user/homeportal/internal/model"
)

// Placeholder is shown wherever a value is absent.
const Placeholder = "--"

// number prints f in its shortest form: 12, 1.5, 0.25.
func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func millis(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return number(*v) + " ms"
}

// Metric returns the headline figure for a service. Which field is used
// depends only on the service type.
func Metric(svc model.ServiceStatus) string {
	switch svc.Type {
	case model.TypeHTTP:
		if svc.HTTPStatus == nil && svc.ResponseTimeMs == nil {
			return Placeholder
		}
		code := Placeholder
		if svc.HTTPStatus != nil {
			code = strconv.Itoa(*svc.HTTPStatus)
		}
		return code + " / " + millis(svc.ResponseTimeMs)
	case model.TypePing:
		return millis(svc.AvgRTTMs)
	case model.TypeTCP:
		return millis(svc.LatencyMs)
	default:
		return Placeholder
	}
}

package render

import (
	"strconv"
	"time"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/timefmt"
	"github.com/user/homeportal/internal/util"
)

// InternetState is the upstream reachability shown in the internet card.
type InternetState int

const (
	InternetUnknown InternetState = iota
	InternetOnline
	InternetOffline
)

// InternetView is the internet health card.
type InternetView struct {
	State     InternetState
	Status    string
	Pill      string
	RTT       string
	Targets   string
	Updated   string
	CheckedAt string
}

// UpstreamEntry is one upstream service line.
type UpstreamEntry struct {
	Name  string
	State model.ServiceState
	Text  string
}

// UpstreamView lists upstream services, or Empty when there are none.
type UpstreamView struct {
	Entries []UpstreamEntry
	Empty   string
}

// Alert is one service that is not up.
type Alert struct {
	Name  string
	State model.ServiceState
	Lines []string
}

// AlertsView lists alerts, or Empty when every service is up.
type AlertsView struct {
	Alerts []Alert
	Empty  string
}

// Patch carries the fresh values for one service widget.
type Patch struct {
	Name       string
	Type       model.ServiceType
	State      model.ServiceState
	Metric     string
	LastChange string
}

// StatusView is everything one status snapshot contributes to the screen.
// A degraded view carries no patches.
type StatusView struct {
	Degraded bool
	Internet InternetView
	Upstream UpstreamView
	Alerts   AlertsView
	Patches  []Patch
}

// Status renders a snapshot. A nil or unavailable snapshot yields the
// degraded view regardless of what else it holds.
func Status(loc model.Locale, now time.Time, snap *model.StatusSnapshot) StatusView {
	if !snap.IsAvailable() {
		return Degraded(loc, now)
	}

	services := Dedupe(snap.Services)
	patches := make([]Patch, 0, len(services))
	for _, svc := range services {
		patches = append(patches, Patch{
			Name:       svc.Name,
			Type:       svc.Type,
			State:      svc.State(),
			Metric:     Metric(svc),
			LastChange: lastChange(svc.LastChange),
		})
	}

	return StatusView{
		Internet: Internet(loc, now, snap.Internet, snap.CheckedAt),
		Upstream: Upstream(loc, snap.InternetServices),
		Alerts:   Alerts(loc, services),
		Patches:  patches,
	}
}

// Degraded is the status view shown when no usable snapshot exists.
func Degraded(loc model.Locale, now time.Time) StatusView {
	return StatusView{
		Degraded: true,
		Internet: Internet(loc, now, nil, ""),
		Upstream: Upstream(loc, nil),
		Alerts:   Alerts(loc, nil),
	}
}

// Dedupe keeps the first service for each name.
func Dedupe(services []model.ServiceStatus) []model.ServiceStatus {
	seen := make(map[string]bool, len(services))
	out := make([]model.ServiceStatus, 0, len(services))
	for _, svc := range services {
		if seen[svc.Name] {
			util.Debug("Dropping duplicate service %q", svc.Name)
			continue
		}
		seen[svc.Name] = true
		out = append(out, svc)
	}
	return out
}

func lastChange(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

// Internet renders the internet health card. A nil summary or one without
// an online flag is unknown.
func Internet(loc model.Locale, now time.Time, sum *model.InternetSummary, checkedAt string) InternetView {
	v := InternetView{
		Updated:   timefmt.Relative(now, checkedAt, loc),
		CheckedAt: checkedAt,
	}

	if sum == nil || sum.Online == nil {
		v.State = InternetUnknown
		v.Status = i18n.Resolve(loc, i18n.KeyInternetUnknown)
		v.Pill = v.Status
		v.RTT = i18n.Resolve(loc, i18n.KeyAvgRTT) + ": N/A"
		v.Targets = Placeholder
		return v
	}

	if *sum.Online {
		v.State = InternetOnline
		v.Status = i18n.Resolve(loc, i18n.KeyInternetOnline)
	} else {
		v.State = InternetOffline
		v.Status = i18n.Resolve(loc, i18n.KeyInternetOffline)
	}
	v.Pill = v.Status

	rtt := "N/A"
	if sum.AvgRTTMs != nil {
		rtt = number(*sum.AvgRTTMs) + " ms"
	}
	v.RTT = i18n.Resolve(loc, i18n.KeyAvgRTT) + ": " + rtt

	reachable := 0
	if sum.ReachableTargets != nil {
		reachable = *sum.ReachableTargets
	}
	if total := sum.Total(); total != nil && *total > 0 {
		v.Targets = strconv.Itoa(reachable) + " / " + strconv.Itoa(*total)
	} else {
		v.Targets = strconv.Itoa(reachable) + " " + i18n.Resolve(loc, i18n.KeyTargetsReachable)
	}

	return v
}

// Upstream renders the upstream service list.
func Upstream(loc model.Locale, services []model.ServiceStatus) UpstreamView {
	if len(services) == 0 {
		return UpstreamView{Empty: i18n.Resolve(loc, i18n.KeyUpstreamNone)}
	}
	entries := make([]UpstreamEntry, 0, len(services))
	for _, svc := range services {
		state := svc.State()
		entries = append(entries, UpstreamEntry{
			Name:  svc.Name,
			State: state,
			Text:  svc.Name + ": " + i18n.Resolve(loc, i18n.StatusKey(state)),
		})
	}
	return UpstreamView{Entries: entries}
}

// Alerts renders every service whose state is not up.
func Alerts(loc model.Locale, services []model.ServiceStatus) AlertsView {
	var alerts []Alert
	for _, svc := range services {
		state := svc.State()
		if state == model.StateUp {
			continue
		}
		alerts = append(alerts, Alert{
			Name:  svc.Name,
			State: state,
			Lines: []string{
				i18n.Resolve(loc, i18n.KeyAlertsLabelType) + ": " + string(svc.Type) + " | " +
					i18n.Resolve(loc, i18n.KeyAlertsLabelCategory) + ": " + svc.Category,
				i18n.Resolve(loc, i18n.KeyAlertsLabelMetric) + ": " + Metric(svc),
				i18n.Resolve(loc, i18n.KeyAlertsLabelLastChange) + ": " + lastChange(svc.LastChange),
			},
		})
	}
	if len(alerts) == 0 {
		return AlertsView{Empty: i18n.Resolve(loc, i18n.KeyAlertsEmpty)}
	}
	return AlertsView{Alerts: alerts}
}

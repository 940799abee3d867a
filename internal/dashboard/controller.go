// Package dashboard owns the live dashboard state: preferences, the last
// payload of each endpoint and the widgets built from them. A Controller is
// driven by a single event loop and is not safe for concurrent use.
package dashboard

import (
	"fmt"
	"time"

	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/prefs"
	"github.com/user/homeportal/internal/render"
	"github.com/user/homeportal/internal/timefmt"
	"github.com/user/homeportal/internal/util"
)

// StatusPhase tracks the outcome of the latest applied status poll.
type StatusPhase int

const (
	// StatusPending means no status poll has completed yet.
	StatusPending StatusPhase = iota
	StatusApplied
	StatusFailed
)

func (p StatusPhase) String() string {
	switch p {
	case StatusApplied:
		return "applied"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Controller reconciles poll results into view state.
type Controller struct {
	title    string
	prefs    *prefs.Preferences
	current  model.Preferences
	registry *render.Registry
	metrics  *poller.Metrics

	phase       StatusPhase
	lastStatus  *model.StatusSnapshot
	lastWeather model.WeatherView
	statusSeq   uint64
	weatherSeq  uint64
}

// New creates a controller. The stored preferences are loaded once here.
func New(title string, p *prefs.Preferences, reg *render.Registry, m *poller.Metrics) *Controller {
	if reg == nil {
		reg = render.NewRegistry(nil)
	}
	return &Controller{
		title:    title,
		prefs:    p,
		current:  p.Load(),
		registry: reg,
		metrics:  m,
	}
}

// Preferences returns the active locale and theme.
func (c *Controller) Preferences() model.Preferences {
	return c.current
}

// Phase returns the outcome of the latest applied status poll.
func (c *Controller) Phase() StatusPhase {
	return c.phase
}

// ApplyStatus applies a status poll result. Results older than the last
// applied one are discarded and false is returned.
func (c *Controller) ApplyStatus(now time.Time, res poller.StatusResult) bool {
	if res.Seq <= c.statusSeq {
		util.Debug("Discarding stale status result %d (have %d)", res.Seq, c.statusSeq)
		c.metrics.ObserveStale(poller.EndpointStatus)
		return false
	}
	c.statusSeq = res.Seq

	if res.Err != nil {
		// Widgets keep their last values; only the summary areas degrade.
		c.phase = StatusFailed
		c.lastStatus = nil
		return true
	}

	c.phase = StatusApplied
	c.lastStatus = res.Snapshot
	n := c.registry.Apply(render.Status(c.current.Locale, now, res.Snapshot))
	util.Debug("Status %d applied to %d widgets", res.Seq, n)
	return true
}

// ApplyWeather applies a weather poll result under the same ordering rule
// as ApplyStatus. Failure views are kept like any other.
func (c *Controller) ApplyWeather(res poller.WeatherResult) bool {
	if res.Seq <= c.weatherSeq {
		util.Debug("Discarding stale weather result %d (have %d)", res.Seq, c.weatherSeq)
		c.metrics.ObserveStale(poller.EndpointWeather)
		return false
	}
	c.weatherSeq = res.Seq
	c.lastWeather = res.View
	return true
}

// ToggleLocale switches between zh and en.
func (c *Controller) ToggleLocale() error {
	return c.SetLocale(i18n.Toggle(c.current.Locale))
}

// ToggleTheme switches between day and night.
func (c *Controller) ToggleTheme() error {
	return c.SetTheme(c.current.Theme.Toggle())
}

// SetLocale changes and persists the locale. The change takes effect even
// when persisting fails; the error is returned for the caller to report.
func (c *Controller) SetLocale(loc model.Locale) error {
	if !i18n.Valid(loc) {
		return fmt.Errorf("unsupported locale %q", loc)
	}
	c.current.Locale = loc
	return c.prefs.SetLocale(loc)
}

// SetTheme changes and persists the theme, like SetLocale.
func (c *Controller) SetTheme(theme model.Theme) error {
	if theme != model.ThemeDay && theme != model.ThemeNight {
		return fmt.Errorf("unsupported theme %q", theme)
	}
	c.current.Theme = theme
	return c.prefs.SetTheme(theme)
}

// Screen is everything the widget surface draws.
type Screen struct {
	Title   string
	Clock   string
	Chrome  render.ChromeView
	Phase   StatusPhase
	Loading bool
	Status  render.StatusView
	Weather render.WeatherPanel
	Cards   []render.Card
	Rows    []render.Row
}

// Screen renders the current state from the buffered payloads. It never
// fetches and has no side effects, so calling it after a locale or theme
// change re-renders everything in place.
func (c *Controller) Screen(now time.Time) Screen {
	loc := c.current.Locale

	s := Screen{
		Title:   c.title,
		Clock:   timefmt.Clock(now, loc),
		Chrome:  render.Chrome(loc, c.current.Theme),
		Phase:   c.phase,
		Weather: render.Weather(loc, c.lastWeather),
		Cards:   c.registry.Cards(loc),
		Rows:    c.registry.Rows(loc),
	}

	switch c.phase {
	case StatusPending:
		s.Loading = true
		s.Status = render.Degraded(loc, now)
	case StatusFailed:
		s.Status = render.Degraded(loc, now)
	default:
		s.Status = render.Status(loc, now, c.lastStatus)
	}

	return s
}

// LastStatus returns the buffered snapshot, nil after a failed poll.
func (c *Controller) LastStatus() *model.StatusSnapshot {
	return c.lastStatus
}

// LastWeather returns the buffered weather view, nil before the first poll.
func (c *Controller) LastWeather() model.WeatherView {
	return c.lastWeather
}

package dashboard

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/prefs"
	"github.com/user/homeportal/internal/render"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

func boolp(v bool) *bool        { return &v }
func floatp(v float64) *float64 { return &v }

func newController(t *testing.T, store prefs.Store) *Controller {
	t.Helper()
	reg := render.NewRegistry([]render.WidgetSpec{
		{Name: "NAS", Type: model.TypeHTTP},
		{Name: "Router", Type: model.TypePing},
	})
	return New("Home", prefs.New(store), reg, poller.NewMetrics(prometheus.NewRegistry()))
}

func okStatus(seq uint64) poller.StatusResult {
	return poller.StatusResult{
		Seq: seq,
		Snapshot: &model.StatusSnapshot{
			CheckedAt: now.Add(-10 * time.Minute).Format(time.RFC3339),
			Internet:  &model.InternetSummary{Online: boolp(true)},
			InternetServices: []model.ServiceStatus{
				{Name: "DNS", Status: model.StateUp},
			},
			Services: []model.ServiceStatus{
				{Name: "NAS", Type: model.TypeHTTP, Status: model.StateUp, HTTPStatus: new(int)},
				{Name: "Router", Type: model.TypePing, Status: model.StateDown, AvgRTTMs: floatp(3)},
			},
		},
	}
}

type brokenStore struct{}

func (brokenStore) Get(string) (string, error) { return "", errors.New("disk gone") }
func (brokenStore) Set(string, string) error   { return errors.New("disk gone") }

func TestInitialScreen(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())
	s := c.Screen(now)

	if !s.Loading || s.Phase != StatusPending {
		t.Errorf("expected loading screen, got phase %s", s.Phase)
	}
	if c.Preferences() != model.DefaultPreferences() {
		t.Errorf("preferences = %+v", c.Preferences())
	}
	if s.Weather.Temperature != "--°C" {
		t.Errorf("weather before first poll = %q", s.Weather.Temperature)
	}
	if len(s.Cards) != 2 || s.Cards[0].Metric != render.Placeholder {
		t.Errorf("cards = %+v", s.Cards)
	}
}

func TestApplyStatus(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())

	if !c.ApplyStatus(now, okStatus(1)) {
		t.Fatal("first result should apply")
	}
	s := c.Screen(now)
	if s.Loading || s.Status.Degraded {
		t.Error("screen should show applied status")
	}
	if s.Rows[1].State != model.StateDown || s.Rows[1].Metric != "3 ms" {
		t.Errorf("router row = %+v", s.Rows[1])
	}
	if len(s.Status.Alerts.Alerts) != 1 || s.Status.Alerts.Alerts[0].Name != "Router" {
		t.Errorf("alerts = %+v", s.Status.Alerts)
	}
	if !reflect.DeepEqual(s, c.Screen(now)) {
		t.Error("Screen should be idempotent")
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())

	newer := okStatus(2)
	newer.Snapshot.Services[1].Status = model.StateUp
	c.ApplyStatus(now, newer)

	if c.ApplyStatus(now, okStatus(1)) {
		t.Error("older result should be discarded")
	}
	if got := c.Screen(now).Rows[1].State; got != model.StateUp {
		t.Errorf("stale result overwrote newer state: %s", got)
	}

	if c.ApplyWeather(poller.WeatherResult{Seq: 3, View: model.WeatherUnavailable{Reason: model.ReasonDisabled}}) != true {
		t.Error("weather result should apply")
	}
	if c.ApplyWeather(poller.WeatherResult{Seq: 3, View: model.WeatherAvailable{}}) {
		t.Error("repeated weather seq should be discarded")
	}
	if _, ok := c.LastWeather().(model.WeatherUnavailable); !ok {
		t.Error("discarded weather result replaced the buffered view")
	}
}

func TestStatusErrorKeepsCards(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())
	c.ApplyStatus(now, okStatus(1))

	c.ApplyStatus(now, poller.StatusResult{Seq: 2, Err: poller.ErrTransport})
	s := c.Screen(now)

	if s.Phase != StatusFailed || !s.Status.Degraded || s.Loading {
		t.Errorf("expected degraded screen, phase %s", s.Phase)
	}
	if c.LastStatus() != nil {
		t.Error("last payload should be cleared after an error")
	}
	if s.Status.Internet.State != render.InternetUnknown {
		t.Errorf("internet = %+v", s.Status.Internet)
	}
	if s.Status.Upstream.Empty == "" || len(s.Status.Alerts.Alerts) != 0 {
		t.Error("upstream and alerts should be empty")
	}
	if s.Rows[1].State != model.StateDown || s.Rows[1].Metric != "3 ms" {
		t.Errorf("cards should keep their last values, got %+v", s.Rows[1])
	}
}

func TestUnavailableSnapshotKept(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())
	c.ApplyStatus(now, okStatus(1))

	c.ApplyStatus(now, poller.StatusResult{Seq: 2, Snapshot: &model.StatusSnapshot{
		Available: boolp(false),
		Services:  []model.ServiceStatus{{Name: "NAS", Status: model.StateDown}},
	}})
	s := c.Screen(now)

	if c.LastStatus() == nil {
		t.Error("unavailable snapshot should be buffered")
	}
	if !s.Status.Degraded || len(s.Status.Alerts.Alerts) != 0 {
		t.Errorf("unavailable snapshot should render degraded with no alerts: %+v", s.Status.Alerts)
	}
	if s.Rows[0].State != model.StateUp {
		t.Errorf("services of an unavailable snapshot must not patch widgets, got %s", s.Rows[0].State)
	}
}

func TestToggleLocaleRerenders(t *testing.T) {
	store := prefs.NewMemoryStore()
	c := newController(t, store)
	c.ApplyStatus(now, okStatus(1))
	c.ApplyWeather(poller.WeatherResult{Seq: 1, View: model.WeatherUnavailable{Reason: model.ReasonDisabled}})

	before := c.Screen(now)
	if err := c.ToggleLocale(); err != nil {
		t.Fatalf("ToggleLocale: %v", err)
	}
	after := c.Screen(now)

	if c.Preferences().Locale != model.LocaleEN {
		t.Fatalf("locale = %s", c.Preferences().Locale)
	}
	if v, _ := store.Get(prefs.KeyLocale); v != "en" {
		t.Errorf("stored locale = %q", v)
	}
	if after.Weather.Detail != "Weather disabled in config" {
		t.Errorf("weather detail = %q", after.Weather.Detail)
	}
	if before.Weather.Detail == after.Weather.Detail {
		t.Error("weather text should change language")
	}
	if after.Status.Internet.Updated != "10 min ago" {
		t.Errorf("updated = %q", after.Status.Internet.Updated)
	}
	if !reflect.DeepEqual(before.Status.Patches, after.Status.Patches) {
		t.Error("locale toggle changed data")
	}
	if after.Rows[1].Badge != "Down" || before.Rows[1].Badge == after.Rows[1].Badge {
		t.Errorf("badges = %q -> %q", before.Rows[1].Badge, after.Rows[1].Badge)
	}
}

func TestToggleWithoutPayload(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())
	c.ToggleLocale()
	if !c.Screen(now).Loading {
		t.Error("never-fetched status should still show loading after a toggle")
	}

	c.ApplyStatus(now, poller.StatusResult{Seq: 1, Err: poller.ErrParse})
	c.ToggleLocale()
	s := c.Screen(now)
	if s.Loading || !s.Status.Degraded {
		t.Error("failed status should show degraded after a toggle")
	}
}

func TestToggleTheme(t *testing.T) {
	c := newController(t, prefs.NewMemoryStore())
	if err := c.ToggleTheme(); err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	s := c.Screen(now)
	if s.Chrome.Theme != model.ThemeDay || s.Chrome.ThemeToggle != "日间模式" {
		t.Errorf("chrome = %s %q", s.Chrome.Theme, s.Chrome.ThemeToggle)
	}
}

func TestPersistFailureStillApplies(t *testing.T) {
	c := newController(t, brokenStore{})
	if c.Preferences() != model.DefaultPreferences() {
		t.Errorf("unreadable store should give defaults, got %+v", c.Preferences())
	}
	if err := c.SetLocale(model.LocaleEN); err == nil {
		t.Error("expected persist error")
	}
	if c.Preferences().Locale != model.LocaleEN {
		t.Error("locale should change even when persisting fails")
	}
	if err := c.SetLocale("fr"); err == nil {
		t.Error("expected error for unsupported locale")
	}
	if err := c.SetTheme("dusk"); err == nil {
		t.Error("expected error for unsupported theme")
	}
}

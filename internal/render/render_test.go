package render

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/user/homeportal/internal/model"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func boolp(v bool) *bool        { return &v }

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

func snapshot() *model.StatusSnapshot {
	return &model.StatusSnapshot{
		CheckedAt: now.Add(-90 * time.Second).Format("2006-01-02T15:04:05"),
		Internet: &model.InternetSummary{
			Online:           boolp(true),
			AvgRTTMs:         floatp(18.25),
			ReachableTargets: intp(2),
			TotalTargets:     intp(3),
		},
		InternetServices: []model.ServiceStatus{
			{Name: "GitHub", Type: model.TypeHTTP, Status: model.StateUp},
		},
		Services: []model.ServiceStatus{
			{Name: "NAS", Category: "Storage", Type: model.TypeHTTP, Status: model.StateUp, HTTPStatus: intp(200), ResponseTimeMs: floatp(42)},
			{Name: "Router", Category: "Network", Type: model.TypePing, Status: model.StateDown},
			{Name: "Printer", Category: "Office", Type: model.TypeTCP},
			{Name: "NAS", Category: "Dup", Type: model.TypeHTTP, Status: model.StateDown},
		},
	}
}

func TestMetric(t *testing.T) {
	tests := []struct {
		name     string
		svc      model.ServiceStatus
		expected string
	}{
		{"http full", model.ServiceStatus{Type: model.TypeHTTP, HTTPStatus: intp(200), ResponseTimeMs: floatp(12)}, "200 / 12 ms"},
		{"http code only", model.ServiceStatus{Type: model.TypeHTTP, HTTPStatus: intp(503)}, "503 / --"},
		{"http rt only", model.ServiceStatus{Type: model.TypeHTTP, ResponseTimeMs: floatp(1.5)}, "-- / 1.5 ms"},
		{"http none", model.ServiceStatus{Type: model.TypeHTTP}, "--"},
		{"ping", model.ServiceStatus{Type: model.TypePing, AvgRTTMs: floatp(0.25)}, "0.25 ms"},
		{"ping zero", model.ServiceStatus{Type: model.TypePing, AvgRTTMs: floatp(0)}, "0 ms"},
		{"ping none", model.ServiceStatus{Type: model.TypePing, LatencyMs: floatp(5)}, "--"},
		{"tcp", model.ServiceStatus{Type: model.TypeTCP, LatencyMs: floatp(3)}, "3 ms"},
		{"tcp none", model.ServiceStatus{Type: model.TypeTCP, AvgRTTMs: floatp(3)}, "--"},
		{"other", model.ServiceStatus{Type: model.TypeOther, LatencyMs: floatp(3), HTTPStatus: intp(200)}, "--"},
	}

	for _, test := range tests {
		if got := Metric(test.svc); got != test.expected {
			t.Errorf("%s: Metric = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestStatusView(t *testing.T) {
	v := Status(model.LocaleEN, now, snapshot())

	if v.Degraded {
		t.Fatal("view should not be degraded")
	}
	if v.Internet.State != InternetOnline || v.Internet.Status != "Internet online" {
		t.Errorf("internet = %+v", v.Internet)
	}
	if v.Internet.RTT != "Avg RTT: 18.25 ms" {
		t.Errorf("rtt = %q", v.Internet.RTT)
	}
	if v.Internet.Targets != "2 / 3" {
		t.Errorf("targets = %q", v.Internet.Targets)
	}
	if v.Internet.Updated != "2 min ago" {
		t.Errorf("updated = %q", v.Internet.Updated)
	}
	if len(v.Upstream.Entries) != 1 || v.Upstream.Entries[0].Text != "GitHub: Up" {
		t.Errorf("upstream = %+v", v.Upstream)
	}
	if len(v.Patches) != 3 {
		t.Fatalf("expected 3 deduplicated patches, got %d", len(v.Patches))
	}
	if v.Patches[0].State != model.StateUp || v.Patches[0].Metric != "200 / 42 ms" {
		t.Errorf("first NAS entry should win, got %+v", v.Patches[0])
	}
}

func TestStatusIdempotent(t *testing.T) {
	a := Status(model.LocaleZH, now, snapshot())
	b := Status(model.LocaleZH, now, snapshot())
	if !reflect.DeepEqual(a, b) {
		t.Error("rendering the same snapshot twice should be identical")
	}
}

func TestAlertsExcludeUp(t *testing.T) {
	v := Status(model.LocaleEN, now, snapshot())

	names := make([]string, 0, len(v.Alerts.Alerts))
	for _, a := range v.Alerts.Alerts {
		if a.State == model.StateUp {
			t.Errorf("alert for up service %s", a.Name)
		}
		names = append(names, a.Name)
	}
	if !reflect.DeepEqual(names, []string{"Router", "Printer"}) {
		t.Errorf("alerts = %v", names)
	}
	if v.Alerts.Empty != "" {
		t.Errorf("empty message should be unset, got %q", v.Alerts.Empty)
	}
	if got := v.Alerts.Alerts[0].Lines[0]; got != "Type: ping | Category: Network" {
		t.Errorf("alert line = %q", got)
	}

	allUp := Alerts(model.LocaleEN, []model.ServiceStatus{{Name: "a", Status: model.StateUp}})
	if len(allUp.Alerts) != 0 || allUp.Empty != "No alerts · All green ✅" {
		t.Errorf("all up = %+v", allUp)
	}
}

func TestUnavailableSnapshot(t *testing.T) {
	snap := snapshot()
	snap.Available = boolp(false)

	for _, s := range []*model.StatusSnapshot{snap, nil} {
		v := Status(model.LocaleEN, now, s)
		if !v.Degraded {
			t.Error("expected degraded view")
		}
		if v.Internet.State != InternetUnknown || v.Internet.Targets != Placeholder || v.Internet.Updated != Placeholder {
			t.Errorf("internet = %+v", v.Internet)
		}
		if v.Internet.RTT != "Avg RTT: N/A" {
			t.Errorf("rtt = %q", v.Internet.RTT)
		}
		if len(v.Alerts.Alerts) != 0 || v.Alerts.Empty == "" {
			t.Errorf("alerts should be empty, got %+v", v.Alerts)
		}
		if v.Upstream.Empty != "No upstream services configured" {
			t.Errorf("upstream = %+v", v.Upstream)
		}
		if len(v.Patches) != 0 {
			t.Error("degraded view must not carry patches")
		}
	}
}

func TestInternetTargets(t *testing.T) {
	tests := []struct {
		name     string
		sum      *model.InternetSummary
		expected string
	}{
		{"unknown", &model.InternetSummary{ReachableTargets: intp(2)}, "--"},
		{"expected fallback", &model.InternetSummary{Online: boolp(false), ReachableTargets: intp(0), ExpectedTargets: intp(4)}, "0 / 4"},
		{"zero total", &model.InternetSummary{Online: boolp(true), ReachableTargets: intp(2), TotalTargets: intp(0)}, "2 reachable"},
		{"no total", &model.InternetSummary{Online: boolp(true), ReachableTargets: intp(1)}, "1 reachable"},
		{"no reachable", &model.InternetSummary{Online: boolp(true), TotalTargets: intp(3)}, "0 / 3"},
	}

	for _, test := range tests {
		if got := Internet(model.LocaleEN, now, test.sum, "").Targets; got != test.expected {
			t.Errorf("%s: targets = %q, expected %q", test.name, got, test.expected)
		}
	}

	off := Internet(model.LocaleEN, now, &model.InternetSummary{Online: boolp(false)}, "")
	if off.State != InternetOffline || off.RTT != "Avg RTT: N/A" {
		t.Errorf("offline = %+v", off)
	}
}

func TestWeatherPanel(t *testing.T) {
	code := 61
	view := model.WeatherAvailable{
		Temperature: floatp(3.5),
		Windspeed:   floatp(12),
		WeatherCode: &code,
		IsDay:       false,
		Hourly: []model.HourlyEntry{
			{Time: "2024-05-01T13:00", Temperature: floatp(4), PrecipitationProbability: floatp(30), WeatherCode: intp(0)},
			{Time: "2024-05-01T14:00", Fallback: true},
		},
		Aurora: model.AuroraStatus{Kind: model.AuroraInactive, Probability: floatp(5)},
	}

	p := Weather(model.LocaleEN, view)
	if !p.Available || p.Temperature != "3.5°C" {
		t.Errorf("panel = %+v", p)
	}
	if p.Detail != "Wind 12 km/h | Code 61" {
		t.Errorf("detail = %q", p.Detail)
	}
	if p.Condition != "Light rain" || p.Icon != "🌧️" {
		t.Errorf("condition = %q %q", p.Condition, p.Icon)
	}
	if p.Phase != "Nighttime" {
		t.Errorf("phase = %q", p.Phase)
	}
	if len(p.Hourly.Chips) != 2 {
		t.Fatalf("chips = %+v", p.Hourly)
	}
	first, second := p.Hourly.Chips[0], p.Hourly.Chips[1]
	if first.Label != "01:00 PM" || first.Temperature != "4°C" || first.Precip != "Precip: 30%" {
		t.Errorf("first chip = %+v", first)
	}
	if second.Label != "02:00 PM *" || !second.Fallback || second.Precip != "Precip: --" || second.Icon != "❔" {
		t.Errorf("second chip = %+v", second)
	}
	if p.Aurora.Text != "No aurora expected (Probability: 5%)" {
		t.Errorf("aurora = %q", p.Aurora.Text)
	}
}

func TestWeatherUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		view   model.WeatherView
		temp   string
		detail string
	}{
		{"never fetched", nil, "--°C", "Weather unavailable"},
		{"disabled", model.WeatherUnavailable{Reason: model.ReasonDisabled}, "N/A", "Weather disabled in config"},
		{"fetch failed", model.WeatherUnavailable{Reason: model.ReasonFetchFailed}, "N/A", "Weather fetch failed (maybe offline)"},
		{"generic", model.WeatherUnavailable{Reason: model.ReasonGeneric}, "N/A", "Weather unavailable"},
	}

	for _, test := range tests {
		p := Weather(model.LocaleEN, test.view)
		if p.Available {
			t.Errorf("%s: should be unavailable", test.name)
		}
		if p.Temperature != test.temp || p.Detail != test.detail {
			t.Errorf("%s: got %q / %q", test.name, p.Temperature, p.Detail)
		}
		if p.Phase != "" || p.Icon != "❔" || p.Condition != "Unknown weather" {
			t.Errorf("%s: unexpected panel %+v", test.name, p)
		}
		if p.Hourly.Empty != "Hourly forecast unavailable" {
			t.Errorf("%s: hourly = %+v", test.name, p.Hourly)
		}
		if p.Aurora.Kind != model.AuroraUnknown || p.Aurora.Text != "Aurora status unknown" {
			t.Errorf("%s: aurora = %+v", test.name, p.Aurora)
		}
	}
}

func TestAurora(t *testing.T) {
	tests := []struct {
		status   model.AuroraStatus
		expected string
	}{
		{model.AuroraStatus{}, "Aurora status unknown"},
		{model.AuroraStatus{Kind: model.AuroraDisabled}, "Aurora check disabled"},
		{model.AuroraStatus{Kind: model.AuroraError}, "Aurora data unavailable"},
		{model.AuroraStatus{Kind: model.AuroraActive, Probability: floatp(62)}, "Aurora likely (Probability: 62%)"},
		{model.AuroraStatus{Kind: model.AuroraActive, Degraded: true}, "Aurora likely (Probability: --) · Aurora data unavailable"},
	}

	for _, test := range tests {
		if got := Aurora(model.LocaleEN, test.status).Text; got != test.expected {
			t.Errorf("Aurora(%s) = %q, expected %q", test.status.Kind, got, test.expected)
		}
	}
	if !Aurora(model.LocaleEN, model.AuroraStatus{Kind: model.AuroraActive}).Active {
		t.Error("active aurora should be flagged")
	}
}

func TestChrome(t *testing.T) {
	zh := Chrome(model.LocaleZH, model.ThemeNight)
	en := Chrome(model.LocaleEN, model.ThemeDay)

	if zh.LangToggle != "English" || en.LangToggle != "中文" {
		t.Errorf("lang toggles %q / %q", zh.LangToggle, en.LangToggle)
	}
	if en.ThemeToggle != "Day Mode" {
		t.Errorf("theme toggle = %q", en.ThemeToggle)
	}
	if len(en.TableHeaders) != 6 || en.TableHeaders[4] != "Latency / Code" {
		t.Errorf("headers = %v", en.TableHeaders)
	}
	if zh.Loading == en.Loading {
		t.Error("loading text should be localized")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry([]WidgetSpec{
		{Name: "NAS", Category: "Storage", Type: model.TypeHTTP, URL: "http://nas.lan", Important: true},
		{Name: "Router", Category: "Network", Host: "192.168.1.1", Port: 22},
		{Name: "NAS", Category: "Dup"},
	})
	if reg.Len() != 2 {
		t.Fatalf("expected 2 widgets, got %d", reg.Len())
	}

	rows := reg.Rows(model.LocaleEN)
	if rows[0].Metric != Placeholder || rows[0].State != model.StateUnknown || rows[0].Badge != "Unknown" {
		t.Errorf("fresh row = %+v", rows[0])
	}

	v := Status(model.LocaleEN, now, &model.StatusSnapshot{Services: []model.ServiceStatus{
		{Name: "Router", Type: model.TypePing, Status: model.StateUp, AvgRTTMs: floatp(1.2), LastChange: "2024-05-01T10:00:00"},
		{Name: "Ghost", Type: model.TypeTCP, Status: model.StateDown},
	}})
	if n := reg.Apply(v); n != 1 {
		t.Errorf("Apply patched %d widgets, expected 1", n)
	}

	rows = reg.Rows(model.LocaleEN)
	if rows[1].Name != "Router" || rows[1].Metric != "1.2 ms" || rows[1].Type != "ping" || rows[1].LastChange != "2024-05-01T10:00:00" {
		t.Errorf("router row = %+v", rows[1])
	}
	if rows[0].Metric != Placeholder {
		t.Errorf("NAS should be untouched, got %+v", rows[0])
	}

	if n := reg.Apply(Degraded(model.LocaleEN, now)); n != 0 {
		t.Errorf("degraded Apply patched %d widgets", n)
	}
	if got := reg.Rows(model.LocaleEN)[1]; got.State != model.StateUp || got.Metric != "1.2 ms" {
		t.Errorf("degraded view cleared a widget: %+v", got)
	}

	cards := reg.Cards(model.LocaleEN)
	if cards[0].Importance != "Importance: Core" || cards[0].Link != "Open ↗" || cards[0].Endpoint != "Endpoint: http://nas.lan" {
		t.Errorf("NAS card = %+v", cards[0])
	}
	if cards[1].Host != "Host: 192.168.1.1:22" || cards[1].Link != "No UI" || !cards[1].Patched {
		t.Errorf("router card = %+v", cards[1])
	}
	if zh := reg.Cards(model.LocaleZH)[1]; zh.Badge != "正常" {
		t.Errorf("zh badge = %q", zh.Badge)
	}
}

func TestLocaleOnlyChangesText(t *testing.T) {
	en := Status(model.LocaleEN, now, snapshot())
	zh := Status(model.LocaleZH, now, snapshot())

	if !reflect.DeepEqual(en.Patches, zh.Patches) {
		t.Error("patches should not depend on locale")
	}
	if en.Internet.State != zh.Internet.State || en.Internet.Targets != zh.Internet.Targets {
		t.Error("internet data should not depend on locale")
	}
	if !strings.Contains(zh.Internet.Updated, "分钟前") {
		t.Errorf("zh updated = %q", zh.Internet.Updated)
	}
}

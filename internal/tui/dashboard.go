package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/homeportal/internal/dashboard"
	"github.com/user/homeportal/internal/render"
)

// Dashboard lays out a dashboard.Screen for the terminal.
type Dashboard struct {
	styles    Styles
	width     int
	collapsed bool
}

// NewDashboard creates a dashboard layout.
func NewDashboard(styles Styles, width int) *Dashboard {
	return &Dashboard{styles: styles, width: width}
}

// SetSize updates the dashboard width.
func (d *Dashboard) SetSize(width int) {
	d.width = width
}

// SetStyles swaps the palette after a theme change.
func (d *Dashboard) SetStyles(styles Styles) {
	d.styles = styles
}

// ToggleMatrix collapses or expands the service matrix.
func (d *Dashboard) ToggleMatrix() {
	d.collapsed = !d.collapsed
}

func (d *Dashboard) sectionWidth() int {
	w := d.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

// View renders the whole screen.
func (d *Dashboard) View(s dashboard.Screen) string {
	var sb strings.Builder

	sb.WriteString(d.renderHeader(s))
	sb.WriteString("\n")
	sb.WriteString(d.renderSignal(s))
	sb.WriteString("\n")
	sb.WriteString(d.renderDeck(s))
	sb.WriteString("\n")
	sb.WriteString(d.renderAlerts(s))
	sb.WriteString("\n")
	sb.WriteString(d.renderMatrix(s))

	return sb.String()
}

func (d *Dashboard) renderHeader(s dashboard.Screen) string {
	st := d.styles
	left := st.Header.Render("🏠 "+s.Title) + " " + st.Tagline.Render(s.Chrome.Tagline)
	right := st.Toggle.Render(s.Chrome.ThemeToggle) + " " + st.Toggle.Render(s.Chrome.LangToggle) + "  " + st.Value.Render(s.Clock)

	gap := d.sectionWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}

func (d *Dashboard) renderSignal(s dashboard.Screen) string {
	st := d.styles
	half := d.sectionWidth()/2 - 2
	if half < 36 {
		half = 36
	}

	internet := d.renderInternet(s)
	weather := d.renderWeather(s)

	left := st.Section.Width(half).Render(internet)
	right := st.Section.Width(half).Render(weather)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if lipgloss.Width(body) > d.sectionWidth()+2 {
		body = lipgloss.JoinVertical(lipgloss.Left, left, right)
	}

	return st.SectionTitle.Render("📡 "+s.Chrome.SectionSignal) + "\n" + body
}

func (d *Dashboard) renderInternet(s dashboard.Screen) string {
	st := d.styles
	c := s.Chrome
	in := s.Status.Internet

	var pill string
	switch in.State {
	case render.InternetOnline:
		pill = st.Success.Render("● " + in.Pill)
	case render.InternetOffline:
		pill = st.Error.Render("● " + in.Pill)
	default:
		pill = st.Warning.Render("● " + in.Pill)
	}

	lines := []string{
		st.SectionTitle.Render(c.InternetTitle) + "  " + pill,
		st.Label.Render(c.InternetState+": ") + st.Value.Render(in.Status),
		st.Label.Render(in.RTT),
		st.Label.Render(c.InternetTargets+": ") + st.Value.Render(in.Targets),
		st.Label.Render(c.InternetUpdated+": ") + in.Updated,
		"",
	}

	switch {
	case s.Loading:
		lines = append(lines, st.Dim.Render(c.UpstreamProbe))
	case len(s.Status.Upstream.Entries) == 0:
		lines = append(lines, st.Dim.Render(s.Status.Upstream.Empty))
	default:
		for _, e := range s.Status.Upstream.Entries {
			lines = append(lines, st.State(e.State, e.Text))
		}
	}

	return strings.Join(lines, "\n")
}

func (d *Dashboard) renderWeather(s dashboard.Screen) string {
	st := d.styles
	w := s.Weather

	lines := []string{
		st.SectionTitle.Render(s.Chrome.WeatherTitle) + "  " + st.Dim.Render(s.Chrome.WeatherHint),
		w.Icon + "  " + st.Value.Render(w.Temperature) + "  " + w.Condition,
	}
	if w.Phase != "" {
		lines = append(lines, st.Label.Render(w.Phase))
	}
	lines = append(lines, st.Label.Render(w.Detail), "")

	if len(w.Hourly.Chips) == 0 {
		lines = append(lines, st.Dim.Render(w.Hourly.Empty))
	} else {
		chips := make([]string, 0, len(w.Hourly.Chips))
		for _, c := range w.Hourly.Chips {
			chips = append(chips, st.Card.Width(14).Render(
				st.Value.Render(c.Label)+"\n"+c.Temperature+" "+c.Icon+"\n"+st.Label.Render(c.Precip)))
		}
		lines = append(lines, lipgloss.NewStyle().Width(d.sectionWidth()/2-4).Render(
			lipgloss.JoinHorizontal(lipgloss.Top, chips...)))
	}

	aurora := st.Dim.Render(w.Aurora.Text)
	if w.Aurora.Active {
		aurora = st.Success.Render(w.Aurora.Text)
	}
	lines = append(lines, "", "🌌 "+aurora)
	if w.Aurora.Probability != nil {
		lines = append(lines, st.Bar(*w.Aurora.Probability, 100, 20))
	}

	return strings.Join(lines, "\n")
}

func (d *Dashboard) renderDeck(s dashboard.Screen) string {
	st := d.styles
	title := st.SectionTitle.Render("🗂️ " + s.Chrome.SectionLAN)
	if len(s.Cards) == 0 {
		return title
	}

	perRow := d.sectionWidth() / 34
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var current []string
	for _, c := range s.Cards {
		box := st.Card
		if c.Important {
			box = st.CoreCard
		}
		name := c.Name
		if c.Icon != "" {
			name = c.Icon + " " + name
		}
		body := strings.Join([]string{
			st.Value.Render(name) + "  " + st.Dim.Render(c.Category),
			st.State(c.State, c.Badge) + "  " + c.Metric,
			st.Label.Render(c.Type),
			st.Label.Render(c.Endpoint),
			st.Label.Render(c.Host),
			st.Label.Render(c.Importance),
			st.Dim.Render(c.Link),
		}, "\n")
		current = append(current, box.Render(body))
		if len(current) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	return title + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (d *Dashboard) renderAlerts(s dashboard.Screen) string {
	st := d.styles
	title := st.SectionTitle.Render("🚨 " + s.Chrome.SectionAlerts)

	if len(s.Status.Alerts.Alerts) == 0 {
		return st.Section.Width(d.sectionWidth()).Render(title + "\n" + st.Success.Render(s.Status.Alerts.Empty))
	}

	blocks := make([]string, 0, len(s.Status.Alerts.Alerts))
	for _, a := range s.Status.Alerts.Alerts {
		lines := append([]string{st.State(a.State, a.Name)}, a.Lines...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return st.Section.Width(d.sectionWidth()).Render(title + "\n" + strings.Join(blocks, "\n\n"))
}

var columnWidths = []int{18, 14, 8, 12, 18, 22}

func (d *Dashboard) renderMatrix(s dashboard.Screen) string {
	st := d.styles
	title := st.SectionTitle.Render("📋 "+s.Chrome.SectionTable) + "  " + st.Dim.Render("["+s.Chrome.ToggleTable+"]")
	if d.collapsed || len(s.Rows) == 0 {
		return title
	}

	cell := func(style lipgloss.Style, i int, text string) string {
		return style.Width(columnWidths[i]).MaxWidth(columnWidths[i]).Render(text)
	}

	header := make([]string, len(s.Chrome.TableHeaders))
	for i, h := range s.Chrome.TableHeaders {
		header[i] = cell(st.TableHeader, i, h)
	}

	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for i, r := range s.Rows {
		style := st.TableRow
		if i%2 == 1 {
			style = st.TableRowAlt
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			cell(style, 0, r.Name),
			cell(style, 1, r.Category),
			cell(style, 2, r.Type),
			cell(style, 3, st.State(r.State, r.Badge)),
			cell(style, 4, r.Metric),
			cell(style, 5, r.LastChange),
		))
	}

	return title + "\n" + strings.Join(lines, "\n")
}

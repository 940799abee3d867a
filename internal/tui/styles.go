package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/homeportal/internal/model"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Subtle    lipgloss.Color
	Text      lipgloss.Color
	Surface   lipgloss.Color
	AltRow    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	nightPalette = Palette{
		Primary:   lipgloss.Color("205"),
		Secondary: lipgloss.Color("86"),
		Subtle:    lipgloss.Color("241"),
		Text:      lipgloss.Color("252"),
		Surface:   lipgloss.Color("57"),
		AltRow:    lipgloss.Color("236"),
		Success:   lipgloss.Color("46"),
		Warning:   lipgloss.Color("214"),
		Error:     lipgloss.Color("196"),
	}
	dayPalette = Palette{
		Primary:   lipgloss.Color("25"),
		Secondary: lipgloss.Color("30"),
		Subtle:    lipgloss.Color("245"),
		Text:      lipgloss.Color("235"),
		Surface:   lipgloss.Color("31"),
		AltRow:    lipgloss.Color("254"),
		Success:   lipgloss.Color("28"),
		Warning:   lipgloss.Color("166"),
		Error:     lipgloss.Color("160"),
	}
)

// PaletteFor returns the palette of a theme.
func PaletteFor(theme model.Theme) Palette {
	if theme == model.ThemeDay {
		return dayPalette
	}
	return nightPalette
}

// Styles are the lipgloss styles derived from a palette.
type Styles struct {
	Palette Palette

	Header       lipgloss.Style
	Tagline      lipgloss.Style
	Section      lipgloss.Style
	SectionTitle lipgloss.Style
	Card         lipgloss.Style
	CoreCard     lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Dim          lipgloss.Style
	Help         lipgloss.Style
	Loading      lipgloss.Style
	TableHeader  lipgloss.Style
	TableRow     lipgloss.Style
	TableRowAlt  lipgloss.Style
	Toggle       lipgloss.Style
}

// NewStyles builds the styles for theme.
func NewStyles(theme model.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Palette: p,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(p.Surface).
			Padding(0, 2),

		Tagline: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),

		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1),

		SectionTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary),

		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.Subtle).
			Padding(0, 1).
			Width(30),

		CoreCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1).
			Width(30),

		Label: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Value: lipgloss.NewStyle().
			Foreground(p.Secondary).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(p.Success),

		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Dim: lipgloss.NewStyle().
			Foreground(p.Subtle).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(p.Subtle),

		Loading: lipgloss.NewStyle().
			Foreground(p.Primary).
			Padding(2, 4),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(p.Subtle).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1),

		TableRowAlt: lipgloss.NewStyle().
			Foreground(p.Text).
			Padding(0, 1).
			Background(p.AltRow),

		Toggle: lipgloss.NewStyle().
			Foreground(p.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
	}
}

// State styles text by service state.
func (s Styles) State(state model.ServiceState, text string) string {
	switch state {
	case model.StateUp:
		return s.Success.Render("● " + text)
	case model.StateDown:
		return s.Error.Render("● " + text)
	default:
		return s.Warning.Render("● " + text)
	}
}

// Bar renders a horizontal gauge of value out of max.
func (s Styles) Bar(value, max float64, width int) string {
	if max <= 0 {
		max = 1
	}

	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(s.Palette.Secondary).Render(bar)
}

// Package tui draws the dashboard in the terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/homeportal/internal/dashboard"
	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/util"
)

// Job names used with the scheduler.
const (
	jobStatus  = "status"
	jobWeather = "weather"
)

// App is the terminal dashboard.
type App struct {
	config  *util.Config
	ctrl    *dashboard.Controller
	status  *poller.StatusPoller
	weather *poller.WeatherPoller
}

// NewApp creates the terminal dashboard.
func NewApp(cfg *util.Config, ctrl *dashboard.Controller, status *poller.StatusPoller, weather *poller.WeatherPoller) *App {
	return &App{
		config:  cfg,
		ctrl:    ctrl,
		status:  status,
		weather: weather,
	}
}

// Run starts the pollers and blocks until the user quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := poller.NewScheduler(ctx)
	m := newModel(a.ctrl, func() {
		for _, name := range []string{jobStatus, jobWeather} {
			if err := sched.Trigger(name); err != nil {
				util.Warn("Refresh: %v", err)
			}
		}
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	jobs := []*poller.Job{
		{
			Name:     jobStatus,
			Interval: a.config.StatusInterval,
			Run: func(ctx context.Context) error {
				res := a.status.Poll(ctx)
				p.Send(statusMsg(res))
				return res.Err
			},
		},
		{
			Name:     jobWeather,
			Interval: a.config.WeatherInterval,
			Run: func(ctx context.Context) error {
				res := a.weather.Poll(ctx)
				p.Send(weatherMsg(res))
				return res.Err
			},
		},
	}
	for _, job := range jobs {
		if err := sched.AddJob(job); err != nil {
			return err
		}
	}

	sched.Start()
	defer sched.Stop()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// Messages
type (
	statusMsg  poller.StatusResult
	weatherMsg poller.WeatherResult
	tickMsg    time.Time
)

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// appModel is the main bubbletea model. It is the only caller of the
// controller.
type appModel struct {
	ctrl      *dashboard.Controller
	refresh   func()
	dashboard *Dashboard
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	viewport  viewport.Model
	ready     bool
	now       time.Time
	notice    string
}

func newModel(ctrl *dashboard.Controller, refresh func()) appModel {
	styles := NewStyles(ctrl.Preferences().Theme)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Value

	now := time.Now()
	return appModel{
		ctrl:      ctrl,
		refresh:   refresh,
		dashboard: NewDashboard(styles, 80),
		keys:      newKeyMap(ctrl.Screen(now).Chrome),
		help:      help.New(),
		spinner:   s,
		now:       now,
	}
}

// Init initializes the model.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

// Update handles messages.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Language):
			m.report(m.ctrl.ToggleLocale())
			m.keys = newKeyMap(m.ctrl.Screen(m.now).Chrome)
		case key.Matches(msg, m.keys.Theme):
			m.report(m.ctrl.ToggleTheme())
			m.dashboard.SetStyles(NewStyles(m.ctrl.Preferences().Theme))
		case key.Matches(msg, m.keys.Matrix):
			m.dashboard.ToggleMatrix()
		case key.Matches(msg, m.keys.Refresh):
			refresh := m.refresh
			return m, func() tea.Msg {
				refresh()
				return nil
			}
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		height := msg.Height - 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		m.dashboard.SetSize(msg.Width)

	case statusMsg:
		m.ctrl.ApplyStatus(time.Now(), poller.StatusResult(msg))

	case weatherMsg:
		m.ctrl.ApplyWeather(poller.WeatherResult(msg))

	case tickMsg:
		m.now = time.Time(msg)
		m.refreshContent()
		return m, tick()

	case spinner.TickMsg:
		if m.ctrl.Phase() != dashboard.StatusPending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.refreshContent()
	return m, nil
}

// report keeps the last preference error on screen and in the log.
func (m *appModel) report(err error) {
	if err != nil {
		util.Warn("%v", err)
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

func (m *appModel) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.dashboard.View(m.ctrl.Screen(m.now)))
}

// View renders the UI.
func (m appModel) View() string {
	if !m.ready {
		return m.dashboard.styles.Loading.Render(m.spinner.View() + " " + m.ctrl.Screen(m.now).Chrome.Loading)
	}

	footer := m.help.View(m.keys)
	if m.ctrl.Phase() == dashboard.StatusPending {
		footer = m.spinner.View() + " " + footer
	}
	if m.notice != "" {
		footer = m.dashboard.styles.Error.Render(m.notice) + "  " + footer
	}

	return m.viewport.View() + "\n" + m.dashboard.styles.Help.Render(footer)
}

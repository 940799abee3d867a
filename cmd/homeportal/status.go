package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/tui"
)

var statusWidth int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Fetch once and print the dashboard",
	Long:  "Fetch both endpoints once, render the dashboard and print it to stdout.",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVar(&statusWidth, "width", 100, "output width in columns")
}

func runStatus(cmd *cobra.Command, args []string) error {
	w, err := newWiring()
	if err != nil {
		return err
	}
	defer w.close()

	ctx := cmd.Context()

	var (
		wg        sync.WaitGroup
		statusRes poller.StatusResult
		weathRes  poller.WeatherResult
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		statusRes = w.status.Poll(ctx)
	}()
	go func() {
		defer wg.Done()
		weathRes = w.weather.Poll(ctx)
	}()
	wg.Wait()

	now := time.Now()
	w.ctrl.ApplyStatus(now, statusRes)
	w.ctrl.ApplyWeather(weathRes)

	screen := w.ctrl.Screen(now)
	d := tui.NewDashboard(tui.NewStyles(screen.Chrome.Theme), statusWidth)
	fmt.Println(d.View(screen))

	if statusRes.Err != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
		fmt.Println()
		fmt.Println(errStyle.Render(fmt.Sprintf("Status fetch failed: %v", statusRes.Err)))
	}

	return nil
}

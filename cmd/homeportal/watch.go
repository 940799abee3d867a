package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/homeportal/internal/dashboard"
	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/util"
	"github.com/user/homeportal/internal/web"
)

var metricsAddr string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll headlessly and log every update",
	Long: `Run both pollers without a screen. Each applied result is logged as one
summary line. With --metrics-addr, prometheus metrics, /healthz and the
poller job table (/api/jobs) are served on that address.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
		"serve metrics on this address, e.g. :9105")
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := newWiring()
	if err != nil {
		return err
	}
	defer w.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	statusCh := make(chan poller.StatusResult, 4)
	weatherCh := make(chan poller.WeatherResult, 4)

	sched := poller.NewScheduler(ctx)
	jobs := []*poller.Job{
		{
			Name:     "status",
			Interval: cfg.StatusInterval,
			Run: func(ctx context.Context) error {
				res := w.status.Poll(ctx)
				select {
				case statusCh <- res:
				case <-ctx.Done():
				}
				return res.Err
			},
		},
		{
			Name:     "weather",
			Interval: cfg.WeatherInterval,
			Run: func(ctx context.Context) error {
				res := w.weather.Poll(ctx)
				select {
				case weatherCh <- res:
				case <-ctx.Done():
				}
				return res.Err
			},
		},
	}
	for _, job := range jobs {
		if err := sched.AddJob(job); err != nil {
			return err
		}
	}

	var srv *web.Server
	if metricsAddr != "" {
		srv = web.NewServer(metricsAddr, w.registry, sched)
		go func() {
			if err := srv.Start(); err != nil {
				util.Error("Metrics server error: %v", err)
			}
		}()
	}

	sched.Start()
	fmt.Printf("Watching %s. Press Ctrl+C to stop.\n", cfg.BaseURL)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	loop(ctx, w.ctrl, statusCh, weatherCh, sigCh)

	cancel()
	sched.Stop()
	if srv != nil {
		if err := srv.Stop(5 * time.Second); err != nil {
			util.Warn("Metrics server shutdown: %v", err)
		}
	}
	return nil
}

// loop is the single owner of the controller for a headless run.
func loop(ctx context.Context, ctrl *dashboard.Controller, statusCh <-chan poller.StatusResult, weatherCh <-chan poller.WeatherResult, sigCh <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigCh:
			util.Info("Received signal: %v", sig)
			return
		case res := <-statusCh:
			now := time.Now()
			if ctrl.ApplyStatus(now, res) {
				util.Info("%s", statusSummary(ctrl.Screen(now), res))
			}
		case res := <-weatherCh:
			if ctrl.ApplyWeather(res) {
				util.Info("%s", weatherSummary(ctrl.Screen(time.Now()), res))
			}
		}
	}
}

func statusSummary(s dashboard.Screen, res poller.StatusResult) string {
	if res.Err != nil {
		return fmt.Sprintf("status #%d: %s failure after %v", res.Seq, poller.FailureKind(res.Err), res.Duration.Round(time.Millisecond))
	}
	return fmt.Sprintf("status #%d: %s | %s | %s | alerts=%d | %v",
		res.Seq,
		s.Status.Internet.Status,
		s.Status.Internet.RTT,
		s.Status.Internet.Targets,
		len(s.Status.Alerts.Alerts),
		res.Duration.Round(time.Millisecond))
}

func weatherSummary(s dashboard.Screen, res poller.WeatherResult) string {
	w := s.Weather
	return fmt.Sprintf("weather #%d: %s %s %s | %s", res.Seq, w.Temperature, w.Condition, w.Detail, w.Aurora.Text)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/user/homeportal/internal/tui"
	"github.com/user/homeportal/internal/util"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the terminal dashboard",
	Long: `Launch the interactive dashboard. This is the default command.

Keys: l language, t theme, m collapse matrix, r refresh, arrows to scroll,
q to quit. Log lines go to the log file only while the dashboard is open.`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	// Keep log output off the alternate screen.
	util.InitLogger(cfg.LogLevel, cfg.LogFile, nil)

	w, err := newWiring()
	if err != nil {
		return err
	}
	defer w.close()

	app := tui.NewApp(cfg, w.ctrl, w.status, w.weather)
	return app.Run(cmd.Context())
}

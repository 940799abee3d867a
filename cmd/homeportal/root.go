package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/user/homeportal/internal/dashboard"
	"github.com/user/homeportal/internal/i18n"
	"github.com/user/homeportal/internal/model"
	"github.com/user/homeportal/internal/poller"
	"github.com/user/homeportal/internal/prefs"
	"github.com/user/homeportal/internal/render"
	"github.com/user/homeportal/internal/storage"
	"github.com/user/homeportal/internal/util"
)

var version = "1.0.0"

var (
	cfgFile   string
	langFlag  string
	themeFlag string
	ephemeral bool
	cfg       *util.Config
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "homeportal",
	Short: "LAN status dashboard",
	Long: `Home Portal shows the state of your home network in the terminal:
- Internet reachability and upstream services
- Every configured LAN service as a card and a matrix row
- Alerts for services that are not up
- Current weather, hourly forecast and aurora outlook

Data comes from the portal backend's /api/status and /api/weather endpoints.`,
	SilenceUsage: true,
	RunE:         runUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.homeportal/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "",
		"display language (zh, en, or a locale such as en_US.UTF-8)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "",
		"color theme (day, night)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false,
		"keep preferences in memory only")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	// Add subcommands
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add shell completion
	rootCmd.AddCommand(completionCmd)
}

func initConfig() {
	var err error
	cfg, err = util.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	util.InitLogger(cfg.LogLevel, cfg.LogFile, os.Stderr)
}

// openPrefs returns the preference adapter and a function releasing its
// storage.
func openPrefs() (*prefs.Preferences, func(), error) {
	if ephemeral {
		return prefs.New(prefs.NewMemoryStore()), func() {}, nil
	}

	db, err := storage.Open(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	return prefs.New(storage.NewPrefStore(db)), func() { db.Close() }, nil
}

// wiring holds the objects every dashboard command shares.
type wiring struct {
	ctrl     *dashboard.Controller
	status   *poller.StatusPoller
	weather  *poller.WeatherPoller
	registry *prometheus.Registry
	close    func()
}

func newWiring() (*wiring, error) {
	p, closePrefs, err := openPrefs()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	metrics := poller.NewMetrics(reg)
	fetcher := poller.NewFetcher(cfg.BaseURL, cfg.RequestTimeout)

	// One counter per endpoint; ordering only matters within an endpoint.
	statusSeq, weatherSeq := new(atomic.Uint64), new(atomic.Uint64)

	widgets := render.NewRegistry(render.SpecsFromConfig(cfg.Services))
	ctrl := dashboard.New(cfg.SiteTitle, p, widgets, metrics)

	if err := applyOverrides(ctrl); err != nil {
		closePrefs()
		return nil, err
	}

	return &wiring{
		ctrl:     ctrl,
		status:   poller.NewStatusPoller(fetcher, cfg.StatusPath, metrics, statusSeq),
		weather:  poller.NewWeatherPoller(fetcher, cfg.WeatherPath, metrics, weatherSeq),
		registry: reg,
		close:    closePrefs,
	}, nil
}

// applyOverrides applies --lang and --theme. Overrides are persisted like a
// toggle would be.
func applyOverrides(ctrl *dashboard.Controller) error {
	if langFlag != "" {
		loc, ok := i18n.ParseLocale(langFlag)
		if !ok {
			return fmt.Errorf("unsupported language %q", langFlag)
		}
		if err := ctrl.SetLocale(loc); err != nil {
			util.Warn("%v", err)
		}
	}
	if themeFlag != "" {
		theme, ok := model.ParseTheme(themeFlag)
		if !ok {
			return fmt.Errorf("unsupported theme %q", themeFlag)
		}
		if err := ctrl.SetTheme(theme); err != nil {
			util.Warn("%v", err)
		}
	}
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("homeportal version " + version)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for homeportal.

To load completions:

Bash:
  $ source <(homeportal completion bash)

Zsh:
  $ source <(homeportal completion zsh)

Fish:
  $ homeportal completion fish | source

PowerShell:
  PS> homeportal completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}

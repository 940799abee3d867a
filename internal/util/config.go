// Package util provides common utilities for homeportal.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ServiceConfig is one entry of the LAN deck, as listed in the portal's
// config.yaml. The dashboard builds one card and one matrix row per entry.
type ServiceConfig struct {
	Name      string `mapstructure:"name" validate:"required"`
	Category  string `mapstructure:"category"`
	Type      string `mapstructure:"type" validate:"omitempty,oneof=http ping tcp other"`
	URL       string `mapstructure:"url" validate:"omitempty,url"`
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Important bool   `mapstructure:"important"`
	Icon      string `mapstructure:"icon"`
}

// Config holds all application configuration.
type Config struct {
	DataDir  string `mapstructure:"data_dir" validate:"required"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFile  string `mapstructure:"log_file"`

	// Backend endpoints
	BaseURL     string `mapstructure:"base_url" validate:"required,url"`
	StatusPath  string `mapstructure:"status_path" validate:"required,startswith=/"`
	WeatherPath string `mapstructure:"weather_path" validate:"required,startswith=/"`

	// Poll intervals
	StatusInterval  time.Duration `mapstructure:"status_interval" validate:"gt=0"`
	WeatherInterval time.Duration `mapstructure:"weather_interval" validate:"gt=0"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`

	SiteTitle string          `mapstructure:"site_title"`
	Services  []ServiceConfig `mapstructure:"services" validate:"unique=Name,dive"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".homeportal")

	return &Config{
		DataDir:  dataDir,
		LogLevel: "info",
		LogFile:  filepath.Join(dataDir, "homeportal.log"),

		BaseURL:     "http://localhost:8000",
		StatusPath:  "/api/status",
		WeatherPath: "/api/weather",

		StatusInterval:  10 * time.Second,
		WeatherInterval: 180 * time.Second,
		RequestTimeout:  8 * time.Second,

		SiteTitle: "Home Portal",
	}
}

// LoadConfig loads configuration from file, .env and environment. An empty
// cfgFile searches the data dir and the working directory for config.yaml.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return loadConfig(viper.GetViper(), cfgFile)
}

func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := DefaultConfig()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(cfg.DataDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HOMEPORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set defaults in viper
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("log_level", cfg.LogLevel)
	v.BindEnv("log_file")
	v.SetDefault("base_url", cfg.BaseURL)
	v.SetDefault("status_path", cfg.StatusPath)
	v.SetDefault("weather_path", cfg.WeatherPath)
	v.SetDefault("status_interval", cfg.StatusInterval)
	v.SetDefault("weather_interval", cfg.WeatherInterval)
	v.SetDefault("request_timeout", cfg.RequestTimeout)
	v.SetDefault("site_title", cfg.SiteTitle)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Unmarshal into config struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The log file follows a relocated data dir unless set explicitly.
	if !v.IsSet("log_file") {
		cfg.LogFile = filepath.Join(cfg.DataDir, "homeportal.log")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := EnsureDir(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tag constraints and flattens validator errors
// into one message.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EnsureDir ensures a directory exists.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Package config provides configuration management for the trading engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Risk    RiskConfig    `mapstructure:"risk"`
	Market  MarketConfig  `mapstructure:"market"`
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
}

// RiskConfig holds the risk rule parameters.
type RiskConfig struct {
	RiskFraction   float64 `mapstructure:"risk_fraction"`    // fraction of capital risked per trade
	RiskTolerance  float64 `mapstructure:"risk_tolerance"`   // multiplier above budget before rejection
	MaxStopPercent float64 `mapstructure:"max_stop_percent"` // warn when stop is further than this
	MinStopPercent float64 `mapstructure:"min_stop_percent"` // warn when stop is tighter than this
	MinRewardRatio float64 `mapstructure:"min_reward_ratio"` // warn when reward/risk is below this
}

// MarketConfig holds the exchange calendar parameters.
type MarketConfig struct {
	Timezone    string   `mapstructure:"timezone"`
	OpenHour    int      `mapstructure:"open_hour"`
	OpenMinute  int      `mapstructure:"open_minute"`
	CloseHour   int      `mapstructure:"close_hour"`
	CloseMinute int      `mapstructure:"close_minute"`
	Holidays    []string `mapstructure:"holidays"` // YYYY-MM-DD
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
	File    bool   `mapstructure:"file"`
}

// StorageConfig holds data storage configuration.
type StorageConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/kvk-trader"
	}
	return filepath.Join(home, ".config", "kvk-trader")
}

// Default returns the built-in configuration: NSE hours 09:15-15:30
// IST and the 1%-per-trade risk rule.
func Default() *Config {
	return &Config{
		Risk: RiskConfig{
			RiskFraction:   0.01,
			RiskTolerance:  1.1,
			MaxStopPercent: 5.0,
			MinStopPercent: 0.5,
			MinRewardRatio: 1.0,
		},
		Market: MarketConfig{
			Timezone:    "Asia/Kolkata",
			OpenHour:    9,
			OpenMinute:  15,
			CloseHour:   15,
			CloseMinute: 30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
			File:    true,
		},
		Storage: StorageConfig{
			DatabasePath: filepath.Join(DefaultConfigDir(), "engine.db"),
		},
	}
}

// Load loads configuration from the specified directory, falling back
// to defaults and writing a template config on first run. If configDir
// is empty, the default config directory is used.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := Default()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if werr := writeTemplateConfig(configDir); werr != nil {
				return nil, fmt.Errorf("writing config template: %w", werr)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	// The template ships database_path = "" meaning "use the default".
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = filepath.Join(DefaultConfigDir(), "engine.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("KVK_RISK_FRACTION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Risk.RiskFraction = f
		}
	}
	if v := os.Getenv("KVK_MARKET_TIMEZONE"); v != "" {
		cfg.Market.Timezone = v
	}
	if v := os.Getenv("KVK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("KVK_DATABASE_PATH"); v != "" {
		cfg.Storage.DatabasePath = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Risk.RiskFraction <= 0 || c.Risk.RiskFraction > 0.1 {
		return fmt.Errorf("risk_fraction must be in (0, 0.1], got %v", c.Risk.RiskFraction)
	}
	if c.Risk.RiskTolerance < 1 {
		return fmt.Errorf("risk_tolerance must be at least 1, got %v", c.Risk.RiskTolerance)
	}
	if c.Risk.MinStopPercent >= c.Risk.MaxStopPercent {
		return fmt.Errorf("min_stop_percent must be below max_stop_percent")
	}
	if c.Market.OpenHour < 0 || c.Market.OpenHour > 23 || c.Market.CloseHour < 0 || c.Market.CloseHour > 23 {
		return fmt.Errorf("market hours must be within the day")
	}
	openMinutes := c.Market.OpenHour*60 + c.Market.OpenMinute
	closeMinutes := c.Market.CloseHour*60 + c.Market.CloseMinute
	if openMinutes >= closeMinutes {
		return fmt.Errorf("market open must be before close")
	}
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil && c.Market.Timezone != "IST" {
		return fmt.Errorf("unknown timezone %q", c.Market.Timezone)
	}
	for _, d := range c.Market.Holidays {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("invalid holiday date %q (want YYYY-MM-DD)", d)
		}
	}
	return nil
}

// Location resolves the configured market timezone, falling back to a
// fixed UTC+5:30 zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Market.Timezone)
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

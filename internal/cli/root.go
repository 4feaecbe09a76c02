// Package cli provides the command-line interface for the trading engine.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"kvk-trader/internal/config"
	"kvk-trader/internal/logging"
	"kvk-trader/internal/market"
	"kvk-trader/internal/risk"
	"kvk-trader/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
	Clock  *market.Clock
	Risk   *risk.Engine
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
		Risk: risk.NewEngine(risk.Config{
			RiskFraction:   cfg.Risk.RiskFraction,
			RiskTolerance:  cfg.Risk.RiskTolerance,
			MaxStopPercent: cfg.Risk.MaxStopPercent,
			MinStopPercent: cfg.Risk.MinStopPercent,
			MinRewardRatio: cfg.Risk.MinRewardRatio,
		}),
	}

	// Initialize SQLite store; calendar and journal commands degrade
	// without it.
	dataStore, err := store.NewSQLiteStore(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to initialize store, calendar and journal unavailable")
	} else {
		app.Store = dataStore
		logger.Debug().Msg("SQLite store initialized")
	}

	app.Clock = buildClock(app)

	rootCmd := &cobra.Command{
		Use:   "kvk-trader",
		Short: "KVK Trading Engine - NSE market session and risk calculator",
		Long: `KVK Trading Engine is a calculation toolkit for the Indian stock market.

It detects the current NSE market session, sizes positions under the
1%-per-trade rule, models stop-loss and target P&L scenarios, and scores
trade risk. All calculations are pure and take explicit inputs.

Use 'kvk-trader help <command>' for more information about a command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/kvk-trader)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newSessionCmd(app))
	rootCmd.AddCommand(newSizeCmd(app))
	rootCmd.AddCommand(newScenariosCmd(app))
	rootCmd.AddCommand(newAdviseCmd(app))
	rootCmd.AddCommand(newWinProbCmd(app))
	rootCmd.AddCommand(newHolidaysCmd(app))
	rootCmd.AddCommand(newExportCmd(app))
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.DefaultConfigDir())
		},
	})

	return cmd
}

// buildClock merges config and stored holidays into a session clock.
func buildClock(app *App) *market.Clock {
	cfg := market.Config{
		Location:    app.Config.Location(),
		OpenHour:    app.Config.Market.OpenHour,
		OpenMinute:  app.Config.Market.OpenMinute,
		CloseHour:   app.Config.Market.CloseHour,
		CloseMinute: app.Config.Market.CloseMinute,
		Holidays:    make(map[string]bool),
	}

	for _, d := range app.Config.Market.Holidays {
		cfg.Holidays[d] = true
	}

	if app.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		holidays, err := app.Store.ListHolidays(ctx)
		if err != nil {
			app.Logger.Warn().Err(err).Msg("Failed to load holiday calendar")
		} else {
			for _, h := range holidays {
				cfg.Holidays[h.Date] = true
			}
		}
	}

	return market.NewClock(cfg)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("kvk-trader %s\n", Version)
		},
	}
}

// printJSON marshals v with indentation to stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

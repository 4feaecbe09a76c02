package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kvk-trader/internal/logging"
	"kvk-trader/internal/market"
	"kvk-trader/internal/models"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show the current market session",
		Long:  "Show the current NSE market session, prediction mode, and time until the next open",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			status := app.Clock.Status(now)
			open := app.Clock.IsOpen(now)
			mode := market.PredictionMode(open)

			logging.LogSession(app.Logger, string(status.Session), open)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(struct {
					Status         market.Status         `json:"status"`
					Open           bool                  `json:"open"`
					PredictionMode models.PredictionMode `json:"prediction_mode"`
					UntilOpen      market.Countdown      `json:"time_until_open"`
				}{status, open, mode, app.Clock.TimeUntilOpen(now)})
			}

			fmt.Println()
			color.Cyan("🕒 Market Session")
			fmt.Println("─────────────────────────────────────────")
			fmt.Printf("Session:  %s\n", status.Session)
			fmt.Printf("Label:    %s\n", status.Label)

			if open {
				color.Green("✓ Market is open - live analysis available")
				fmt.Printf("Minutes since open: %d\n", app.Clock.MinutesSinceOpen(now))
			} else {
				until := app.Clock.TimeUntilOpen(now)
				color.Yellow("Market is closed - analysis mode only")
				fmt.Printf("Next open in: %dh %dm\n", until.Hours, until.Minutes)
			}

			fmt.Printf("Mode:     %s (risk level %s)\n", mode.Mode, mode.RiskLevel)
			fmt.Println()
			return nil
		},
	}

	return cmd
}

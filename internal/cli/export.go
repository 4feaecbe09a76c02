package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var output string
	var limit int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trade-plan journal as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("journal unavailable: store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			plans, err := app.Store.ListPlans(ctx, limit)
			if err != nil {
				return fmt.Errorf("loading trade plans: %w", err)
			}
			if len(plans) == 0 {
				return fmt.Errorf("journal is empty, nothing to export")
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := gocsv.Marshal(plans, out); err != nil {
				return fmt.Errorf("writing CSV: %w", err)
			}

			if output != "" {
				app.Logger.Info().Str("file", output).Int("plans", len(plans)).Msg("Journal exported")
				color.Green("✓ Exported %d plans to %s", len(plans), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "export only the most recent N plans")
	return cmd
}

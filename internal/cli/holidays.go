package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kvk-trader/internal/models"
)

func newHolidaysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "Manage the exchange holiday calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHolidays(cmd, app)
		},
	}

	cmd.AddCommand(newHolidaysListCmd(app))
	cmd.AddCommand(newHolidaysAddCmd(app))
	cmd.AddCommand(newHolidaysRemoveCmd(app))
	return cmd
}

func newHolidaysListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured market holidays",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHolidays(cmd, app)
		},
	}
}

func listHolidays(cmd *cobra.Command, app *App) error {
	if app.Store == nil {
		return fmt.Errorf("holiday calendar unavailable: store not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	holidays, err := app.Store.ListHolidays(ctx)
	if err != nil {
		return fmt.Errorf("listing holidays: %w", err)
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(holidays)
	}

	fmt.Println()
	color.Cyan("📅 Market Holidays")
	fmt.Println("─────────────────────────────────────────")
	if len(holidays) == 0 {
		fmt.Println("No holidays configured")
	}
	for _, h := range holidays {
		fmt.Printf("%-12s %s\n", h.Date, h.Description)
	}
	fmt.Println()
	return nil
}

func newHolidaysAddCmd(app *App) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <date>",
		Short: "Add a market holiday (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("holiday calendar unavailable: store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			holiday := models.Holiday{Date: args[0], Description: description}
			if err := app.Store.SaveHoliday(ctx, holiday); err != nil {
				return fmt.Errorf("adding holiday: %w", err)
			}

			app.Logger.Info().Str("date", holiday.Date).Msg("Holiday added")
			color.Green("✓ Holiday added: %s", holiday.Date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "holiday description")
	return cmd
}

func newHolidaysRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date>",
		Short: "Remove a market holiday",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Store == nil {
				return fmt.Errorf("holiday calendar unavailable: store not initialized")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := app.Store.DeleteHoliday(ctx, args[0]); err != nil {
				return fmt.Errorf("removing holiday: %w", err)
			}

			app.Logger.Info().Str("date", args[0]).Msg("Holiday removed")
			color.Green("✓ Holiday removed: %s", args[0])
			return nil
		},
	}
}

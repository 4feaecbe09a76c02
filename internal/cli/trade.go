package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	apperrors "kvk-trader/internal/errors"
	"kvk-trader/internal/logging"
	"kvk-trader/internal/models"
	"kvk-trader/internal/scoring"
	"kvk-trader/pkg/utils"
)

func newSizeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "size <capital> <entry> <stop>",
		Short: "Calculate position size under the 1% rule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			capital, entry, stop, err := parsePrices(args[0], args[1], args[2])
			if err != nil {
				return err
			}

			position := app.Risk.PositionSize(capital, entry, stop)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(map[string]interface{}{
					"capital":  capital,
					"entry":    entry,
					"stop":     stop,
					"position": position,
				})
			}

			fmt.Println()
			color.Cyan("📐 Position Size")
			fmt.Println("─────────────────────────────────────────")
			fmt.Printf("Capital:    %s\n", utils.FormatCurrency(capital))
			fmt.Printf("Entry:      %s\n", utils.FormatPrice(entry))
			fmt.Printf("Stop Loss:  %s\n", utils.FormatPrice(stop))
			fmt.Printf("Position:   %s shares\n", utils.FormatQuantity(position))
			if position == 0 {
				color.Yellow("Position is zero - check the inputs")
			}
			fmt.Println()
			return nil
		},
	}
}

func newScenariosCmd(app *App) *cobra.Command {
	var quantity int
	var symbol string
	var save bool

	cmd := &cobra.Command{
		Use:   "scenarios <capital> <entry> <stop> <target>...",
		Short: "Model stop-loss and target P&L scenarios",
		Long: `Model the full profit/loss table for a trade: the stop-loss outcome
plus one scenario per target above the entry price, validated against
the risk budget.`,
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			capital, entry, stop, err := parsePrices(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			targets, err := parseTargets(args[3:])
			if err != nil {
				return err
			}

			if symbol != "" && !utils.IsValidSymbol(strings.ToUpper(symbol)) {
				return apperrors.NewValidationError("symbol", symbol, "want 1-5 uppercase letters")
			}
			if !utils.IsValidCapital(capital) {
				return apperrors.NewValidationError("capital", capital,
					fmt.Sprintf("want between %.0f and %.0f", utils.MinCapital, utils.MaxCapital))
			}
			if !utils.IsValidPrice(entry) || !utils.IsValidPrice(stop) {
				return apperrors.ErrInvalidPrice
			}

			params := models.TradeParameters{
				Symbol:     strings.ToUpper(symbol),
				Capital:    capital,
				EntryPrice: entry,
				StopLoss:   stop,
				Targets:    targets,
				Quantity:   quantity,
			}

			assessment := app.Risk.Evaluate(params)
			if assessment == nil {
				return fmt.Errorf("capital, entry, and stop loss are required")
			}

			logging.LogAssessment(app.Logger, params.Symbol, assessment.Position,
				assessment.RiskAmount, assessment.RiskPercent, assessment.Valid)

			if save && app.Store != nil {
				plan := &models.TradePlan{
					Symbol:      params.Symbol,
					Capital:     assessment.Capital,
					EntryPrice:  assessment.EntryPrice,
					StopLoss:    assessment.StopLoss,
					Position:    assessment.Position,
					RiskAmount:  assessment.RiskAmount,
					RiskPercent: assessment.RiskPercent,
					Valid:       assessment.Valid,
				}
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := app.Store.SavePlan(ctx, plan); err != nil {
					app.Logger.Warn().Err(err).Msg("Failed to save trade plan")
				}
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(assessment)
			}

			printAssessment(assessment)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 0, "override the calculated position size")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "symbol for the journal entry")
	cmd.Flags().BoolVar(&save, "save", false, "save the assessment to the journal")
	return cmd
}

func printAssessment(a *models.RiskAssessment) {
	fmt.Println()
	color.Cyan("📊 Trade Assessment")
	fmt.Println("─────────────────────────────────────────")

	if !a.Valid {
		color.Red("✗ %s", a.Error)
		fmt.Println(a.Message)
		fmt.Println()
		return
	}

	fmt.Printf("Capital:      %s\n", utils.FormatCurrency(a.Capital))
	fmt.Printf("Position:     %s shares\n", utils.FormatQuantity(a.Position))
	fmt.Printf("Max Risk:     %s\n", utils.FormatCurrency(a.MaxRisk))
	fmt.Printf("Risk Amount:  %s (%s of capital)\n",
		utils.FormatCurrency(a.RiskAmount), utils.FormatPercent(a.RiskPercent, 2))
	fmt.Println()

	fmt.Printf("%-12s %12s %10s %15s %12s\n", "Scenario", "Price", "Qty", "P&L", "P&L %")
	fmt.Println("─────────────────────────────────────────────────────────────────")
	for _, s := range a.Scenarios {
		line := fmt.Sprintf("%-12s %12s %10d %15s %12s",
			s.Name, utils.FormatPrice(s.Price), s.Quantity,
			utils.FormatPnL(s.PnL), utils.FormatPercent(s.PnLPercent, 2))
		if s.Type == models.ScenarioLoss {
			color.Red("%s", line)
		} else {
			color.Green("%s", line)
		}
	}
	fmt.Println()
}

func newAdviseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advise <capital> <entry> <stop> [target]...",
		Short: "Score a trade's risk into warnings and recommendations",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			capital, entry, stop, err := parsePrices(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			targets, err := parseTargets(args[3:])
			if err != nil {
				return err
			}

			warnings := app.Risk.Advise(capital, entry, stop, targets)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(warnings)
			}

			fmt.Println()
			color.Cyan("⚠ Risk Advisory")
			fmt.Println("─────────────────────────────────────────")
			if len(warnings.Warnings) == 0 {
				color.Green("✓ No warnings")
			}
			for _, w := range warnings.Warnings {
				color.Yellow("• %s", w)
			}
			for _, r := range warnings.Recommendations {
				fmt.Printf("  → %s\n", r)
			}
			fmt.Println()
			return nil
		},
	}
}

func newWinProbCmd(app *App) *cobra.Command {
	var trend string
	var volumeTrend string

	cmd := &cobra.Command{
		Use:   "winprob <rsi>",
		Short: "Estimate a heuristic win probability from indicators",
		Long: `Estimate a win probability from RSI, trend, and volume trend.

The score is a heuristic weighted indicator bounded to 20-80 percent,
not a statistically calibrated probability.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rsi, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid rsi %q: %w", args[0], err)
			}

			prob := scoring.WinProbability(rsi,
				models.VolumeTrend(strings.ToUpper(volumeTrend)),
				models.Trend(strings.ToUpper(trend)))

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return printJSON(map[string]interface{}{
					"rsi":             rsi,
					"trend":           strings.ToUpper(trend),
					"volume_trend":    strings.ToUpper(volumeTrend),
					"win_probability": prob,
				})
			}

			fmt.Println()
			color.Cyan("🎯 Win Probability (heuristic)")
			fmt.Println("─────────────────────────────────────────")
			fmt.Printf("RSI:          %.1f\n", rsi)
			fmt.Printf("Trend:        %s\n", strings.ToUpper(trend))
			fmt.Printf("Volume:       %s\n", strings.ToUpper(volumeTrend))
			fmt.Printf("Score:        %d%%\n", prob)
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&trend, "trend", "t", "NEUTRAL", "price trend (UPTREND/DOWNTREND/NEUTRAL)")
	cmd.Flags().StringVarP(&volumeTrend, "volume", "v", "STABLE", "volume trend (INCREASING/DECREASING/STABLE)")
	return cmd
}

func parsePrices(capitalArg, entryArg, stopArg string) (capital, entry, stop float64, err error) {
	capital, err = strconv.ParseFloat(capitalArg, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid capital %q: %w", capitalArg, err)
	}
	entry, err = strconv.ParseFloat(entryArg, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid entry price %q: %w", entryArg, err)
	}
	stop, err = strconv.ParseFloat(stopArg, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid stop loss %q: %w", stopArg, err)
	}
	return capital, entry, stop, nil
}

func parseTargets(args []string) ([]float64, error) {
	targets := make([]float64, 0, len(args))
	for _, arg := range args {
		t, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid target %q: %w", arg, err)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

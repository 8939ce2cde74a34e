package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "trading-journal/internal/errors"
	"trading-journal/internal/models"
	"trading-journal/internal/rating"
)

// addRateCommands adds the rating commands.
func addRateCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "rate <trades.json>",
		Short: "Rate a trade history",
		Long: `Compute the VRating performance score for a trade history.

The input file is a JSON array of trade records. Historical exports with
inconsistent field shapes (string PnL values, emotional state as a
string, list, or object) are accepted; records without a usable PnL are
excluded from the statistics but still count toward journaling
adherence.`,
		Example: `  journal rate trades.json
  journal rate trades.json --json
  journal rate trades.json --by-strategy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			trades, err := loadTrades(args[0])
			if err != nil {
				output.Error("Failed to load trades: %v", err)
				return err
			}
			app.Logger.Debug().Int("trades", len(trades)).Str("file", args[0]).Msg("trade history loaded")
			for _, issue := range rating.Issues(trades) {
				app.Logger.Debug().Err(issue).Msg("trade excluded from statistics")
			}

			byStrategy, _ := cmd.Flags().GetBool("by-strategy")
			if byStrategy {
				return renderStrategyBreakdown(output, app, trades)
			}

			result := app.Engine.Rate(trades)
			return renderRating(output, result)
		},
	}
	cmd.Flags().Bool("by-strategy", false, "show per-strategy performance breakdown")

	rootCmd.AddCommand(cmd)
}

// loadTrades reads a JSON array of trade records from disk.
func loadTrades(path string) ([]models.Trade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrapf(apperrors.ErrDataNotFound, "no trade file at %s", path)
		}
		return nil, apperrors.Wrapf(err, "reading %s", path)
	}

	var trades []models.Trade
	if err := json.Unmarshal(data, &trades); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}
	if len(trades) == 0 {
		return nil, apperrors.ErrNoTrades
	}
	return trades, nil
}

func renderRating(output *Output, result *models.VRatingResult) error {
	if output.IsJSON() {
		return output.JSON(result)
	}

	output.Bold("Overall Rating: %.1f / 10", result.OverallRating)
	output.Dim("Based on %d trades with realized P&L", result.TradeCount)
	output.Println()

	s := result.CategoryScores
	table := NewTable(output, "Category", "Score", "")
	table.AddRow("Profitability", FormatScore(s.Profitability), ScoreBar(s.Profitability))
	table.AddRow("Risk Management", FormatScore(s.RiskManagement), ScoreBar(s.RiskManagement))
	table.AddRow("Consistency", FormatScore(s.Consistency), ScoreBar(s.Consistency))
	table.AddRow("Emotional Discipline", FormatScore(s.EmotionalDiscipline), ScoreBar(s.EmotionalDiscipline))
	table.AddRow("Journaling Adherence", FormatScore(s.JournalingAdherence), ScoreBar(s.JournalingAdherence))
	table.Render()
	output.Println()

	m := result.Metrics
	output.Bold("Profitability")
	output.Printf("  Net P&L:          %s\n", FormatPercent(m.Profitability.NetPLPercentage))
	output.Printf("  Win rate:         %.1f%%\n", m.Profitability.WinRate)
	output.Printf("  Positive months:  %.1f%%\n", m.Profitability.PositiveMonthsPercentage)

	output.Bold("Risk Management")
	output.Printf("  Max drawdown:     %.1f%%\n", m.RiskManagement.MaxDrawdownPercentage)
	output.Printf("  Large losses:     %.1f%%\n", m.RiskManagement.LargeLossPercentage)
	output.Printf("  Size variability: %.1f%%\n", m.RiskManagement.QuantityVariability)
	output.Printf("  Avg duration:     %.1fh\n", m.RiskManagement.AverageTradeDuration)

	output.Bold("Consistency")
	output.Printf("  P&L volatility:   %.1f%%\n", m.Consistency.PLStdDevPercentage)
	output.Printf("  Loss streak:      %d\n", m.Consistency.LongestLossStreak)
	output.Printf("  Monthly ratio:    %.2f\n", m.Consistency.MonthlyConsistencyRatio)

	output.Bold("Emotional Discipline")
	output.Printf("  Positive tags:    %.1f%%\n", m.EmotionalDiscipline.PositiveEmotionPercentage)
	output.Printf("  Negative tags:    %.1f%%\n", m.EmotionalDiscipline.NegativeImpactPercentage)
	output.Printf("  Win correlation:  %s\n", FormatPercent(m.EmotionalDiscipline.PositiveEmotionWinCorrelation))
	output.Printf("  Tag completeness: %.1f%%\n", m.EmotionalDiscipline.EmotionLoggingCompleteness)

	output.Bold("Journaling Adherence")
	output.Printf("  Notes:            %.1f%%\n", m.JournalingAdherence.NotesPercentage)
	output.Printf("  Strategy:         %.1f%%\n", m.JournalingAdherence.StrategyPercentage)
	output.Printf("  Emotions:         %.1f%%\n", m.JournalingAdherence.EmotionPercentage)
	output.Printf("  Overall:          %.1f%%\n", m.JournalingAdherence.OverallCompleteness)

	return nil
}

func renderStrategyBreakdown(output *Output, app *App, trades []models.Trade) error {
	stats := app.Engine.StrategyBreakdown(trades)

	if output.IsJSON() {
		return output.JSON(stats)
	}

	if len(stats) == 0 {
		output.Info("No trades with realized P&L to break down.")
		return nil
	}

	output.Bold("Strategy Performance")
	table := NewTable(output, "Strategy", "Trades", "Win Rate", "Net P&L")
	for _, s := range stats {
		table.AddRow(
			s.StrategyID,
			fmt.Sprintf("%d", s.TradeCount),
			fmt.Sprintf("%.1f%%", s.WinRate),
			output.FormatPnL(s.NetPnL),
		)
	}
	table.Render()
	return nil
}

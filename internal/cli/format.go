package cli

import "fmt"

// FormatPnL formats P&L with an explicit sign.
func FormatPnL(pnl float64) string {
	if pnl > 0 {
		return fmt.Sprintf("+%.2f", pnl)
	}
	return fmt.Sprintf("%.2f", pnl)
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatScore formats a 0-10 sub-score.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}

// ScoreBar renders a simple ten-slot bar for a 0-10 score.
func ScoreBar(score float64) string {
	filled := int(score + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

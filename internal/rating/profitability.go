package rating

import (
	"math"

	"trading-journal/internal/models"
)

// Intra-category blend weights.
const (
	netReturnWeight      = 0.50
	winRateWeight        = 0.35
	positiveMonthsWeight = 0.15
)

// extractProfitability computes the profitability metrics over
// PnL-bearing trades. Net P&L is expressed against the capital base, not
// the trade count; dividing cumulative P&L by the number of trades is a
// unit mismatch.
func (e *Engine) extractProfitability(trades []models.NormalizedTrade) models.ProfitabilityMetrics {
	if len(trades) == 0 {
		return models.ProfitabilityMetrics{}
	}

	var netPL float64
	var wins int
	for _, t := range trades {
		netPL += t.PnL
		if t.PnL > 0 {
			wins++
		}
	}

	m := models.ProfitabilityMetrics{
		WinRate: percent(float64(wins), float64(len(trades))),
	}

	if base := e.capitalBase(trades); base > 0 {
		m.NetPLPercentage = netPL / base * 100
	}

	positive, active := monthlyBuckets(trades)
	m.PositiveMonthsPercentage = percent(float64(positive), float64(active))

	return m
}

// scoreProfitability maps the profitability metrics onto [0,10].
func scoreProfitability(m models.ProfitabilityMetrics, tradeCount int) float64 {
	if tradeCount == 0 {
		return 0
	}
	score := netReturnWeight*netReturnCurve.scoreFor(m.NetPLPercentage) +
		winRateWeight*winRateCurve.scoreFor(m.WinRate) +
		positiveMonthsWeight*positiveMonthsCurve.scoreFor(m.PositiveMonthsPercentage)

	// A 50% net return with a 70% win rate is elite regardless of how
	// the profit distributes across months.
	if m.NetPLPercentage >= 50 && m.WinRate >= 70 {
		score = math.Max(score, 9.0)
	}

	return clamp(score, 0, 10)
}

// capitalBase resolves the denominator for percentage metrics: the
// configured starting capital, else the total entry notional, else gross
// PnL turnover as a last resort.
func (e *Engine) capitalBase(trades []models.NormalizedTrade) float64 {
	if e.cfg.StartingCapital > 0 {
		return e.cfg.StartingCapital
	}

	var notional float64
	for _, t := range trades {
		notional += math.Abs(t.Quantity * t.EntryPrice)
	}
	if notional > 0 {
		return notional
	}

	var turnover float64
	for _, t := range trades {
		turnover += math.Abs(t.PnL)
	}
	return turnover
}

// monthlyBuckets sums PnL per calendar month and reports how many active
// months closed net positive. Trades without a parseable date carry no
// calendar month and are excluded.
func monthlyBuckets(trades []models.NormalizedTrade) (positive, active int) {
	months := make(map[string]float64)
	for _, t := range trades {
		if !t.HasDate {
			continue
		}
		months[t.MonthKey()] += t.PnL
	}
	for _, total := range months {
		active++
		if total > 0 {
			positive++
		}
	}
	return positive, active
}

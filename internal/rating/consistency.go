package rating

import (
	"math"

	"trading-journal/internal/models"
)

const (
	plVolatilityWeight = 0.50
	lossStreakWeight   = 0.20
	monthlyRatioWeight = 0.30
)

// extractConsistency computes the consistency metrics over PnL-bearing
// trades in chronological order.
func (e *Engine) extractConsistency(trades []models.NormalizedTrade) models.ConsistencyMetrics {
	if len(trades) == 0 {
		return models.ConsistencyMetrics{}
	}

	pnls := make([]float64, len(trades))
	for i, t := range trades {
		pnls[i] = t.PnL
	}

	m := models.ConsistencyMetrics{
		LongestLossStreak: longestLossStreak(pnls),
	}

	// Volatility normalized by mean trade size keeps the metric in
	// percentage terms regardless of account scale.
	if size := meanTradeSize(pnls); size > 0 {
		m.PLStdDevPercentage = stdDev(pnls) / size * 100
	}

	positive, active := monthlyBuckets(trades)
	if active > 0 {
		m.MonthlyConsistencyRatio = float64(positive) / float64(active)
	}

	return m
}

// scoreConsistency maps the consistency metrics onto [0,10].
func scoreConsistency(m models.ConsistencyMetrics, tradeCount int) float64 {
	if tradeCount == 0 {
		return 0
	}
	score := plVolatilityWeight*plVolatilityCurve.scoreFor(m.PLStdDevPercentage) +
		lossStreakWeight*lossStreakCurve.scoreFor(float64(m.LongestLossStreak)) +
		monthlyRatioWeight*monthlyRatioCurve.scoreFor(m.MonthlyConsistencyRatio)
	return clamp(score, 0, 10)
}

// meanTradeSize is the mean absolute PnL of the series.
func meanTradeSize(pnls []float64) float64 {
	if len(pnls) == 0 {
		return 0
	}
	var total float64
	for _, p := range pnls {
		total += math.Abs(p)
	}
	return total / float64(len(pnls))
}

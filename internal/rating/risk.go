package rating

import (
	"math"

	"trading-journal/internal/models"
)

const (
	drawdownWeight  = 0.40
	largeLossWeight = 0.15
	sizeVarWeight   = 0.25
	durationWeight  = 0.20

	// profitAdjustment relaxes or tightens the risk score by this much
	// depending on whether the account is net profitable.
	profitAdjustment = 0.75
)

// extractRisk computes the risk management metrics over PnL-bearing
// trades in chronological order.
func (e *Engine) extractRisk(trades []models.NormalizedTrade) models.RiskMetrics {
	if len(trades) == 0 {
		return models.RiskMetrics{}
	}

	pnls := make([]float64, len(trades))
	quantities := make([]float64, 0, len(trades))
	var durations []float64
	for i, t := range trades {
		pnls[i] = t.PnL
		if t.Quantity > 0 {
			quantities = append(quantities, t.Quantity)
		}
		if t.DurationHours != nil {
			durations = append(durations, *t.DurationHours)
		}
	}

	threshold := e.largeLossThreshold(pnls)
	var largeLosses int
	for _, p := range pnls {
		if p < -threshold {
			largeLosses++
		}
	}

	return models.RiskMetrics{
		MaxDrawdownPercentage: maxDrawdownPercent(pnls),
		LargeLossPercentage:   percent(float64(largeLosses), float64(len(pnls))),
		QuantityVariability:   coefficientOfVariation(quantities),
		AverageTradeDuration:  mean(durations),
	}
}

// largeLossThreshold calibrates the large-loss cutoff to the account's
// own loss profile: the configured floor, a multiple of the mean loss
// magnitude, or one standard deviation above the mean loss, whichever is
// largest. Losses within one stddev of the mean loss are never
// classified as large; a tiny absolute cutoff would flag ordinary
// trading noise as catastrophic risk.
func (e *Engine) largeLossThreshold(pnls []float64) float64 {
	var losses []float64
	for _, p := range pnls {
		if p < 0 {
			losses = append(losses, math.Abs(p))
		}
	}
	if len(losses) == 0 {
		return e.cfg.LargeLossFloor
	}

	meanLoss := mean(losses)
	threshold := e.cfg.LargeLossFloor
	if scaled := meanLoss * e.cfg.LargeLossMultiple; scaled > threshold {
		threshold = scaled
	}
	if banded := meanLoss + stdDev(losses); banded > threshold {
		threshold = banded
	}
	return threshold
}

// scoreRisk maps the risk metrics onto [0,10]. The bands are relaxed for
// a net-profitable account: moderately elevated drawdown or sizing
// variability on a profitable book reads as acceptable risk appetite,
// while the same metrics on a losing book score lower. The adjustment
// never lifts the extreme-risk band out of its 1-3 range.
func scoreRisk(m models.RiskMetrics, netPnL float64, tradeCount int) float64 {
	if tradeCount == 0 {
		return 0
	}

	score := drawdownWeight*drawdownCurve.scoreFor(m.MaxDrawdownPercentage) +
		largeLossWeight*largeLossCurve.scoreFor(m.LargeLossPercentage) +
		sizeVarWeight*sizeVariabilityCurve.scoreFor(m.QuantityVariability) +
		durationWeight*durationCurve.scoreFor(m.AverageTradeDuration)

	switch {
	case netPnL > 0 && score >= 3.5:
		score += profitAdjustment
	case netPnL < 0 && score < 6:
		score -= profitAdjustment
	}

	return clamp(score, 1, 10)
}

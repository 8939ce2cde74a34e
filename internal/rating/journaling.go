package rating

import (
	"strings"

	"trading-journal/internal/models"
)

// extractJournaling measures record-keeping completeness across ALL
// logged trades, including those excluded from the statistical metrics
// for lacking a usable PnL. Journaling quality is independent of trade
// outcome.
func (e *Engine) extractJournaling(raw []models.Trade) models.JournalingMetrics {
	if len(raw) == 0 {
		return models.JournalingMetrics{}
	}

	var withNotes, withStrategy, withEmotions int
	for _, t := range raw {
		if strings.TrimSpace(t.Notes) != "" {
			withNotes++
		}
		if strings.TrimSpace(t.StrategyID) != "" {
			withStrategy++
		}
		if len(ResolveEmotions(t.EmotionalState)) > 0 {
			withEmotions++
		}
	}

	total := float64(len(raw))
	m := models.JournalingMetrics{
		NotesPercentage:    percent(float64(withNotes), total),
		StrategyPercentage: percent(float64(withStrategy), total),
		EmotionPercentage:  percent(float64(withEmotions), total),
	}
	m.OverallCompleteness = (m.NotesPercentage + m.StrategyPercentage + m.EmotionPercentage) / 3
	return m
}

// scoreJournaling maps the completeness metrics onto [0,10].
func scoreJournaling(m models.JournalingMetrics, loggedCount int) float64 {
	if loggedCount == 0 {
		return 0
	}
	return clamp(journalingCurve.scoreFor(m.OverallCompleteness), 0, 10)
}

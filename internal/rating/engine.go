// Package rating implements the trading performance rating engine.
//
// The engine is a pure computation: it ingests a user's raw trade
// history and produces a single 1-10 performance score decomposed into
// five weighted sub-scores (profitability, risk management, consistency,
// emotional discipline, journaling adherence). Data flows one way
// through the pipeline: raw trades are normalized, each category
// extracts its metrics from the normalized list, band curves map metrics
// to sub-scores, and the weighted aggregator folds the sub-scores into
// the overall rating. The engine holds no state between calls, performs
// no I/O, and is safe for concurrent use.
//
// Malformed domain data never causes a failure: missing PnL, unparseable
// timestamps, wild emotional-state encodings, and an empty trade list
// all have defined fallback behavior.
package rating

import (
	"trading-journal/internal/config"
	"trading-journal/internal/models"
)

// Engine computes VRating results from raw trade records.
type Engine struct {
	cfg config.RatingConfig
}

// NewEngine creates an engine with the given scoring configuration.
func NewEngine(cfg config.RatingConfig) *Engine {
	return &Engine{cfg: cfg}
}

// NewDefaultEngine creates an engine with the default scoring constants.
func NewDefaultEngine() *Engine {
	return NewEngine(config.DefaultRatingConfig())
}

// Rate computes the performance rating for a trade history. It is the
// engine's single entry point. The input is read-only; the returned
// result is a fresh snapshot and is never mutated afterwards.
func (e *Engine) Rate(trades []models.Trade) *models.VRatingResult {
	normalized := Normalize(trades)
	netPnL := 0.0
	for _, t := range normalized {
		netPnL += t.PnL
	}

	metrics := models.CategoryMetrics{
		Profitability:       e.extractProfitability(normalized),
		RiskManagement:      e.extractRisk(normalized),
		Consistency:         e.extractConsistency(normalized),
		EmotionalDiscipline: e.extractEmotions(normalized),
		JournalingAdherence: e.extractJournaling(trades),
	}

	scores := models.CategoryScores{
		Profitability:       scoreProfitability(metrics.Profitability, len(normalized)),
		RiskManagement:      scoreRisk(metrics.RiskManagement, netPnL, len(normalized)),
		Consistency:         scoreConsistency(metrics.Consistency, len(normalized)),
		EmotionalDiscipline: scoreEmotions(metrics.EmotionalDiscipline, netPnL, len(normalized)),
		JournalingAdherence: scoreJournaling(metrics.JournalingAdherence, len(trades)),
	}

	return &models.VRatingResult{
		OverallRating:  e.aggregate(scores),
		CategoryScores: scores,
		Metrics:        metrics,
		TradeCount:     len(normalized),
	}
}

// aggregate combines the five sub-scores into the overall rating using
// the fixed category weights, clamped to [1,10] so a zero-trade input
// yields the defined floor rather than a NaN.
func (e *Engine) aggregate(scores models.CategoryScores) float64 {
	w := e.cfg.Weights
	overall := w.Profitability*scores.Profitability +
		w.RiskManagement*scores.RiskManagement +
		w.Consistency*scores.Consistency +
		w.EmotionalDiscipline*scores.EmotionalDiscipline +
		w.JournalingAdherence*scores.JournalingAdherence
	return clamp(overall, 1, 10)
}

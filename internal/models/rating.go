package models

// ProfitabilityMetrics holds the raw inputs to the profitability score.
type ProfitabilityMetrics struct {
	NetPLPercentage          float64 `json:"net_pl_percentage"`
	WinRate                  float64 `json:"win_rate"`
	PositiveMonthsPercentage float64 `json:"positive_months_percentage"`
}

// RiskMetrics holds the raw inputs to the risk management score.
type RiskMetrics struct {
	MaxDrawdownPercentage float64 `json:"max_drawdown_percentage"`
	LargeLossPercentage   float64 `json:"large_loss_percentage"`
	QuantityVariability   float64 `json:"quantity_variability"`
	AverageTradeDuration  float64 `json:"average_trade_duration"`
}

// ConsistencyMetrics holds the raw inputs to the consistency score.
type ConsistencyMetrics struct {
	PLStdDevPercentage      float64 `json:"pl_std_dev_percentage"`
	LongestLossStreak       int     `json:"longest_loss_streak"`
	MonthlyConsistencyRatio float64 `json:"monthly_consistency_ratio"`
}

// EmotionalMetrics holds the raw inputs to the emotional discipline score.
type EmotionalMetrics struct {
	PositiveEmotionPercentage     float64 `json:"positive_emotion_percentage"`
	NegativeImpactPercentage      float64 `json:"negative_impact_percentage"`
	PositiveEmotionWinCorrelation float64 `json:"positive_emotion_win_correlation"`
	EmotionLoggingCompleteness    float64 `json:"emotion_logging_completeness"`
}

// JournalingMetrics holds the raw inputs to the journaling adherence score.
// Percentages are over all logged trades, including PnL-less ones, since
// journaling quality is independent of trade outcome.
type JournalingMetrics struct {
	NotesPercentage     float64 `json:"notes_percentage"`
	StrategyPercentage  float64 `json:"strategy_percentage"`
	EmotionPercentage   float64 `json:"emotion_percentage"`
	OverallCompleteness float64 `json:"overall_completeness"`
}

// CategoryScores holds the five sub-scores, each in [0,10].
type CategoryScores struct {
	Profitability       float64 `json:"profitability"`
	RiskManagement      float64 `json:"risk_management"`
	Consistency         float64 `json:"consistency"`
	EmotionalDiscipline float64 `json:"emotional_discipline"`
	JournalingAdherence float64 `json:"journaling_adherence"`
}

// CategoryMetrics groups the raw metric bags for display and debugging.
type CategoryMetrics struct {
	Profitability       ProfitabilityMetrics `json:"profitability"`
	RiskManagement      RiskMetrics          `json:"risk_management"`
	Consistency         ConsistencyMetrics   `json:"consistency"`
	EmotionalDiscipline EmotionalMetrics     `json:"emotional_discipline"`
	JournalingAdherence JournalingMetrics    `json:"journaling_adherence"`
}

// VRatingResult is the immutable snapshot produced by a single rating run.
type VRatingResult struct {
	// OverallRating is the weighted sum of the category scores,
	// clamped to [1,10].
	OverallRating  float64         `json:"overall_rating"`
	CategoryScores CategoryScores  `json:"category_scores"`
	Metrics        CategoryMetrics `json:"metrics"`
	// TradeCount is the number of PnL-bearing trades that entered the
	// statistical computations. Journaling metrics also see trades
	// excluded from this count.
	TradeCount int `json:"trade_count"`
}

// StrategyStats summarizes performance per strategy for the breakdown view.
type StrategyStats struct {
	StrategyID string  `json:"strategy_id"`
	TradeCount int     `json:"trade_count"`
	WinRate    float64 `json:"win_rate"`
	NetPnL     float64 `json:"net_pnl"`
}

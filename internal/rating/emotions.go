package rating

import "trading-journal/internal/models"

const (
	positiveEmotionWeight     = 0.35
	negativeEmotionWeight     = 0.25
	emotionCorrelationWeight  = 0.20
	emotionCompletenessWeight = 0.20

	// emotionProfitLift keeps the score from punishing a net-profitable
	// trader with occasional lapses.
	emotionProfitLift = 0.5
)

// positiveEmotions are constructive states associated with disciplined
// execution. Both noun and adjective forms show up in the data.
var positiveEmotions = map[string]struct{}{
	"DISCIPLINE": {}, "DISCIPLINED": {},
	"PATIENCE": {}, "PATIENT": {},
	"CONFIDENCE": {}, "CONFIDENT": {},
	"CALM": {}, "FOCUSED": {}, "NEUTRAL": {},
}

// negativeEmotions are detrimental states.
var negativeEmotions = map[string]struct{}{
	"FOMO": {}, "REVENGE": {}, "TILT": {},
	"FEAR": {}, "GREED": {}, "PANIC": {},
	"ANXIOUS": {}, "ANXIETY": {}, "IMPULSIVE": {},
	"FRUSTRATED": {}, "FRUSTRATION": {},
}

// extractEmotions computes the emotional discipline metrics over
// PnL-bearing trades.
func (e *Engine) extractEmotions(trades []models.NormalizedTrade) models.EmotionalMetrics {
	if len(trades) == 0 {
		return models.EmotionalMetrics{}
	}

	var tagged, positives, negatives int
	var posWins, posTotal, negWins, negTotal int
	for _, t := range trades {
		if t.HasEmotions() {
			tagged++
		}
		pos := hasAny(t.Emotions, positiveEmotions)
		neg := hasAny(t.Emotions, negativeEmotions)
		if pos {
			positives++
			posTotal++
			if t.PnL > 0 {
				posWins++
			}
		}
		if neg {
			negatives++
			negTotal++
			if t.PnL > 0 {
				negWins++
			}
		}
	}

	total := float64(len(trades))
	m := models.EmotionalMetrics{
		PositiveEmotionPercentage:  percent(float64(positives), total),
		NegativeImpactPercentage:   percent(float64(negatives), total),
		EmotionLoggingCompleteness: percent(float64(tagged), total),
	}

	// Win rate on positively-tagged trades minus win rate on
	// negatively-tagged ones; zero when either side is unobserved.
	if posTotal > 0 && negTotal > 0 {
		m.PositiveEmotionWinCorrelation = percent(float64(posWins), float64(posTotal)) -
			percent(float64(negWins), float64(negTotal))
	}

	return m
}

// scoreEmotions maps the emotional metrics onto [0,10].
func scoreEmotions(m models.EmotionalMetrics, netPnL float64, tradeCount int) float64 {
	if tradeCount == 0 {
		return 0
	}

	score := positiveEmotionWeight*positiveEmotionCurve.scoreFor(m.PositiveEmotionPercentage) +
		negativeEmotionWeight*negativeEmotionCurve.scoreFor(m.NegativeImpactPercentage) +
		emotionCorrelationWeight*emotionCorrelationCurve.scoreFor(m.PositiveEmotionWinCorrelation) +
		emotionCompletenessWeight*emotionCompletenessCurve.scoreFor(m.EmotionLoggingCompleteness)

	if netPnL > 0 {
		score += emotionProfitLift
	}

	return clamp(score, 0, 10)
}

func hasAny(tags []string, set map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := set[tag]; ok {
			return true
		}
	}
	return false
}

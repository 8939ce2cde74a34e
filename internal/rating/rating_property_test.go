package rating

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"trading-journal/internal/config"
	"trading-journal/internal/models"
)

// tradeGen generates trade records across the wild-data shapes the
// normalizer has to absorb: PnL as number, numeric string, garbage, or
// missing; emotional state in every known physical encoding.
func tradeGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Identifier(),
		gen.Float64Range(-500, 500),
		gen.IntRange(0, 3), // pnl shape
		gen.IntRange(0, 4), // emotion shape
		gen.IntRange(1, 12),
		gen.IntRange(1, 28),
		gen.Float64Range(1, 500),
		gen.Bool(),
	).Map(func(values []interface{}) models.Trade {
		id := values[0].(string)
		pnl := values[1].(float64)
		pnlShape := values[2].(int)
		emotionShape := values[3].(int)
		month := values[4].(int)
		day := values[5].(int)
		qty := values[6].(float64)
		hasTimes := values[7].(bool)

		t := models.Trade{
			ID:         id,
			Symbol:     "SYM",
			Quantity:   qty,
			EntryPrice: 100,
			TradeDate:  fmt.Sprintf("2025-%02d-%02d", month, day),
			StrategyID: "prop",
		}

		switch pnlShape {
		case 0:
			t.PnL = pnl
		case 1:
			t.PnL = fmt.Sprintf("%.2f", pnl)
		case 2:
			t.PnL = "definitely not a number"
		case 3:
			// missing
		}

		switch emotionShape {
		case 0:
			// missing
		case 1:
			t.EmotionalState = "FOMO, CONFIDENT"
		case 2:
			t.EmotionalState = []any{"FOMO", "TILT"}
		case 3:
			t.EmotionalState = map[string]any{"primary_emotion": "FEAR"}
		case 4:
			t.EmotionalState = `["DISCIPLINED"]`
		}

		if hasTimes {
			t.EntryTime = "09:15"
			t.ExitTime = "15:30"
		}

		return t
	})
}

func tradeSliceGen(maxLen int) gopter.Gen {
	return gen.SliceOfN(maxLen, tradeGen())
}

// TestProperty_OverallRatingIsClampedWeightedSum checks the core
// aggregation invariant for arbitrary trade histories.
func TestProperty_OverallRatingIsClampedWeightedSum(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("overall equals clamped weighted sum", prop.ForAll(
		func(trades []models.Trade) bool {
			engine := NewDefaultEngine()
			result := engine.Rate(trades)

			w := config.DefaultWeights()
			s := result.CategoryScores
			expected := clamp(
				w.Profitability*s.Profitability+
					w.RiskManagement*s.RiskManagement+
					w.Consistency*s.Consistency+
					w.EmotionalDiscipline*s.EmotionalDiscipline+
					w.JournalingAdherence*s.JournalingAdherence,
				1, 10)

			return math.Abs(result.OverallRating-expected) <= 0.01
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

// TestProperty_CategoryScoresWithinBounds checks that every sub-score
// stays in [0,10] for arbitrary trade histories.
func TestProperty_CategoryScoresWithinBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("category scores within [0,10]", prop.ForAll(
		func(trades []models.Trade) bool {
			result := NewDefaultEngine().Rate(trades)
			for _, score := range []float64{
				result.CategoryScores.Profitability,
				result.CategoryScores.RiskManagement,
				result.CategoryScores.Consistency,
				result.CategoryScores.EmotionalDiscipline,
				result.CategoryScores.JournalingAdherence,
			} {
				if score < 0 || score > 10 || math.IsNaN(score) {
					return false
				}
			}
			return result.TradeCount <= len(trades)
		},
		tradeSliceGen(50),
	))

	properties.TestingRun(t)
}

// TestProperty_EmotionResolutionNeverFails checks that arbitrary strings
// always resolve to a canonical (possibly empty) tag list.
func TestProperty_EmotionResolutionNeverFails(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("arbitrary strings resolve to canonical tags", prop.ForAll(
		func(raw string) bool {
			for _, tag := range ResolveEmotions(raw) {
				if tag == "" {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestProperty_CustomWeightsProduceValidRating checks the aggregator
// with arbitrary normalized weights.
func TestProperty_CustomWeightsProduceValidRating(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())
	parameters.MaxShrinkCount = 0

	properties := gopter.NewProperties(parameters)

	properties.Property("custom weights keep the rating in [1,10]", prop.ForAll(
		func(trades []models.Trade, w1, w2, w3, w4, w5 float64) bool {
			total := w1 + w2 + w3 + w4 + w5
			if total == 0 {
				w1, total = 1, 1
			}

			cfg := config.DefaultRatingConfig()
			cfg.Weights = config.CategoryWeights{
				Profitability:       w1 / total,
				RiskManagement:      w2 / total,
				Consistency:         w3 / total,
				EmotionalDiscipline: w4 / total,
				JournalingAdherence: w5 / total,
			}

			result := NewEngine(cfg).Rate(trades)
			return result.OverallRating >= 1 && result.OverallRating <= 10
		},
		tradeSliceGen(30),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
		gen.Float64Range(0, 1),
	))

	properties.TestingRun(t)
}

package rating

// anchor pins a metric value to a sub-score on a banding curve.
type anchor struct {
	at    float64
	score float64
}

// curve is a monotonic piecewise-linear scoring band. Anchors must be
// ordered by ascending metric value; values outside the anchored range
// take the score of the nearest end anchor, so a curve never produces a
// score discontinuity at a band boundary.
type curve []anchor

// scoreFor interpolates the sub-score for a metric value.
func (c curve) scoreFor(v float64) float64 {
	if len(c) == 0 {
		return 0
	}
	if v <= c[0].at {
		return c[0].score
	}
	last := c[len(c)-1]
	if v >= last.at {
		return last.score
	}
	for i := 1; i < len(c); i++ {
		if v <= c[i].at {
			lo, hi := c[i-1], c[i]
			frac := (v - lo.at) / (hi.at - lo.at)
			return lo.score + frac*(hi.score-lo.score)
		}
	}
	return last.score
}

// Band anchors. Named bands for readability: roughly 8-10 excellent,
// 6-7.9 good, 4-5.9 moderate, below poor. Calibrated against the
// behavioral contract in the scoring documentation.
var (
	// Profitability: net return percent on the capital base.
	netReturnCurve = curve{
		{-50, 0}, {-10, 1}, {0, 2.5}, {5, 4}, {15, 6}, {30, 8}, {50, 9.6}, {100, 10},
	}
	// Profitability: percentage of winning trades.
	winRateCurve = curve{
		{0, 0}, {30, 2}, {40, 3.5}, {50, 5}, {60, 7}, {70, 9}, {85, 9.7}, {100, 10},
	}
	// Profitability: percentage of net-positive calendar months.
	positiveMonthsCurve = curve{
		{0, 0}, {25, 3}, {50, 6}, {75, 8.5}, {100, 10},
	}

	// Risk: maximum drawdown percent, lower is better.
	drawdownCurve = curve{
		{0, 10}, {5, 9}, {10, 8}, {20, 5.5}, {30, 3}, {50, 1.5}, {100, 1},
	}
	// Risk: percentage of trades breaching the large-loss threshold.
	largeLossCurve = curve{
		{0, 10}, {5, 9}, {10, 8}, {25, 5}, {50, 2.5}, {100, 1},
	}
	// Risk: coefficient of variation of position size, lower is better.
	sizeVariabilityCurve = curve{
		{0, 10}, {15, 9}, {30, 8}, {50, 5.5}, {70, 3}, {100, 2}, {200, 1},
	}
	// Risk: average holding duration in hours; very short holds read as
	// impulsive scalping.
	durationCurve = curve{
		{0, 2}, {1, 3}, {6, 6}, {12, 8}, {24, 9}, {72, 10},
	}

	// Consistency: per-trade PnL volatility percent, lower is better.
	plVolatilityCurve = curve{
		{0, 10}, {5, 8}, {10, 7}, {15, 6}, {20, 4}, {40, 2.5}, {100, 2},
	}
	// Consistency: longest consecutive losing run.
	lossStreakCurve = curve{
		{0, 10}, {3, 8}, {5, 7}, {7, 6}, {10, 4}, {15, 2.5}, {30, 2},
	}
	// Consistency: fraction of active months that closed net positive.
	monthlyRatioCurve = curve{
		{0, 2}, {0.2, 3.5}, {0.5, 7}, {0.75, 9}, {1, 10},
	}

	// Emotional discipline.
	positiveEmotionCurve = curve{
		{0, 3}, {25, 5}, {50, 7}, {75, 9}, {100, 10},
	}
	negativeEmotionCurve = curve{
		{0, 10}, {10, 8}, {25, 6}, {50, 4}, {75, 2.5}, {100, 2},
	}
	emotionCorrelationCurve = curve{
		{-100, 2}, {-20, 4}, {0, 6}, {20, 8}, {50, 9.5}, {100, 10},
	}
	emotionCompletenessCurve = curve{
		{0, 2}, {50, 6}, {100, 10},
	}

	// Journaling adherence: overall record completeness percent.
	journalingCurve = curve{
		{0, 0.5}, {25, 3}, {50, 5.5}, {75, 8}, {90, 9}, {100, 10},
	}
)

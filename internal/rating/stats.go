package rating

import "math"

// sum calculates the sum of a slice of float64.
func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// mean calculates the arithmetic mean of a slice of float64.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

// stdDev calculates the population standard deviation of a slice of float64.
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var variance float64
	for _, v := range values {
		diff := v - m
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// coefficientOfVariation returns stddev/mean as a percentage.
// A zero or negative mean yields 0 rather than a blow-up.
func coefficientOfVariation(values []float64) float64 {
	m := mean(values)
	if m <= 0 {
		return 0
	}
	return stdDev(values) / m * 100
}

// maxDrawdownPercent walks a cumulative-PnL equity curve built from the
// given per-trade PnL series (in chronological order) and returns the
// largest peak-to-trough decline as a percentage of the peak, capped at
// 100. A series that never declines from a positive peak yields 0.
// An account that goes underwater without ever reaching a positive peak
// has lost everything it put at risk and reports the 100 cap.
func maxDrawdownPercent(pnls []float64) float64 {
	var equity, peak, maxDD float64
	sawPeak := false
	for _, p := range pnls {
		equity += p
		if equity > peak {
			peak = equity
			sawPeak = true
		}
		if peak <= 0 {
			continue
		}
		dd := (peak - equity) / peak * 100
		if dd > maxDD {
			maxDD = dd
		}
	}
	if !sawPeak && equity < 0 {
		return 100
	}
	return math.Min(maxDD, 100)
}

// longestLossStreak returns the longest run of consecutive values below
// zero in the series.
func longestLossStreak(pnls []float64) int {
	var longest, current int
	for _, p := range pnls {
		if p < 0 {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// clamp restricts a value to the given range.
func clamp(value, minVal, maxVal float64) float64 {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

// percent returns part/total*100 with a zero-total guard.
func percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

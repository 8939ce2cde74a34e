package rating

import (
	"sort"

	"trading-journal/internal/models"
)

// StrategyBreakdown groups PnL-bearing trades by strategy and summarizes
// each group's performance. Trades without a resolved strategy fall into
// the "(untagged)" group. Groups are ordered by net PnL, best first.
func (e *Engine) StrategyBreakdown(trades []models.Trade) []models.StrategyStats {
	normalized := Normalize(trades)
	if len(normalized) == 0 {
		return nil
	}

	type bucket struct {
		count int
		wins  int
		net   float64
	}
	buckets := make(map[string]*bucket)
	for _, t := range normalized {
		key := t.StrategyID
		if key == "" {
			key = "(untagged)"
		}
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		if t.PnL > 0 {
			b.wins++
		}
		b.net += t.PnL
	}

	stats := make([]models.StrategyStats, 0, len(buckets))
	for id, b := range buckets {
		stats = append(stats, models.StrategyStats{
			StrategyID: id,
			TradeCount: b.count,
			WinRate:    percent(float64(b.wins), float64(b.count)),
			NetPnL:     b.net,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].NetPnL != stats[j].NetPnL {
			return stats[i].NetPnL > stats[j].NetPnL
		}
		return stats[i].StrategyID < stats[j].StrategyID
	})

	return stats
}

package models

import "time"

// Side represents the direction of a trade.
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Trade represents a raw trade record as logged in the journal.
//
// Records come from historical exports and hand-entered forms, so the
// optional fields are loosely typed: PnL may arrive as a number or a
// numeric string (or be missing entirely), and EmotionalState appears in
// the wild as a list of tags, a single tag, a comma-separated string, or
// a JSON object with primary/secondary emotion fields. The rating
// normalizer owns coercing both into canonical form; everything
// downstream consumes NormalizedTrade instead.
type Trade struct {
	ID         string  `json:"id"`
	Symbol     string  `json:"symbol"`
	Side       Side    `json:"side"`
	Quantity   float64 `json:"quantity"`
	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price,omitempty"`

	// PnL is the realized profit or loss in account currency.
	// Accepted shapes: float64, int, json.Number, numeric string, nil.
	PnL any `json:"pnl,omitempty"`

	TradeDate string `json:"trade_date"`
	EntryTime string `json:"entry_time,omitempty"`
	ExitTime  string `json:"exit_time,omitempty"`

	// EmotionalState is the polymorphic emotion-tag field.
	// Accepted shapes: []string, []any, string (plain, comma-separated,
	// or embedded JSON), map[string]any, nil.
	EmotionalState any `json:"emotional_state,omitempty"`

	StrategyID string `json:"strategy_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Market     string `json:"market,omitempty"`
}

// NormalizedTrade is a Trade whose loose fields have been resolved:
// PnL is guaranteed numeric, Emotions is a canonical upper-cased tag list
// (possibly empty), and Date carries the parsed trade date when the raw
// record had a parseable one.
type NormalizedTrade struct {
	ID         string
	Symbol     string
	Side       Side
	Quantity   float64
	EntryPrice float64
	ExitPrice  float64
	PnL        float64
	Date       time.Time
	HasDate    bool
	Emotions   []string
	// DurationHours is nil when entry or exit time was missing or
	// unparseable; such trades are excluded from duration aggregates.
	DurationHours *float64
	StrategyID    string
	Notes         string
	Market        string
}

// HasEmotions reports whether at least one emotion tag was resolved.
func (t *NormalizedTrade) HasEmotions() bool {
	return len(t.Emotions) > 0
}

// MonthKey returns the calendar-month bucket of the trade date in
// "2006-01" form, or "" when the date is unknown.
func (t *NormalizedTrade) MonthKey() string {
	if !t.HasDate {
		return ""
	}
	return t.Date.Format("2006-01")
}

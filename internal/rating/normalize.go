package rating

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	apperrors "trading-journal/internal/errors"
	"trading-journal/internal/models"
)

// dateLayouts are the trade-date formats seen in historical exports.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// timeLayouts are the time-of-day formats accepted for entry/exit times.
var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// Normalize validates and canonicalizes raw trade records.
//
// Trades whose PnL is missing or not coercible to a finite number are
// dropped; they still count toward journaling adherence, which receives
// the raw trade list separately. The result is sorted chronologically
// (unknown dates keep their input position at the front) so drawdown and
// streak computations see trades in order.
func Normalize(trades []models.Trade) []models.NormalizedTrade {
	out := make([]models.NormalizedTrade, 0, len(trades))
	for _, t := range trades {
		pnl, ok := coercePnL(t.PnL)
		if !ok {
			continue
		}

		nt := models.NormalizedTrade{
			ID:         t.ID,
			Symbol:     t.Symbol,
			Side:       normalizeSide(t.Side),
			Quantity:   t.Quantity,
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			PnL:        pnl,
			Emotions:   ResolveEmotions(t.EmotionalState),
			StrategyID: strings.TrimSpace(t.StrategyID),
			Notes:      strings.TrimSpace(t.Notes),
			Market:     t.Market,
		}

		if d, ok := parseDate(t.TradeDate); ok {
			nt.Date = d
			nt.HasDate = true
		}
		if hours, ok := deriveDuration(t.EntryTime, t.ExitTime); ok {
			nt.DurationHours = &hours
		}

		out = append(out, nt)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].HasDate != out[j].HasDate {
			return !out[i].HasDate
		}
		return out[i].Date.Before(out[j].Date)
	})

	return out
}

// Issues reports which records Normalize will exclude from the
// statistics and why, one TradeDataError per excluded record.
func Issues(trades []models.Trade) []error {
	var issues []error
	for _, t := range trades {
		if _, ok := coercePnL(t.PnL); !ok {
			issues = append(issues, apperrors.NewTradeDataError(
				t.ID, "pnl", "not coercible to a finite number", nil))
		}
	}
	return issues
}

// coercePnL resolves the loosely-typed PnL field to a finite float64.
func coercePnL(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ResolveEmotions flattens the polymorphic emotional-state field into a
// canonical list of upper-cased tags. The shapes are tried in a fixed
// order: native string list, JSON array, JSON object (string-valued
// fields become tags), comma-separated string, and finally the whole
// string as a single tag. Every input, including nil and whitespace,
// resolves to a possibly-empty list; resolution never fails.
func ResolveEmotions(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return canonicalTags(x)
	case []any:
		tags := make([]string, 0, len(x))
		for _, item := range x {
			if s, ok := item.(string); ok {
				tags = append(tags, s)
			}
		}
		return canonicalTags(tags)
	case map[string]any:
		return canonicalTags(objectTags(x))
	case map[string]string:
		tags := make([]string, 0, len(x))
		for _, s := range x {
			tags = append(tags, s)
		}
		sort.Strings(tags)
		return canonicalTags(tags)
	case string:
		return resolveEmotionString(x)
	default:
		return nil
	}
}

func resolveEmotionString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	// The string may itself carry JSON from older exports.
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		var arr []any
		if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
			return ResolveEmotions(arr)
		}
		var obj map[string]any
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			return ResolveEmotions(obj)
		}
	}

	if strings.Contains(trimmed, ",") {
		return canonicalTags(strings.Split(trimmed, ","))
	}
	return canonicalTags([]string{trimmed})
}

// objectTags extracts every string-valued field from an object form such
// as {"primary_emotion": "FOMO", "secondary_emotion": "FEAR"}.
// Keys are sorted so the tag order is deterministic.
func objectTags(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags := make([]string, 0, len(obj))
	for _, k := range keys {
		if s, ok := obj[k].(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// canonicalTags trims, upper-cases, and de-duplicates tags, dropping
// empties.
func canonicalTags(raw []string) []string {
	var tags []string
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		tag := strings.ToUpper(strings.TrimSpace(r))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func normalizeSide(s models.Side) models.Side {
	switch strings.ToUpper(strings.TrimSpace(string(s))) {
	case "SHORT", "SELL", "S":
		return models.SideShort
	default:
		return models.SideLong
	}
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// deriveDuration computes the holding duration in hours from entry and
// exit time-of-day values. An exit numerically earlier than the entry is
// treated as spanning midnight and gains 24 hours.
func deriveDuration(entry, exit string) (float64, bool) {
	entryT, ok := parseTimeOfDay(entry)
	if !ok {
		return 0, false
	}
	exitT, ok := parseTimeOfDay(exit)
	if !ok {
		return 0, false
	}

	hours := exitT.Sub(entryT).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours, true
}

func parseTimeOfDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

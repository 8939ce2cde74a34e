package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trading-journal/internal/errors"
	"trading-journal/internal/models"
)

func TestResolveEmotions(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "native string list",
			input: []string{"FOMO", "Confident"},
			want:  []string{"FOMO", "CONFIDENT"},
		},
		{
			name:  "decoded JSON array",
			input: []any{"FOMO", "CONFIDENT"},
			want:  []string{"FOMO", "CONFIDENT"},
		},
		{
			name:  "plain string",
			input: "FOMO",
			want:  []string{"FOMO"},
		},
		{
			name:  "comma separated string",
			input: " fomo , revenge ,",
			want:  []string{"FOMO", "REVENGE"},
		},
		{
			name:  "object form",
			input: map[string]any{"primary_emotion": "FOMO", "secondary_emotion": "fear"},
			want:  []string{"FOMO", "FEAR"},
		},
		{
			name:  "object with non-string fields",
			input: map[string]any{"primary_emotion": "TILT", "intensity": 7.0},
			want:  []string{"TILT"},
		},
		{
			name:  "embedded JSON array string",
			input: `["FOMO","CONFIDENT"]`,
			want:  []string{"FOMO", "CONFIDENT"},
		},
		{
			name:  "embedded JSON object string",
			input: `{"primary_emotion":"FOMO"}`,
			want:  []string{"FOMO"},
		},
		{
			name:  "malformed JSON falls back to single tag",
			input: "[not json",
			want:  []string{"[NOT JSON"},
		},
		{
			name:  "duplicates collapse",
			input: "FOMO,fomo, FOMO ",
			want:  []string{"FOMO"},
		},
		{
			name:  "nil is empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "whitespace only is empty",
			input: "   ",
			want:  nil,
		},
		{
			name:  "unsupported shape is empty",
			input: 42.0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveEmotions(tt.input))
		})
	}
}

func TestNormalizePnLCoercion(t *testing.T) {
	trades := []models.Trade{
		{ID: "t1", PnL: 100.0},
		{ID: "t2", PnL: "250.5"},
		{ID: "t3", PnL: nil},
		{ID: "t4", PnL: "not a number"},
		{ID: "t5", PnL: -40},
		{ID: "t6"},
	}

	normalized := Normalize(trades)
	require.Len(t, normalized, 3)

	byID := map[string]float64{}
	for _, nt := range normalized {
		byID[nt.ID] = nt.PnL
	}
	assert.Equal(t, 100.0, byID["t1"])
	assert.Equal(t, 250.5, byID["t2"])
	assert.Equal(t, -40.0, byID["t5"])
}

func TestIssuesReportsExcludedRecords(t *testing.T) {
	trades := []models.Trade{
		{ID: "ok", PnL: 100.0},
		{ID: "missing"},
		{ID: "garbage", PnL: "n/a"},
	}

	issues := Issues(trades)
	require.Len(t, issues, 2)

	ids := make([]string, 0, len(issues))
	for _, issue := range issues {
		var tde *apperrors.TradeDataError
		require.ErrorAs(t, issue, &tde)
		assert.Equal(t, "pnl", tde.Field)
		ids = append(ids, tde.TradeID)
	}
	assert.Equal(t, []string{"missing", "garbage"}, ids)
}

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		exit      string
		wantHours float64
		wantNil   bool
	}{
		{name: "intraday", entry: "09:30", exit: "15:45", wantHours: 6.25},
		{name: "with seconds", entry: "09:30:00", exit: "10:00:00", wantHours: 0.5},
		{name: "overnight wraps midnight", entry: "22:00", exit: "02:00", wantHours: 4},
		{name: "missing exit", entry: "09:30", wantNil: true},
		{name: "missing entry", exit: "15:45", wantNil: true},
		{name: "unparseable", entry: "morning", exit: "15:45", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := Normalize([]models.Trade{{
				ID:        "t1",
				PnL:       10.0,
				EntryTime: tt.entry,
				ExitTime:  tt.exit,
			}})
			require.Len(t, normalized, 1)
			if tt.wantNil {
				assert.Nil(t, normalized[0].DurationHours)
				return
			}
			require.NotNil(t, normalized[0].DurationHours)
			assert.InDelta(t, tt.wantHours, *normalized[0].DurationHours, 1e-9)
		})
	}
}

func TestNormalizeSortsChronologically(t *testing.T) {
	trades := []models.Trade{
		{ID: "feb", PnL: 1.0, TradeDate: "2025-02-10"},
		{ID: "jan", PnL: 1.0, TradeDate: "2025-01-05"},
		{ID: "mar", PnL: 1.0, TradeDate: "2025-03-01T10:00:00Z"},
	}

	normalized := Normalize(trades)
	require.Len(t, normalized, 3)
	assert.Equal(t, "jan", normalized[0].ID)
	assert.Equal(t, "feb", normalized[1].ID)
	assert.Equal(t, "mar", normalized[2].ID)
	assert.Equal(t, "2025-01", normalized[0].MonthKey())
}

func TestNormalizeSide(t *testing.T) {
	trades := []models.Trade{
		{ID: "a", PnL: 1.0, Side: "short"},
		{ID: "b", PnL: 1.0, Side: "SELL"},
		{ID: "c", PnL: 1.0, Side: "long"},
		{ID: "d", PnL: 1.0},
	}
	normalized := Normalize(trades)
	require.Len(t, normalized, 4)
	for _, nt := range normalized {
		switch nt.ID {
		case "a", "b":
			assert.Equal(t, models.SideShort, nt.Side)
		default:
			assert.Equal(t, models.SideLong, nt.Side)
		}
	}
}

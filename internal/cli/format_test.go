package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPnL(t *testing.T) {
	assert.Equal(t, "+125.50", FormatPnL(125.5))
	assert.Equal(t, "-40.00", FormatPnL(-40))
	assert.Equal(t, "0.00", FormatPnL(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+12.30%", FormatPercent(12.3))
	assert.Equal(t, "-5.00%", FormatPercent(-5))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "██████████", ScoreBar(10))
	assert.Equal(t, "░░░░░░░░░░", ScoreBar(0))
	assert.Equal(t, "█████░░░░░", ScoreBar(5.2))
	assert.Equal(t, "░░░░░░░░░░", ScoreBar(-3), "clamped below")
	assert.Equal(t, "██████████", ScoreBar(14), "clamped above")
}

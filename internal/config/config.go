// Package config provides configuration management for the trading journal.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "trading-journal/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Rating RatingConfig `mapstructure:"rating"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
}

// RatingConfig holds the scoring constants for the rating engine.
// These are named configuration values rather than literals scattered
// through the scorer, so band calibration can be tested in isolation.
type RatingConfig struct {
	// StartingCapital is the capital base used for net-P&L and
	// volatility percentages. When zero, the engine falls back to the
	// total entry notional of the trade set.
	StartingCapital float64 `mapstructure:"starting_capital"`

	// LargeLossFloor is the minimum absolute loss, in account currency,
	// that can ever be classified as a large loss.
	LargeLossFloor float64 `mapstructure:"large_loss_floor"`

	// LargeLossMultiple scales the mean loss magnitude of the trade set
	// to produce the large-loss threshold. The effective threshold is
	// max(LargeLossFloor, LargeLossMultiple * mean loss,
	// mean loss + loss stddev), so losses within one standard deviation
	// of the mean are never flagged.
	LargeLossMultiple float64 `mapstructure:"large_loss_multiple"`

	Weights CategoryWeights `mapstructure:"weights"`
}

// CategoryWeights defines the contribution of each category to the
// overall rating. The weights must sum to 1.0.
type CategoryWeights struct {
	Profitability       float64 `mapstructure:"profitability"`
	RiskManagement      float64 `mapstructure:"risk_management"`
	Consistency         float64 `mapstructure:"consistency"`
	EmotionalDiscipline float64 `mapstructure:"emotional_discipline"`
	JournalingAdherence float64 `mapstructure:"journaling_adherence"`
}

// Sum returns the total of the five weights.
func (w CategoryWeights) Sum() float64 {
	return w.Profitability + w.RiskManagement + w.Consistency +
		w.EmotionalDiscipline + w.JournalingAdherence
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// UIConfig holds output-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// DefaultRatingConfig returns the default scoring constants.
func DefaultRatingConfig() RatingConfig {
	return RatingConfig{
		StartingCapital:   0, // derive from entry notionals
		LargeLossFloor:    50,
		LargeLossMultiple: 1.5,
		Weights:           DefaultWeights(),
	}
}

// DefaultWeights returns the fixed category weights.
func DefaultWeights() CategoryWeights {
	return CategoryWeights{
		Profitability:       0.30,
		RiskManagement:      0.25,
		Consistency:         0.20,
		EmotionalDiscipline: 0.15,
		JournalingAdherence: 0.10,
	}
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/trading-journal"
	}
	return filepath.Join(home, ".config", "trading-journal")
}

// Default returns the full default configuration.
func Default() *Config {
	return &Config{
		Rating: DefaultRatingConfig(),
		Log: LogConfig{
			Level:      "info",
			Console:    true,
			File:       false,
			FilePath:   filepath.Join(DefaultConfigDir(), "logs", "journal.log"),
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     30,
		},
		UI: UIConfig{
			ColorEnabled: true,
			DateFormat:   "2006-01-02",
		},
	}
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config file is not an error; defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConfigInvalid, err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("rating.starting_capital", def.Rating.StartingCapital)
	v.SetDefault("rating.large_loss_floor", def.Rating.LargeLossFloor)
	v.SetDefault("rating.large_loss_multiple", def.Rating.LargeLossMultiple)
	v.SetDefault("rating.weights.profitability", def.Rating.Weights.Profitability)
	v.SetDefault("rating.weights.risk_management", def.Rating.Weights.RiskManagement)
	v.SetDefault("rating.weights.consistency", def.Rating.Weights.Consistency)
	v.SetDefault("rating.weights.emotional_discipline", def.Rating.Weights.EmotionalDiscipline)
	v.SetDefault("rating.weights.journaling_adherence", def.Rating.Weights.JournalingAdherence)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.file_path", def.Log.FilePath)
	v.SetDefault("log.max_size", def.Log.MaxSize)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age", def.Log.MaxAge)
	v.SetDefault("ui.color_enabled", def.UI.ColorEnabled)
	v.SetDefault("ui.date_format", def.UI.DateFormat)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	r := c.Rating
	if r.StartingCapital < 0 {
		return apperrors.NewValidationError("rating.starting_capital", r.StartingCapital, "must be non-negative")
	}
	if r.LargeLossFloor < 0 {
		return apperrors.NewValidationError("rating.large_loss_floor", r.LargeLossFloor, "must be non-negative")
	}
	if r.LargeLossMultiple < 0 {
		return apperrors.NewValidationError("rating.large_loss_multiple", r.LargeLossMultiple, "must be non-negative")
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"rating.weights.profitability", r.Weights.Profitability},
		{"rating.weights.risk_management", r.Weights.RiskManagement},
		{"rating.weights.consistency", r.Weights.Consistency},
		{"rating.weights.emotional_discipline", r.Weights.EmotionalDiscipline},
		{"rating.weights.journaling_adherence", r.Weights.JournalingAdherence},
	} {
		if w.value < 0 || w.value > 1 {
			return apperrors.NewValidationError(w.name, w.value, "must be in [0,1]")
		}
	}
	if diff := math.Abs(r.Weights.Sum() - 1.0); diff > 1e-9 {
		return apperrors.NewValidationError("rating.weights", r.Weights.Sum(), "weights must sum to 1.0")
	}
	return nil
}

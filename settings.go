package sm2

import (
	"fmt"
	"math"
	"time"
)

// MaximumEase is the hard ceiling on ease, independent of Settings.
const MaximumEase = 500

// IntervalLimit is the longest interval, in days, whose due date a
// time.Duration can still represent.
const IntervalLimit = int(math.MaxInt64 / int64(24*time.Hour))

// Settings tunes the scheduling algorithm. A Settings value is immutable
// once handed to a Scheduler; replace it with Scheduler.UpdateSettings.
type Settings struct {
	BaseEase        int     `json:"base_ease" yaml:"base_ease"`               // percent, e.g. 250
	EasyBonus       float64 `json:"easy_bonus" yaml:"easy_bonus"`             // >= 1
	HardPenalty     float64 `json:"hard_penalty" yaml:"hard_penalty"`         // (0, 1]
	MinimumEase     int     `json:"minimum_ease" yaml:"minimum_ease"`         // percent
	MaximumInterval int     `json:"maximum_interval" yaml:"maximum_interval"` // days
	InitialInterval int     `json:"initial_interval" yaml:"initial_interval"` // days
	LoadBalance     bool    `json:"load_balance" yaml:"load_balance"`
	MaxFuzzingDays  int     `json:"max_fuzzing_days" yaml:"max_fuzzing_days"`
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		BaseEase:        250,
		EasyBonus:       1.3,
		HardPenalty:     0.5,
		MinimumEase:     130,
		MaximumInterval: 36500,
		InitialInterval: 1,
		LoadBalance:     true,
		MaxFuzzingDays:  7,
	}
}

// Validate checks that every knob is inside its domain.
func (s Settings) Validate() error {
	switch {
	case s.MinimumEase < 1:
		return fmt.Errorf("%w: minimum ease %d must be positive", ErrInvalidSettings, s.MinimumEase)
	case s.BaseEase < s.MinimumEase || s.BaseEase > MaximumEase:
		return fmt.Errorf("%w: base ease %d, bounds [%d, %d]",
			ErrInvalidSettings, s.BaseEase, s.MinimumEase, MaximumEase)
	case s.EasyBonus < 1:
		return fmt.Errorf("%w: easy bonus %f must be >= 1", ErrInvalidSettings, s.EasyBonus)
	case s.HardPenalty <= 0 || s.HardPenalty > 1:
		return fmt.Errorf("%w: hard penalty %f, bounds (0, 1]", ErrInvalidSettings, s.HardPenalty)
	case s.MaximumInterval < 1 || s.MaximumInterval > IntervalLimit:
		return fmt.Errorf("%w: maximum interval %d, bounds [1, %d]",
			ErrInvalidSettings, s.MaximumInterval, IntervalLimit)
	case s.InitialInterval < 1 || s.InitialInterval > s.MaximumInterval:
		return fmt.Errorf("%w: initial interval %d, bounds [1, %d]",
			ErrInvalidSettings, s.InitialInterval, s.MaximumInterval)
	case s.MaxFuzzingDays < 0:
		return fmt.Errorf("%w: max fuzzing days %d must not be negative", ErrInvalidSettings, s.MaxFuzzingDays)
	}
	return nil
}

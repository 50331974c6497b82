package simulator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/sky-flux/sm2"
)

// ErrInvalidConfig is returned for negative card or day counts.
var ErrInvalidConfig = errors.New("simulator: invalid config")

// Config configures a simulation.
// Zero values are replaced with sensible defaults.
type Config struct {
	Cards         int           `json:"cards" yaml:"cards"`                 // default 100
	Days          int           `json:"days" yaml:"days"`                   // default 365
	NewPerDay     int           `json:"new_per_day" yaml:"new_per_day"`     // default 0: whole deck on day 0
	Start         time.Time     `json:"start" yaml:"start,omitempty"`       // default 2025-01-01 09:00 UTC
	Seed          int64         `json:"seed" yaml:"seed"`                   // default 42
	Probabilities Probabilities `json:"probabilities" yaml:"probabilities"` // zero → DefaultProbabilities
}

// Result is the outcome of one simulation run.
type Result struct {
	Reviews []int          `json:"reviews"` // reviews performed on each simulated day
	Total   int            `json:"total"`
	Peak    int            `json:"peak"`
	PeakDay int            `json:"peak_day"`
	Due     map[string]int `json:"due"` // scheduled due dates, keyed YYYY-MM-DD
	Stats   sm2.Stats      `json:"stats"`
	Cards   []sm2.Card     `json:"cards"`
}

// Simulator replays a synthetic deck through an sm2 Scheduler.
type Simulator struct {
	cards     int
	days      int
	newPerDay int
	start     time.Time
	seed      int64
	probs     Probabilities
}

// NewSimulator creates a Simulator with the given config.
func NewSimulator(cfg Config) (*Simulator, error) {
	if cfg.Cards < 0 || cfg.Days < 0 || cfg.NewPerDay < 0 {
		return nil, ErrInvalidConfig
	}
	s := &Simulator{
		cards:     cfg.Cards,
		days:      cfg.Days,
		newPerDay: cfg.NewPerDay,
		start:     cfg.Start,
		seed:      cfg.Seed,
		probs:     cfg.Probabilities,
	}
	if s.cards == 0 {
		s.cards = 100
	}
	if s.days == 0 {
		s.days = 365
	}
	if s.start.IsZero() {
		s.start = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	}
	if s.seed == 0 {
		s.seed = 42
	}
	if s.probs == (Probabilities{}) {
		s.probs = DefaultProbabilities
	}
	probs, err := s.probs.normalize()
	if err != nil {
		return nil, err
	}
	s.probs = probs
	return s, nil
}

// Run simulates the deck under settings. Every day at the start time of
// day, each due card is answered and rescheduled. The context is checked
// once per simulated day.
func (s *Simulator) Run(ctx context.Context, settings sm2.Settings) (Result, error) {
	sched, err := sm2.NewScheduler(settings)
	if err != nil {
		return Result{}, err
	}

	rng := rand.New(rand.NewSource(s.seed))
	cards := make([]sm2.Card, 0, s.cards)
	res := Result{Reviews: make([]int, s.days)}

	for day := 0; day < s.days; day++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		now := s.start.AddDate(0, 0, day)

		for n := s.introduce(day, len(cards)); n > 0; n-- {
			id, err := ulid.New(ulid.Timestamp(now), rng)
			if err != nil {
				return Result{}, err
			}
			cards = append(cards, sm2.Card{ID: id.String()})
		}

		for i := range cards {
			c := &cards[i]
			if c.Schedule != nil && c.Schedule.Due.After(now) {
				continue
			}
			r := s.probs.draw(rng)
			out, err := sched.ScheduleAt(r, c.Schedule, now)
			if err != nil {
				return Result{}, err
			}
			info := sm2.Merge(c.Schedule, r, out)
			c.Schedule = &info
			res.Reviews[day]++
		}

		res.Total += res.Reviews[day]
		if res.Reviews[day] > res.Peak {
			res.Peak, res.PeakDay = res.Reviews[day], day
		}
	}

	res.Due = sched.Histogram().Snapshot()
	res.Stats = sm2.Statistics(cards)
	res.Cards = cards
	return res, nil
}

// introduce returns how many new cards enter the deck on day.
func (s *Simulator) introduce(day, have int) int {
	left := s.cards - have
	if s.newPerDay == 0 {
		if day == 0 {
			return left
		}
		return 0
	}
	return min(s.newPerDay, left)
}

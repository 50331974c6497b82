package sm2

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	easeStep       = 20 // ease change on Easy and Hard, in percentage points
	secondInterval = 6  // days, for the second review unless it was Hard
)

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock substitutes the time source used by Schedule and the analytics
// methods. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		if now != nil {
			s.now = now
		}
	}
}

// WithHistogram makes the Scheduler count due dates in h instead of a
// private histogram.
func WithHistogram(h *DueDateHistogram) Option {
	return func(s *Scheduler) {
		if h != nil {
			s.histogram = h
		}
	}
}

// Scheduler computes review outcomes and keeps the due-date histogram that
// guides load balancing.
//
// A Scheduler is not safe for concurrent use. Each Schedule call reads and
// then writes the histogram; callers sharing one instance must serialize.
type Scheduler struct {
	settings  Settings
	histogram *DueDateHistogram
	now       func() time.Time
}

// NewScheduler creates a Scheduler from the given settings.
// Invalid settings return an error wrapping ErrInvalidSettings.
func NewScheduler(settings Settings, opts ...Option) (*Scheduler, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	s := &Scheduler{
		settings:  settings,
		histogram: NewDueDateHistogram(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Settings returns the settings in effect.
func (s *Scheduler) Settings() Settings {
	return s.settings
}

// UpdateSettings replaces the settings. The histogram is kept.
func (s *Scheduler) UpdateSettings(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.settings = settings
	return nil
}

// Histogram returns the histogram the Scheduler writes to.
func (s *Scheduler) Histogram() *DueDateHistogram {
	return s.histogram
}

// ClearHistogram forgets every due date recorded so far.
// Settings and persisted card state are untouched.
func (s *Scheduler) ClearHistogram() {
	s.histogram.Reset()
}

// Schedule computes the outcome of answering a card with r now.
// current is nil for a card that has never been scheduled.
func (s *Scheduler) Schedule(r Response, current *ScheduleInfo) (ReviewOutcome, error) {
	return s.ScheduleAt(r, current, s.now())
}

// ScheduleAt is Schedule with an explicit review time.
// The outcome's due date is recorded in the histogram.
func (s *Scheduler) ScheduleAt(r Response, current *ScheduleInfo, now time.Time) (ReviewOutcome, error) {
	if !r.IsValid() {
		return ReviewOutcome{}, fmt.Errorf("%w: %d", ErrInvalidResponse, int(r))
	}
	out := s.plan(r, current, now)
	s.histogram.Add(out.Due)
	return out, nil
}

// Preview returns the outcome each response would produce now, without
// recording anything in the histogram.
func (s *Scheduler) Preview(current *ScheduleInfo) map[Response]ReviewOutcome {
	now := s.now()
	result := make(map[Response]ReviewOutcome, len(Responses))
	for _, r := range Responses {
		result[r] = s.plan(r, current, now)
	}
	return result
}

// Replay rebuilds a card's state by scheduling each log in order and merging
// the outcomes. It returns nil when logs is empty.
// Returns ErrCardIDMismatch if any log belongs to another card.
func (s *Scheduler) Replay(cardID string, logs []ReviewLog) (*ScheduleInfo, error) {
	var info *ScheduleInfo
	for _, log := range logs {
		if log.CardID != cardID {
			return nil, fmt.Errorf("%w: card %s, log %s", ErrCardIDMismatch, cardID, log.CardID)
		}
		out, err := s.ScheduleAt(log.Response, info, log.ReviewedAt)
		if err != nil {
			return nil, err
		}
		next := Merge(info, log.Response, out)
		info = &next
	}
	return info, nil
}

// MarshalJSON implements json.Marshaler. Only the settings are serialized.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.settings)
}

// UnmarshalJSON implements json.Unmarshaler.
// Keys absent from data keep their DefaultSettings values. It rebuilds the
// Scheduler with an empty histogram and the default clock.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(settings)
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

// plan computes an outcome without touching the histogram.
func (s *Scheduler) plan(r Response, current *ScheduleInfo, now time.Time) ReviewOutcome {
	prior := s.prior(current, now)
	delayed := delayedDays(prior.Due, now)

	ease, interval := s.next(r, float64(prior.Ease), float64(prior.Interval), float64(delayed))

	// Fixed onboarding curve before the ease formula takes over.
	switch {
	case prior.ReviewCount == 0:
		interval = float64(s.settings.InitialInterval)
	case prior.ReviewCount == 1 && r != Hard:
		interval = secondInterval
	}

	interval = math.Min(interval, float64(s.settings.MaximumInterval))
	if s.settings.LoadBalance {
		interval = s.balance(interval, now)
	}

	return ReviewOutcome{
		Interval:    clamp(int(math.Round(interval)), 1, s.settings.MaximumInterval),
		Ease:        clamp(int(math.Round(ease)), s.settings.MinimumEase, MaximumEase),
		Due:         addDays(now, interval),
		DelayedDays: delayed,
	}
}

// prior returns current, or the implied state of a card never scheduled.
func (s *Scheduler) prior(current *ScheduleInfo, now time.Time) ScheduleInfo {
	if current != nil {
		return *current
	}
	return ScheduleInfo{Due: now, Ease: s.settings.BaseEase}
}

// next applies the ease-driven update for r.
//
//	Easy: E' = min(500, E+20)     I' = (I + d)   * E' * easyBonus / 100
//	Good: E' = E                  I' = (I + d/2) * E' / 100
//	Hard: E' = max(minEase, E-20) I' = (I + d/4) * hardPenalty
//
// where d is the number of whole days the review is late. I' is at least 1.
func (s *Scheduler) next(r Response, ease, interval, delayed float64) (float64, float64) {
	switch r {
	case Easy:
		ease = math.Min(MaximumEase, ease+easeStep)
		interval = (interval + delayed) * ease * s.settings.EasyBonus / 100
	case Good:
		interval = (interval + delayed/2) * ease / 100
	case Hard:
		ease = math.Max(float64(s.settings.MinimumEase), ease-easeStep)
		interval = (interval + delayed/4) * s.settings.HardPenalty
	}
	return ease, math.Max(1, interval)
}

// delayedDays returns how many whole days past due a review at now is.
func delayedDays(due, now time.Time) int {
	late := math.Floor(now.Sub(due).Hours() / 24)
	return max(0, int(late))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

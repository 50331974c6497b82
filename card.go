package sm2

import "time"

// ScheduleInfo is the persisted scheduling state of one card.
// The caller's storage layer owns it; it changes only through Merge.
type ScheduleInfo struct {
	Due         time.Time `json:"due"`
	Interval    int       `json:"interval"` // days; 0 only before the first review.
	Ease        int       `json:"ease"`     // percent, never below Settings.MinimumEase.
	ReviewCount int       `json:"review_count"`
	LapseCount  int       `json:"lapse_count"`
	DelayedDays int       `json:"delayed_days"` // informational, from the last review.
}

// ReviewOutcome is the result of scheduling one response.
// It deliberately carries no review or lapse counters; see Merge.
type ReviewOutcome struct {
	Interval    int       `json:"interval"`
	Ease        int       `json:"ease"`
	Due         time.Time `json:"due"`
	DelayedDays int       `json:"delayed_days"`
}

// Card pairs a caller-side identifier with its schedule.
// A nil Schedule means the card has never been scheduled.
type Card struct {
	ID       string        `json:"id"`
	Schedule *ScheduleInfo `json:"schedule,omitempty"`
}

// IsNew reports whether the card has never been scheduled.
func (c Card) IsNew() bool {
	return c.Schedule == nil
}

// clone returns a copy of the card that shares no memory with c.
func (c Card) clone() Card {
	out := c
	if c.Schedule != nil {
		v := *c.Schedule
		out.Schedule = &v
	}
	return out
}

// Merge folds an outcome into the prior state and returns the state to
// persist. prev may be nil for a new card. ReviewCount always advances;
// LapseCount advances on Hard.
func Merge(prev *ScheduleInfo, r Response, out ReviewOutcome) ScheduleInfo {
	var next ScheduleInfo
	if prev != nil {
		next = *prev
	}
	next.Due = out.Due
	next.Interval = out.Interval
	next.Ease = out.Ease
	next.DelayedDays = out.DelayedDays
	next.ReviewCount++
	if r == Hard {
		next.LapseCount++
	}
	return next
}

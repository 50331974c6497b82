package sm2

import (
	"sort"
	"time"
)

type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{y, m, d}
}

func (k dateKey) String() string {
	return time.Date(k.year, k.month, k.day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// DueDateHistogram counts the cards scheduled onto each calendar date.
// Dates are taken in the location of the timestamp passed in.
// The zero value is ready to use.
type DueDateHistogram struct {
	counts map[dateKey]int
}

// NewDueDateHistogram returns an empty histogram.
func NewDueDateHistogram() *DueDateHistogram {
	return &DueDateHistogram{counts: make(map[dateKey]int)}
}

// Count returns the number of cards due on t's calendar date.
func (h *DueDateHistogram) Count(t time.Time) int {
	return h.counts[keyOf(t)]
}

// Add records one more card due on t's calendar date.
func (h *DueDateHistogram) Add(t time.Time) {
	if h.counts == nil {
		h.counts = make(map[dateKey]int)
	}
	h.counts[keyOf(t)]++
}

// Len returns the number of distinct dates with at least one card.
func (h *DueDateHistogram) Len() int {
	return len(h.counts)
}

// Reset forgets every recorded date.
func (h *DueDateHistogram) Reset() {
	clear(h.counts)
}

// Dates returns the recorded dates (YYYY-MM-DD) in ascending order.
func (h *DueDateHistogram) Dates() []string {
	dates := make([]string, 0, len(h.counts))
	for k := range h.counts {
		dates = append(dates, k.String())
	}
	sort.Strings(dates)
	return dates
}

// Snapshot returns a copy of the counts keyed by YYYY-MM-DD.
func (h *DueDateHistogram) Snapshot() map[string]int {
	out := make(map[string]int, len(h.counts))
	for k, n := range h.counts {
		out[k.String()] = n
	}
	return out
}

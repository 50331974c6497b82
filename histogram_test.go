package sm2

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHistogramBucketsByCalendarDate(t *testing.T) {
	h := NewDueDateHistogram()
	morning := time.Date(2025, 6, 20, 0, 30, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 20, 23, 59, 0, 0, time.UTC)
	next := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	h.Add(morning)
	h.Add(evening)
	h.Add(next)

	assert.Equal(t, 2, h.Count(morning))
	assert.Equal(t, 2, h.Count(evening))
	assert.Equal(t, 1, h.Count(next))
	assert.Equal(t, 0, h.Count(next.AddDate(0, 0, 1)))
	assert.Equal(t, 2, h.Len())
}

func TestHistogramUsesTimestampLocation(t *testing.T) {
	h := NewDueDateHistogram()
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2025-06-20 20:00 UTC is already 2025-06-21 in Tokyo.
	utc := time.Date(2025, 6, 20, 20, 0, 0, 0, time.UTC)
	h.Add(utc.In(tokyo))

	assert.Equal(t, 0, h.Count(utc))
	assert.Equal(t, 1, h.Count(time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)))
}

func TestHistogramZeroValue(t *testing.T) {
	var h DueDateHistogram
	assert.Equal(t, 0, h.Count(t0))
	h.Add(t0)
	assert.Equal(t, 1, h.Count(t0))
}

func TestHistogramSnapshotAndDates(t *testing.T) {
	h := NewDueDateHistogram()
	h.Add(t0.AddDate(0, 0, 2))
	h.Add(t0)
	h.Add(t0)

	assert.Equal(t, []string{"2025-06-15", "2025-06-17"}, h.Dates())
	assert.Equal(t, map[string]int{"2025-06-15": 2, "2025-06-17": 1}, h.Snapshot())

	snap := h.Snapshot()
	snap["2025-06-15"] = 99
	assert.Equal(t, 2, h.Count(t0))
}

func TestHistogramReset(t *testing.T) {
	h := NewDueDateHistogram()
	h.Add(t0)
	h.Reset()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Count(t0))

	var zero DueDateHistogram
	zero.Reset()
	assert.Equal(t, 0, zero.Len())
}

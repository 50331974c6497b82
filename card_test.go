package sm2

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNewCard(t *testing.T) {
	out := ReviewOutcome{Interval: 1, Ease: 250, Due: t0.Add(days(1))}
	got := Merge(nil, Good, out)
	assert.Equal(t, ScheduleInfo{Due: t0.Add(days(1)), Interval: 1, Ease: 250, ReviewCount: 1}, got)
}

func TestMergeCountsLapseOnHard(t *testing.T) {
	prev := &ScheduleInfo{Due: t0, Interval: 6, Ease: 250, ReviewCount: 2, LapseCount: 1}
	out := ReviewOutcome{Interval: 3, Ease: 230, Due: t0.Add(days(3)), DelayedDays: 2}
	got := Merge(prev, Hard, out)

	assert.Equal(t, 3, got.ReviewCount)
	assert.Equal(t, 2, got.LapseCount)
	assert.Equal(t, 3, got.Interval)
	assert.Equal(t, 230, got.Ease)
	assert.Equal(t, 2, got.DelayedDays)
	assert.Equal(t, 2, prev.ReviewCount, "prev is not mutated")
}

func TestMergeGoodKeepsLapses(t *testing.T) {
	prev := &ScheduleInfo{Due: t0, Interval: 6, Ease: 250, ReviewCount: 2, LapseCount: 1}
	got := Merge(prev, Easy, ReviewOutcome{Interval: 20, Ease: 270, Due: t0.Add(days(20))})
	assert.Equal(t, 1, got.LapseCount)
}

func TestCardIsNew(t *testing.T) {
	assert.True(t, Card{ID: "a"}.IsNew())
	assert.False(t, Card{ID: "a", Schedule: &ScheduleInfo{}}.IsNew())
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal(Card{ID: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a"}`, string(data))

	c := Card{ID: "b", Schedule: &ScheduleInfo{Due: t0, Interval: 3, Ease: 240, ReviewCount: 2, LapseCount: 1}}
	data, err = json.Marshal(c)
	require.NoError(t, err)

	var got Card
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}

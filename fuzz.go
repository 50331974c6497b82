package sm2

import (
	"math"
	"time"
)

type fuzzTier struct {
	upTo   float64 // inclusive upper bound on the interval, in days
	factor float64 // share of the interval; 0 means a flat single day
}

var fuzzTiers = []fuzzTier{
	{21, 0},
	{180, 0.05},
	{math.Inf(1), 0.025},
}

// fuzzRange returns how many whole days an interval may move either way.
func fuzzRange(interval float64, maxFuzzingDays int) int {
	r := 1.0
	for _, t := range fuzzTiers {
		if interval <= t.upTo {
			if t.factor > 0 {
				r = math.Max(1, interval*t.factor)
			}
			break
		}
	}
	return min(int(r), maxFuzzingDays)
}

// balance shifts interval toward the least loaded due date within its fuzz
// range. Offsets are scanned from most negative up and only a strictly
// smaller count replaces the current pick, so ties keep the shorter interval.
func (s *Scheduler) balance(interval float64, now time.Time) float64 {
	span := fuzzRange(interval, s.settings.MaxFuzzingDays)
	maxIvl := float64(s.settings.MaximumInterval)

	best, fewest := 0, math.MaxInt
	for o := -span; o <= span; o++ {
		candidate := interval + float64(o)
		if candidate < 1 || candidate > maxIvl {
			continue
		}
		if n := s.histogram.Count(addDays(now, candidate)); n < fewest {
			best, fewest = o, n
		}
	}
	return interval + float64(best)
}

// addDays returns t moved forward by a possibly fractional number of days.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * float64(24*time.Hour)))
}

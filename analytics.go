package sm2

import (
	"math"
	"time"
)

// Stats summarizes a collection of cards.
type Stats struct {
	Total           int `json:"total"`
	New             int `json:"new"`
	Learning        int `json:"learning"`
	Mature          int `json:"mature"`
	AverageEase     int `json:"average_ease"`     // over scheduled cards, 0 if none
	AverageInterval int `json:"average_interval"` // over scheduled cards, 0 if none
}

// DueCards returns the cards due for review now, in their original order.
func (s *Scheduler) DueCards(cards []Card) []Card {
	return DueCardsAt(cards, s.now())
}

// CountDueInDays counts the cards due within n days from now.
func (s *Scheduler) CountDueInDays(cards []Card, n int) int {
	return CountDueInDaysAt(cards, n, s.now())
}

// Forecast returns, for each of the next days calendar days, how many cards
// fall due on it. Day 0 also holds new and overdue cards.
func (s *Scheduler) Forecast(cards []Card, days int) []int {
	return ForecastAt(cards, days, s.now())
}

// Statistics summarizes cards. It does not depend on the clock.
func (s *Scheduler) Statistics(cards []Card) Stats {
	return Statistics(cards)
}

// DueCardsAt returns the cards due at now. New cards are always due.
func DueCardsAt(cards []Card, now time.Time) []Card {
	var due []Card
	for _, c := range cards {
		if isDueBy(c, now) {
			due = append(due, c.clone())
		}
	}
	return due
}

// CountDueInDaysAt counts new cards plus cards due no later than now + n days.
func CountDueInDaysAt(cards []Card, n int, now time.Time) int {
	horizon := addDays(now, float64(min(n, IntervalLimit)))
	count := 0
	for _, c := range cards {
		if isDueBy(c, horizon) {
			count++
		}
	}
	return count
}

// ForecastAt is Forecast relative to now. Cards due beyond the window are
// not counted.
func ForecastAt(cards []Card, days int, now time.Time) []int {
	if days <= 0 {
		return nil
	}
	counts := make([]int, days)
	today := midnight(now)
	for _, c := range cards {
		if isDueBy(c, now) {
			counts[0]++
			continue
		}
		// Round absorbs the odd 23 or 25 hour day around DST changes.
		day := int(math.Round(midnight(c.Schedule.Due.In(now.Location())).Sub(today).Hours() / 24))
		if day < days {
			counts[day]++
		}
	}
	return counts
}

// Statistics partitions cards by maturity and averages ease and interval
// over every scheduled card.
func Statistics(cards []Card) Stats {
	st := Stats{Total: len(cards)}
	var easeSum, intervalSum float64
	for _, c := range cards {
		switch MaturityOf(c.Schedule) {
		case New:
			st.New++
			continue
		case Learning:
			st.Learning++
		case Mature:
			st.Mature++
		}
		easeSum += float64(c.Schedule.Ease)
		intervalSum += float64(c.Schedule.Interval)
	}
	if scheduled := st.Learning + st.Mature; scheduled > 0 {
		st.AverageEase = int(math.Round(easeSum / float64(scheduled)))
		st.AverageInterval = int(math.Round(intervalSum / float64(scheduled)))
	}
	return st
}

func isDueBy(c Card, t time.Time) bool {
	return c.Schedule == nil || !c.Schedule.Due.After(t)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

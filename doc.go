// Package sm2 implements an ease-based spaced repetition scheduler in the
// SM-2 family, with histogram-guided load balancing of due dates.
//
// A Scheduler turns a learner's Response (Hard, Good or Easy) and a card's
// prior ScheduleInfo into a ReviewOutcome: the next interval in days, the
// updated ease percentage and a concrete due date. The caller owns the
// card state and merges the outcome back into it (see Merge).
//
// Basic usage:
//
//	s, err := sm2.NewScheduler(sm2.DefaultSettings())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := s.Schedule(sm2.Good, nil) // nil: a card never reviewed
//	info := sm2.Merge(nil, sm2.Good, out)
//
// The Scheduler keeps a per-instance DueDateHistogram that steers load
// balancing. It performs no locking; serialize calls that share one.
package sm2

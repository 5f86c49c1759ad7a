// Package sched provides a single-threaded run loop with one-shot timers.
//
// Timers are fire-and-forget: AfterFunc hands back nothing to cancel with,
// and every scheduled callback runs once its due time is reached. The loop
// never starts goroutines; the host advances it from its own event loop.
package sched

import "time"

// Scheduler schedules one-shot callbacks against a clock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
	Now() time.Time
}

type timer struct {
	due time.Time
	seq uint64
	fn  func()
}

// Loop is a manually advanced Scheduler.
type Loop struct {
	now    time.Time
	seq    uint64
	timers []timer
}

// NewLoop returns a loop whose clock starts at start.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop clock.
func (l *Loop) Now() time.Time {
	return l.now
}

// AfterFunc schedules fn to run d after the current loop time.
// Negative durations are treated as zero.
func (l *Loop) AfterFunc(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	l.seq++
	l.timers = append(l.timers, timer{due: l.now.Add(d), seq: l.seq, fn: fn})
}

// Pending reports how many callbacks have not fired yet.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Advance moves the clock forward by d and runs due callbacks.
func (l *Loop) Advance(d time.Duration) int {
	return l.AdvanceTo(l.now.Add(d))
}

// AdvanceTo moves the clock to t, running every callback due at or before t
// in due order. Callbacks scheduled while advancing run too if they fall due
// before t. The clock never moves backwards. It returns the number of
// callbacks run.
func (l *Loop) AdvanceTo(t time.Time) int {
	fired := 0
	for {
		idx := l.nextDue(t)
		if idx < 0 {
			break
		}
		next := l.timers[idx]
		l.timers = append(l.timers[:idx], l.timers[idx+1:]...)
		if next.due.After(l.now) {
			l.now = next.due
		}
		next.fn()
		fired++
	}
	if t.After(l.now) {
		l.now = t
	}
	return fired
}

// NextDue returns the due time of the earliest pending callback.
func (l *Loop) NextDue() (time.Time, bool) {
	if len(l.timers) == 0 {
		return time.Time{}, false
	}
	best := l.timers[0]
	for _, tm := range l.timers[1:] {
		if earlier(tm, best) {
			best = tm
		}
	}
	return best.due, true
}

func (l *Loop) nextDue(limit time.Time) int {
	best := -1
	for i, tm := range l.timers {
		if tm.due.After(limit) {
			continue
		}
		if best < 0 || earlier(tm, l.timers[best]) {
			best = i
		}
	}
	return best
}

func earlier(a, b timer) bool {
	if a.due.Equal(b.due) {
		return a.seq < b.seq
	}
	return a.due.Before(b.due)
}

// Package frame paces callbacks to display refreshes on a single goroutine.
//
// The host calls Tick once per refresh, before drawing. Everything scheduled for
// that refresh runs inside Tick, so no draw ever observes a half-applied update.
package frame

import "time"

// Frame describes one display refresh.
type Frame struct {
	Index   uint64
	Elapsed time.Duration // since the first tick
	Delta   float32       // seconds since the previous tick, never negative
}

type Callback func(f Frame)

// Clock returns the current time. Tests substitute a manual clock.
type Clock func() time.Time

// Subscription is the cancellation token of a periodic callback.
type Subscription struct {
	cb       Callback
	start    time.Time
	bound    time.Duration
	done     bool
	onExpire func()
}

// Cancel stops the subscription. No further callbacks fire, including within the
// current tick if it has not yet been reached.
func (s *Subscription) Cancel() {
	s.done = true
}

// Done reports whether the subscription was cancelled or ran out its bound.
func (s *Subscription) Done() bool {
	return s.done
}

// OnExpire registers a function to run once when the bound elapses. It does not
// run on explicit Cancel.
func (s *Subscription) OnExpire(fn func()) {
	s.onExpire = fn
}

type Scheduler struct {
	clock    Clock
	next     []Callback
	periodic []*Subscription
	first    time.Time
	last     time.Time
	ticks    uint64
}

func NewScheduler(clock Clock) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{clock: clock}
}

// RequestFrame runs cb once on the next Tick. Callbacks registered from within a
// tick run on the following one.
func (s *Scheduler) RequestFrame(cb Callback) {
	if cb == nil {
		return
	}
	s.next = append(s.next, cb)
}

// Every runs cb on every Tick until the subscription is cancelled or bound has
// elapsed since this call. A zero bound never expires.
func (s *Scheduler) Every(bound time.Duration, cb Callback) *Subscription {
	sub := &Subscription{cb: cb, start: s.clock(), bound: bound}
	if cb == nil {
		sub.done = true
		return sub
	}
	s.periodic = append(s.periodic, sub)
	return sub
}

// Tick performs one display refresh: next-frame callbacks first, then periodic ones.
func (s *Scheduler) Tick() Frame {
	now := s.clock()
	if s.ticks == 0 {
		s.first = now
		s.last = now
	}
	delta := now.Sub(s.last)
	if delta < 0 {
		delta = 0
	}
	f := Frame{Index: s.ticks, Elapsed: now.Sub(s.first), Delta: float32(delta.Seconds())}
	s.last = now
	s.ticks++

	pending := s.next
	s.next = nil
	running := s.periodic
	s.periodic = nil
	for _, cb := range pending {
		cb(f)
	}

	var live []*Subscription
	for _, sub := range running {
		if !sub.done && sub.bound > 0 && now.Sub(sub.start) >= sub.bound {
			sub.done = true
			if sub.onExpire != nil {
				sub.onExpire()
			}
		}
		if sub.done {
			continue
		}
		sub.cb(f)
		if !sub.done {
			live = append(live, sub)
		}
	}
	// Subscriptions created by callbacks during this tick start on the next one.
	s.periodic = append(live, s.periodic...)
	return f
}

// Pending returns the number of callbacks waiting for the next tick.
func (s *Scheduler) Pending() (next, periodic int) {
	return len(s.next), len(s.periodic)
}

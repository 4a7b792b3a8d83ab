package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestScheduler() (*Scheduler, *manualClock) {
	clock := &manualClock{now: time.Unix(1700000000, 0)}
	return NewScheduler(clock.Now), clock
}

func TestTick_DeltaIsZeroOnFirstTickThenElapsed(t *testing.T) {
	s, clock := newTestScheduler()

	f := s.Tick()
	assert.Equal(t, uint64(0), f.Index)
	assert.Zero(t, f.Delta)

	clock.Advance(16 * time.Millisecond)
	f = s.Tick()
	assert.Equal(t, uint64(1), f.Index)
	assert.InDelta(t, 0.016, f.Delta, 1e-6)
	assert.Equal(t, 16*time.Millisecond, f.Elapsed)
}

func TestTick_DeltaNeverNegative(t *testing.T) {
	s, clock := newTestScheduler()
	s.Tick()
	clock.Advance(-time.Second)

	f := s.Tick()
	assert.Zero(t, f.Delta)
}

func TestRequestFrame_RunsOnceOnNextTick(t *testing.T) {
	s, _ := newTestScheduler()
	calls := 0
	s.RequestFrame(func(Frame) { calls++ })

	s.Tick()
	s.Tick()
	assert.Equal(t, 1, calls)
}

func TestRequestFrame_ReRegisteringDefersToFollowingTick(t *testing.T) {
	s, _ := newTestScheduler()
	var seen []uint64
	var loop Callback
	loop = func(f Frame) {
		seen = append(seen, f.Index)
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	for range 4 {
		s.Tick()
	}
	assert.Equal(t, []uint64{0, 1, 2, 3}, seen)
	next, _ := s.Pending()
	assert.Equal(t, 1, next)
}

func TestEvery_StopsAfterBound(t *testing.T) {
	s, clock := newTestScheduler()
	ticks := 0
	expired := 0
	sub := s.Every(100*time.Millisecond, func(Frame) { ticks++ })
	sub.OnExpire(func() { expired++ })

	for range 20 {
		s.Tick()
		clock.Advance(10 * time.Millisecond)
	}

	// Ticks at 0, 10, ..., 90 ms fall inside the bound.
	assert.Equal(t, 10, ticks)
	assert.True(t, sub.Done())
	assert.Equal(t, 1, expired)
	_, periodic := s.Pending()
	assert.Zero(t, periodic, "expired subscriptions are torn down")
}

func TestEvery_ZeroBoundRunsUntilCancelled(t *testing.T) {
	s, clock := newTestScheduler()
	ticks := 0
	sub := s.Every(0, func(Frame) { ticks++ })

	for range 5 {
		s.Tick()
		clock.Advance(time.Hour)
	}
	require.Equal(t, 5, ticks)

	sub.Cancel()
	s.Tick()
	assert.Equal(t, 5, ticks)
	assert.True(t, sub.Done())
}

func TestEvery_CancelFromAnotherCallbackInSameTick(t *testing.T) {
	s, _ := newTestScheduler()
	second := 0
	var victim *Subscription
	s.Every(0, func(Frame) { victim.Cancel() })
	victim = s.Every(0, func(Frame) { second++ })

	s.Tick()
	assert.Zero(t, second)
}

func TestEvery_NextFrameCallbacksRunFirst(t *testing.T) {
	s, _ := newTestScheduler()
	var order []string
	s.Every(0, func(Frame) { order = append(order, "periodic") })
	s.RequestFrame(func(Frame) { order = append(order, "next") })

	s.Tick()
	assert.Equal(t, []string{"next", "periodic"}, order)
}

func TestEvery_SubscribedDuringTickStartsNextTick(t *testing.T) {
	s, _ := newTestScheduler()
	inner := 0
	s.RequestFrame(func(Frame) {
		s.Every(0, func(Frame) { inner++ })
	})

	s.Tick()
	assert.Zero(t, inner)
	s.Tick()
	assert.Equal(t, 1, inner)
}

func TestEvery_NilCallbackIsDone(t *testing.T) {
	s, _ := newTestScheduler()
	sub := s.Every(time.Second, nil)
	assert.True(t, sub.Done())
	_, periodic := s.Pending()
	assert.Zero(t, periodic)
}

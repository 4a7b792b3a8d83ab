package animation

import (
	"testing"
	"time"

	"scenedemo/internal/engine"
	"scenedemo/internal/frame"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroup(n int) []*engine.GameObject {
	group := make([]*engine.GameObject, n)
	for i := range group {
		group[i] = engine.NewGameObject("sphere")
		group[i].Transform.Position = rl.Vector3{X: float32(i) * 5, Y: 8}
	}
	return group
}

func TestDrop_MovesByStepEachFrameThenFreezes(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	s := frame.NewScheduler(clock.Now)
	group := newGroup(4)
	d := NewDrop(group, rl.Vector3{Y: -1}, 0.5, 100*time.Millisecond, zerolog.Nop())
	require.NoError(t, d.Start(s))
	assert.Equal(t, rl.Vector3{Y: -0.5}, d.Step())

	prev := group[2].Transform.Position
	for !d.Done() {
		s.Tick()
		if d.Done() {
			break
		}
		pos := group[2].Transform.Position
		assert.Equal(t, rl.Vector3Add(prev, d.Step()), pos)
		prev = pos
		clock.Advance(25 * time.Millisecond)
	}

	// Frames at 0, 25, 50 and 75 ms move the group; the one at 100 ms does not.
	assert.Equal(t, 4, d.Frames())
	frozen := make([]rl.Vector3, len(group))
	for i, g := range group {
		frozen[i] = g.Transform.Position
		assert.Equal(t, float32(8-4*0.5), g.Transform.Position.Y)
		assert.Equal(t, float32(i)*5, g.Transform.Position.X)
	}

	for range 50 {
		clock.Advance(16 * time.Millisecond)
		s.Tick()
	}
	for i, g := range group {
		assert.Equal(t, frozen[i], g.Transform.Position)
	}
	_, periodic := s.Pending()
	assert.Zero(t, periodic)
}

func TestDrop_CannotRestart(t *testing.T) {
	s := frame.NewScheduler(nil)
	d := NewDrop(newGroup(1), rl.Vector3{Y: -1}, 0.05, time.Second, zerolog.Nop())

	assert.False(t, d.Started())
	require.NoError(t, d.Start(s))
	assert.True(t, d.Started())
	assert.ErrorIs(t, d.Start(s), ErrDropStarted)
}

func TestDrop_CancelStopsMovement(t *testing.T) {
	clock := &manualClock{now: time.Unix(0, 0)}
	s := frame.NewScheduler(clock.Now)
	group := newGroup(1)
	d := NewDrop(group, rl.Vector3{X: 1}, 1, time.Hour, zerolog.Nop())
	require.NoError(t, d.Start(s))

	s.Tick()
	d.Cancel()
	s.Tick()

	assert.True(t, d.Done())
	assert.Equal(t, 1, d.Frames())
	assert.Equal(t, rl.Vector3{X: 1, Y: 8}, group[0].Transform.Position)
}

func TestDrop_ZeroDurationNeverMoves(t *testing.T) {
	s := frame.NewScheduler(nil)
	group := newGroup(1)
	d := NewDrop(group, rl.Vector3{Y: -1}, 1, 0, zerolog.Nop())
	require.NoError(t, d.Start(s))

	s.Tick()
	assert.True(t, d.Done())
	assert.Equal(t, rl.Vector3{Y: 8}, group[0].Transform.Position)
}

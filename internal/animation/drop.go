package animation

import (
	"errors"
	"time"

	"scenedemo/internal/engine"
	"scenedemo/internal/frame"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// ErrDropStarted is returned when a drop that already ran is started again.
var ErrDropStarted = errors.New("drop already started")

// Drop moves a group of objects by a constant step every frame for a fixed time,
// then leaves them where they are.
type Drop struct {
	Group     []*engine.GameObject
	Direction rl.Vector3
	Speed     float32 // units per frame along Direction
	Duration  time.Duration

	sub   *frame.Subscription
	ticks int
	log   zerolog.Logger
}

func NewDrop(group []*engine.GameObject, direction rl.Vector3, speed float32, duration time.Duration, log zerolog.Logger) *Drop {
	return &Drop{
		Group:     group,
		Direction: direction,
		Speed:     speed,
		Duration:  duration,
		log:       log.With().Str("component", "drop").Logger(),
	}
}

// Step is the displacement applied to each group member per frame.
func (d *Drop) Step() rl.Vector3 {
	return rl.Vector3Scale(d.Direction, d.Speed)
}

// Start subscribes the drop to the scheduler. The subscription tears itself down
// once Duration has elapsed.
func (d *Drop) Start(s *frame.Scheduler) error {
	if d.sub != nil {
		return ErrDropStarted
	}
	if d.Duration <= 0 {
		// A zero bound means "forever" to the scheduler; a zero-length drop does nothing.
		d.sub = s.Every(0, nil)
		return nil
	}
	step := d.Step()
	d.sub = s.Every(d.Duration, func(frame.Frame) {
		for _, g := range d.Group {
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, step)
		}
		d.ticks++
	})
	d.sub.OnExpire(func() {
		d.log.Info().Int("frames", d.ticks).Dur("duration", d.Duration).Msg("drop finished")
	})
	d.log.Info().Int("objects", len(d.Group)).Dur("duration", d.Duration).Msg("drop started")
	return nil
}

// Started reports whether Start has been called.
func (d *Drop) Started() bool {
	return d.sub != nil
}

// Done reports whether the drop has finished or was cancelled.
func (d *Drop) Done() bool {
	return d.sub != nil && d.sub.Done()
}

func (d *Drop) Cancel() {
	if d.sub != nil {
		d.sub.Cancel()
	}
}

// Frames returns how many frames moved the group.
func (d *Drop) Frames() int {
	return d.ticks
}

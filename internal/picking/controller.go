package picking

import (
	"math/rand/v2"

	"scenedemo/internal/camera"
	"scenedemo/internal/components"
	"scenedemo/internal/engine"
	"scenedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// MaxPickDistance bounds the hit test along the pointer ray.
const MaxPickDistance = 1000

// Selection is either idle (Object == nil) or highlighting Object.
// Original is the colour to restore; Shown is the colour currently applied.
type Selection struct {
	Object   *engine.GameObject
	Original rl.Color
	Shown    rl.Color
}

func (s Selection) Idle() bool {
	return s.Object == nil
}

type Transition int

const (
	Unchanged Transition = iota
	Entered
	Switched
	Left
)

func (t Transition) String() string {
	switch t {
	case Entered:
		return "entered"
	case Switched:
		return "switched"
	case Left:
		return "left"
	default:
		return "unchanged"
	}
}

// Controller tracks which object the pointer is over and paints it with the
// highlight colour until the pointer leaves.
type Controller struct {
	Highlight rl.Color

	// OnHover fires with true when the pointer starts covering a pickable object
	// and false when it stops. Hosts use it for cursor hints.
	OnHover engine.EventWithArg[bool]

	selection Selection
	rng       *rand.Rand
	log       zerolog.Logger
}

func NewController(highlight rl.Color, rng *rand.Rand, log zerolog.Logger) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{
		Highlight: highlight,
		rng:       rng,
		log:       log.With().Str("component", "picking").Logger(),
	}
}

func (c *Controller) Selection() Selection {
	return c.selection
}

// Hovering reports whether the pointer is over a pickable object.
func (c *Controller) Hovering() bool {
	return !c.selection.Idle()
}

// Update casts from cam through p against objects and applies the result.
func (c *Controller) Update(p Pointer, cam *camera.Orbit, objects []*engine.GameObject) Transition {
	hit, ok := physics.Raycast(cam.Ray(p.X, p.Y), objects, MaxPickDistance)
	if !ok {
		return c.Apply(nil)
	}
	return c.Apply(hit.GameObject)
}

// Apply moves the selection to hit, which may be nil for "nothing under the pointer".
// Objects without a MeshRenderer have no colour to change and count as no hit.
func (c *Controller) Apply(hit *engine.GameObject) Transition {
	target := engine.GetComponent[*components.MeshRenderer](hit)
	if target == nil {
		hit = nil
	}

	prev := c.selection.Object
	switch {
	case hit == prev:
		return Unchanged
	case hit == nil:
		c.restore()
		c.log.Debug().Str("object", prev.Name).Msg("pointer left")
		c.OnHover.Invoke(false)
		return Left
	}

	t := Entered
	if prev != nil {
		c.restore()
		t = Switched
	}
	c.selection = Selection{Object: hit, Original: target.Material.Color, Shown: c.Highlight}
	target.Material.Color = c.Highlight
	c.log.Debug().Str("object", hit.Name).Stringer("transition", t).Msg("pointer over object")
	if t == Entered {
		c.OnHover.Invoke(true)
	}
	return t
}

// Press acknowledges a click on the highlighted object by recolouring it with a
// random colour. The selection and its original colour are unchanged.
func (c *Controller) Press() bool {
	if c.selection.Idle() {
		return false
	}
	target := engine.GetComponent[*components.MeshRenderer](c.selection.Object)
	if target == nil {
		return false
	}
	v := c.rng.Uint32N(0x1000000)
	color := rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
	target.Material.Color = color
	c.selection.Shown = color
	return true
}

// Rebase changes the colour obj returns to when the pointer leaves it. It reports
// false, doing nothing, unless obj is the highlighted object.
func (c *Controller) Rebase(obj *engine.GameObject, base rl.Color) bool {
	if obj == nil || obj != c.selection.Object {
		return false
	}
	c.selection.Original = base
	return true
}

// Reset restores any highlighted object and returns to idle without firing OnHover.
func (c *Controller) Reset() {
	c.restore()
}

func (c *Controller) restore() {
	if c.selection.Idle() {
		return
	}
	if target := engine.GetComponent[*components.MeshRenderer](c.selection.Object); target != nil {
		target.Material.Color = c.selection.Original
	}
	c.selection = Selection{}
}

package game

import (
	"errors"
	"fmt"
	"time"

	"scenedemo/internal/animation"
	"scenedemo/internal/config"
	"scenedemo/internal/frame"
	"scenedemo/internal/logging"
	"scenedemo/internal/panel"
	"scenedemo/internal/picking"
	"scenedemo/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Game struct {
	Config    config.Config
	World     *world.World
	Renderer  *world.Renderer
	Panel     *panel.Panel
	Picker    *picking.Controller
	Driver    *animation.Driver
	Drop      *animation.Drop
	Scheduler *frame.Scheduler
	DebugMode bool

	pointer picking.Pointer
	picking *frame.Subscription
	last    frame.Frame

	// cursor applies the hover hint; swapped out when no window is open.
	cursor func(hovering bool)

	log      zerolog.Logger
	frameLog zerolog.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New wires the scene, the animation and the picking controller together. The
// window is not touched until Run.
func New(cfg config.Config, p *panel.Panel, log zerolog.Logger) (*Game, error) {
	w := world.Build(cfg)
	g := &Game{
		Config:    cfg,
		World:     w,
		Renderer:  world.NewRenderer(w),
		Panel:     p,
		Scheduler: frame.NewScheduler(nil),
		cursor:    setCursor,
		log:       log,
		frameLog:  logging.FrameSampled(log),
	}

	driver, err := animation.NewDriver(w.Scene, w.Camera, cfg.Scene.CubeName, p, log)
	if err != nil {
		return nil, err
	}
	g.Driver = driver
	g.Drop = animation.NewDrop(w.DropGroup(), cfg.DropDirection(), cfg.Drop.Speed, cfg.Drop.Duration, log)

	g.Picker = picking.NewController(cfg.HighlightColor(), nil, log)
	g.Picker.OnHover.AddListener(func(hovering bool) {
		if g.cursor != nil {
			g.cursor(hovering)
		}
	})
	g.Driver.Overlay = g.Picker
	return g, nil
}

// Start schedules the per-frame work. Picking is subscribed after the driver so
// the hit test sees this frame's camera.
func (g *Game) Start() {
	g.Driver.Start(g.Scheduler)
	g.picking = g.Scheduler.Every(0, func(frame.Frame) {
		g.Picker.Update(g.pointer, g.World.Camera, g.World.Pickables())
	})
	if g.Config.Drop.Autostart {
		g.StartDrop()
	}
}

// StartDrop begins the drop once. Later requests are logged and ignored.
func (g *Game) StartDrop() {
	err := g.Drop.Start(g.Scheduler)
	if errors.Is(err, animation.ErrDropStarted) {
		g.log.Debug().Msg("drop requested again, ignoring")
		return
	}
	if err != nil {
		g.log.Error().Err(err).Msg("starting drop")
	}
}

// Step advances one frame without drawing.
func (g *Game) Step() frame.Frame {
	g.last = g.Scheduler.Tick()
	g.World.Update(g.last.Delta)
	return g.last
}

func (g *Game) Run() {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(g.Config.Window.Width), int32(g.Config.Window.Height), g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.Config.Window.TargetFPS))

	g.Start()
	g.log.Info().
		Int("width", g.Config.Window.Width).
		Int("height", g.Config.Window.Height).
		Int("objects", len(g.World.Scene.GameObjects)).
		Msg("window open")

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	g.Picker.Reset()
}

func (g *Game) Update() {
	updateStart := time.Now()

	if rl.IsWindowResized() {
		g.World.Camera.SetViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	mouse := rl.GetMousePosition()
	overPanel := g.Panel.Contains(mouse)
	if !overPanel {
		g.pointer = picking.PointerFromScreen(mouse.X, mouse.Y, rl.GetScreenWidth(), rl.GetScreenHeight())
	}
	if !overPanel && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		g.Picker.Press()
	}

	if rl.IsKeyPressed(rl.KeySpace) || g.Panel.DropRequested {
		g.Panel.DropRequested = false
		g.StartDrop()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.Renderer.Grid = g.DebugMode
	}

	f := g.Step()
	g.frameLog.Debug().
		Uint64("frame", f.Index).
		Float32("delta", f.Delta).
		Bool("hovering", g.Picker.Hovering()).
		Msg("tick")

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	g.Renderer.Draw(g.World.Camera.GetRaylibCamera(), g.World.Scene.GameObjects)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.Panel.Draw(g.status())
	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) status() panel.Status {
	s := panel.Status{
		Hovering: g.Picker.Hovering(),
		FPS:      rl.GetFPS(),
		Dropping: g.Drop.Started() && !g.Drop.Done(),
	}
	if obj := g.Picker.Selection().Object; obj != nil {
		s.Object = obj.Name
	}
	return s
}

func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	rl.DrawText("Space to drop, F1 to toggle debug view", screenW-400, 10, 20, rl.DarkGray)

	if !g.DebugMode {
		return
	}
	next, periodic := g.Scheduler.Pending()
	cam := g.World.Camera.Position
	lines := []string{
		fmt.Sprintf("Camera:  (%.2f, %.2f, %.2f)", cam.X, cam.Y, cam.Z),
		fmt.Sprintf("Pointer: (%.2f, %.2f)", g.pointer.X, g.pointer.Y),
		fmt.Sprintf("Frame:   %d  elapsed %s", g.last.Index, g.last.Elapsed.Truncate(time.Millisecond)),
		fmt.Sprintf("Pending: %d next, %d periodic", next, periodic),
		fmt.Sprintf("Drop:    %d frames", g.Drop.Frames()),
		fmt.Sprintf("Update:  %.2f ms", g.updateMs),
		fmt.Sprintf("Draw:    %.2f ms", g.drawMs),
	}
	y := int32(panel.Height + 30)
	for _, l := range lines {
		rl.DrawText(l, 10, y, 16, rl.Green)
		y += 20
	}
}

func setCursor(hovering bool) {
	if hovering {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)
}

var (
	_ animation.ParamSource = (*panel.Panel)(nil)
	_ animation.Overlay     = (*picking.Controller)(nil)
)

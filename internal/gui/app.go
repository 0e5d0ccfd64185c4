package gui

import (
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/emviz/internal/catalog"
	"github.com/san-kum/emviz/internal/config"
	"github.com/san-kum/emviz/internal/lifecycle"
	"github.com/san-kum/emviz/internal/scene"
	"github.com/san-kum/emviz/internal/viz"
)

var (
	ColBg      = rl.NewColor(15, 23, 42, 255)
	ColText    = rl.NewColor(226, 232, 240, 255)
	ColTextDim = rl.NewColor(100, 116, 139, 255)
	ColAccent  = rl.NewColor(56, 189, 248, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
)

// App is the raylib window host. It owns the scene root and drives the
// lifecycle manager from its frame loop.
type App struct {
	root  *scene.Root
	dev   *scene.Tracker
	mgr   *lifecycle.Manager
	orbit *viz.Orbit
	log   *slog.Logger

	Params   config.Params
	Category catalog.Category
	Concepts []catalog.Descriptor
	Selected int
	ShowHelp bool
}

func initWindow(w, h int32) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(w, h, "emviz")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config, log *slog.Logger) *App {
	if log == nil {
		log = slog.Default()
	}
	root := scene.NewRoot()
	dev := scene.NewTracker()
	a := &App{
		root:   root,
		dev:    dev,
		mgr:    lifecycle.New(root, dev, lifecycle.WithLogger(log)),
		orbit:  viz.NewOrbit(),
		log:    log,
		Params: cfg.Params.Clamp(),
	}
	a.orbit.AutoRotate = cfg.View.AutoRotate
	a.orbit.AutoRotateSpeed = cfg.View.AutoRotateSpeed
	a.setCategory(a.Params.Category)
	return a
}

// Run opens the window, loads initial if it names a concept, and blocks
// until the window is closed.
func Run(cfg *config.Config, log *slog.Logger, initial string) error {
	initWindow(1280, 720)
	defer rl.CloseWindow()

	a := NewApp(cfg, log)
	if d, ok := catalog.Lookup(initial); ok {
		a.setCategory(d.Category)
		for i, c := range a.Concepts {
			if c.ID == initial {
				a.load(i)
			}
		}
	}
	a.RunLoop()
	return a.mgr.Clear()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) setCategory(c catalog.Category) {
	a.Category = c
	a.Params.Category = c
	a.Concepts = catalog.ByCategory(c)
	a.Selected = -1
	if err := a.mgr.SwitchCategory(c); err != nil {
		a.log.Error("switch category", "err", err)
	}
}

func (a *App) load(i int) {
	if i < 0 || i >= len(a.Concepts) {
		return
	}
	a.Selected = i
	id := a.Concepts[i].ID
	a.Params.ActiveConcept = id
	if err := a.mgr.Load(id, a.Params); err != nil {
		a.log.Error("load", "concept", id, "err", err)
	}
}

func (a *App) changed(ctl config.Control) {
	if config.Triggers(ctl, a.Category) && a.mgr.State() == lifecycle.Active {
		if err := a.mgr.Reload(a.Params); err != nil {
			a.log.Error("reload", "err", err)
		}
	}
}

// Update handles one frame of input and advances the orbit. It reports
// whether the user asked to quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return true
	case rl.IsKeyPressed(rl.KeyOne):
		a.setCategory(catalog.Electrostatics)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.setCategory(catalog.Magnetostatics)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressed(rl.KeyJ):
		a.load((a.Selected + 1) % len(a.Concepts))
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressed(rl.KeyK):
		i := a.Selected - 1
		if i < 0 {
			i = len(a.Concepts) - 1
		}
		a.load(i)
	case rl.IsKeyPressed(rl.KeyEscape):
		a.Selected = -1
		a.Params.ActiveConcept = ""
		if err := a.mgr.Clear(); err != nil {
			a.log.Error("clear", "err", err)
		}
	case rl.IsKeyPressed(rl.KeyP), rl.IsKeyPressed(rl.KeySpace):
		a.orbit.AutoRotate = !a.orbit.AutoRotate
	case rl.IsKeyPressed(rl.KeyR):
		a.orbit.Reset()
	case rl.IsKeyPressed(rl.KeyL):
		a.Params.ShowLabels = !a.Params.ShowLabels
		a.changed(config.ControlLabels)
	case rl.IsKeyPressed(rl.KeyE):
		a.Params.ShowEquipotential = !a.Params.ShowEquipotential
		a.changed(config.ControlEquipotential)
	case rl.IsKeyPressed(rl.KeyV):
		a.Params.ShowFieldVectors = !a.Params.ShowFieldVectors
		a.changed(config.ControlVectors)
	case rl.IsKeyPressed(rl.KeyH), rl.IsKeyPressed(rl.KeySlash):
		a.ShowHelp = !a.ShowHelp
	case rl.IsKeyPressed(rl.KeyRight):
		a.step(1)
	case rl.IsKeyPressed(rl.KeyLeft):
		a.step(-1)
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		d := rl.GetMouseDelta()
		left, up := orbitDelta(d.X, d.Y, float32(rl.GetScreenHeight()))
		a.orbit.RotateLeft(left)
		a.orbit.RotateUp(up)
	}
	a.orbit.Dolly(wheelDolly(rl.GetMouseWheelMove()))
	a.orbit.Tick(float64(rl.GetFrameTime()))
	return false
}

// step moves the unit's slider: charge in electrostatics, current in
// magnetostatics.
func (a *App) step(dir float64) {
	if a.Category == catalog.Magnetostatics {
		a.Params.Current = math.Round((a.Params.Current+dir*config.SliderStep)*10) / 10
		a.Params = a.Params.Clamp()
		a.changed(config.ControlCurrent)
		return
	}
	a.Params.Charge = math.Round((a.Params.Charge+dir*config.SliderStep)*10) / 10
	a.Params = a.Params.Clamp()
	a.changed(config.ControlCharge)
}

func (a *App) camera() rl.Camera3D {
	return rl.NewCamera3D(
		vec(a.orbit.Eye()),
		vec(a.orbit.Target),
		rl.NewVector3(0, 1, 0),
		float32(a.orbit.FOV*180/math.Pi),
		rl.CameraPerspective,
	)
}

func (a *App) Draw() {
	cam := a.camera()
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(cam)
	rl.DrawGrid(20, 1)
	var labels []*scene.Primitive
	a.root.Traverse(func(p *scene.Primitive) {
		if p.Kind == scene.KindLabel {
			labels = append(labels, p)
			return
		}
		drawPrimitive(p)
	})
	rl.EndMode3D()

	for _, p := range labels {
		drawLabel(p, cam)
	}
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	x, y := int32(20), int32(20)
	rl.DrawText("EMVIZ  "+a.Category.Badge()+"  "+a.Category.Title(), x, y, 20, ColAccent)
	y += 34

	for i, d := range a.Concepts {
		col := ColTextDim
		prefix := "  "
		if i == a.Selected {
			col, prefix = ColSelect, "> "
		}
		rl.DrawText(prefix+d.Label, x, y, 16, col)
		y += 20
	}
	y += 12

	slider := fmt.Sprintf("Charge (Q)  %.1f", a.Params.Charge)
	if a.Category == catalog.Magnetostatics {
		slider = fmt.Sprintf("Current (I)  %.1f", a.Params.Current)
	}
	rl.DrawText(slider, x, y, 16, ColText)
	y += 20
	rl.DrawText(fmt.Sprintf("labels %s  equipotential %s  vectors %s",
		viz.Toggle(a.Params.ShowLabels), viz.Toggle(a.Params.ShowEquipotential), viz.Toggle(a.Params.ShowFieldVectors)),
		x, y, 16, ColText)
	y += 28

	if d, ok := catalog.Lookup(a.mgr.ActiveID()); ok {
		rl.DrawText(d.Description, x, int32(rl.GetScreenHeight())-60, 16, ColText)
	} else {
		rl.DrawText("Select a visualization with the arrow keys.", x, int32(rl.GetScreenHeight())-60, 16, ColTextDim)
	}

	status := "Pause"
	if !a.orbit.AutoRotate {
		status = "Play"
	}
	rl.DrawText(fmt.Sprintf("[P] %s  [R] Reset  [H] Help  live %d", status, a.dev.Live()),
		x, int32(rl.GetScreenHeight())-32, 16, ColTextDim)

	if a.ShowHelp {
		help := "1/2 unit   up/down concept   esc clear\n" +
			"left/right slider   L labels   E equipotential   V vectors\n" +
			"drag orbit   wheel zoom   P play/pause   R reset   Q quit"
		rl.DrawText(help, x, y, 16, ColAccent)
	}
}

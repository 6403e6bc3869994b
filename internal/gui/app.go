package gui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/synesthetica/internal/config"
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/storage"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColPanel   = rl.NewColor(18, 18, 24, 230)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColError   = rl.NewColor(255, 71, 87, 255)
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Options configures a window session.
type Options struct {
	Window    config.WindowConfig
	Mode      string
	Params    engine.Params
	Function  string
	Algorithm string

	AdaptiveCentering    bool
	ShowEquation         bool
	ShowEditableEquation bool

	// Store receives the workspace on S. Nil disables saving.
	Store *storage.Store
	Base  storage.Workspace
}

type App struct {
	reg     *engine.Registry
	driver  *engine.Driver
	surface *Surface
	logger  *log.Logger
	opts    Options
	font    rl.Font

	function string
	fnErr    error
	preset   int

	editing bool
	draft   []rune

	showEquation bool
	showHelp     bool
	paramSel     int
	status       string
	statusAt     time.Time

	pinchDist float64
	pinchMid  rl.Vector2
}

// initWindow opens the window at the configured size and frame rate and
// disables the default exit key.
func initWindow(w config.WindowConfig) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), "synesthetica")
	rl.SetTargetFPS(int32(w.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when installed and falls back to the
// raylib default font.
func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp selects opts.Mode in a fresh session. It needs an open window.
func NewApp(reg *engine.Registry, logger *log.Logger, seed uint64, opts Options) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}
	sess := engine.NewSession(reg, logger, seed)
	a := &App{
		reg:          reg,
		driver:       engine.NewDriver(sess),
		surface:      NewSurface(ColBg),
		logger:       logger,
		opts:         opts,
		font:         loadFont(),
		preset:       -1,
		showEquation: opts.ShowEquation,
	}
	a.driver.AdaptiveCentering = opts.AdaptiveCentering
	a.driver.ControlsHeight = float64(opts.Window.ControlsHeight)

	sess.SetParams(opts.Params)
	w, h := a.surface.Size()
	if err := sess.Select(opts.Mode, opts.Algorithm, engine.Bounds{W: w, H: h}); err != nil {
		return nil, err
	}
	a.setFunction(opts.Function)
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(reg *engine.Registry, logger *log.Logger, seed uint64, opts Options) error {
	initWindow(opts.Window)
	defer rl.CloseWindow()

	app, err := NewApp(reg, logger, seed, opts)
	if err != nil {
		return err
	}
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) setFunction(src string) {
	f, err := evaluator.Compile(src)
	a.function, a.fnErr = src, err
	a.driver.Eval = f
	if err != nil {
		a.logger.Warn("function rejected, rendering idle", "function", src, "err", err)
	}
}

func (a *App) notify(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	a.statusAt = time.Now()
}

// Update handles input. It returns false when the user quits.
func (a *App) Update() bool {
	a.gestures()
	if a.editing {
		a.editKeys()
		return true
	}

	sess := a.driver.Session
	cam := a.driver.Camera
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		a.driver.Clock.Toggle()
	case rl.IsKeyPressed(rl.KeyR):
		sess.Reinit()
	case rl.IsKeyPressed(rl.KeyZero), rl.IsKeyPressed(rl.KeyHome):
		cam.Reset()
	case rl.IsKeyPressed(rl.KeyN):
		step := 1
		if shift {
			step = -1
		}
		a.selectMode(a.reg.Next(sess.Mode(), step), engine.DefaultAlgorithm)
	case rl.IsKeyPressed(rl.KeyA):
		a.nextAlgorithm()
	case rl.IsKeyPressed(rl.KeyTab):
		if n := len(sess.Algorithm().Params); n > 0 {
			a.paramSel = (a.paramSel + 1) % n
		}
	case rl.IsKeyPressed(rl.KeyUp), rl.IsKeyPressedRepeat(rl.KeyUp):
		a.adjustParam(1)
	case rl.IsKeyPressed(rl.KeyDown), rl.IsKeyPressedRepeat(rl.KeyDown):
		a.adjustParam(-1)
	case rl.IsKeyPressed(rl.KeyP):
		a.preset = (a.preset + 1) % len(config.Presets)
		p := config.Presets[a.preset]
		a.setFunction(p.Equation)
		a.notify("preset: %s", p.Name)
	case rl.IsKeyPressed(rl.KeyC):
		a.driver.AdaptiveCentering = !a.driver.AdaptiveCentering
	case rl.IsKeyPressed(rl.KeyE):
		a.showEquation = !a.showEquation
	case rl.IsKeyPressed(rl.KeySlash) && a.opts.ShowEditableEquation:
		a.editing = true
		a.draft = []rune(a.function)
	case rl.IsKeyPressed(rl.KeyS):
		a.save()
	case rl.IsKeyPressed(rl.KeyF1):
		a.showHelp = !a.showHelp
	}
	return true
}

// gestures maps pointer input onto the camera: left drag rotates, right
// drag pans, the wheel zooms, and two touch points pinch.
func (a *App) gestures() {
	cam := a.driver.Camera
	d := rl.GetMouseDelta()
	switch {
	case rl.IsMouseButtonDown(rl.MouseLeftButton):
		cam.Drag(float64(d.X), float64(d.Y))
	case rl.IsMouseButtonDown(rl.MouseRightButton), rl.IsMouseButtonDown(rl.MouseMiddleButton):
		cam.PanBy(float64(d.X), float64(d.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Wheel(-float64(wheel))
	}

	if rl.GetTouchPointCount() < 2 {
		a.pinchDist = 0
		return
	}
	p0, p1 := rl.GetTouchPosition(0), rl.GetTouchPosition(1)
	dist := float64(rl.Vector2Distance(p0, p1))
	mid := rl.Vector2Scale(rl.Vector2Add(p0, p1), 0.5)
	if a.pinchDist > 0 {
		cam.Pinch(a.pinchDist, dist)
		cam.PinchPan(float64(mid.X-a.pinchMid.X), float64(mid.Y-a.pinchMid.Y))
	}
	a.pinchDist, a.pinchMid = dist, mid
}

// editKeys edits the equation draft. Enter applies it, Escape cancels.
func (a *App) editKeys() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		a.draft = append(a.draft, r)
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace), rl.IsKeyPressedRepeat(rl.KeyBackspace):
		if len(a.draft) > 0 {
			a.draft = a.draft[:len(a.draft)-1]
		}
	case rl.IsKeyPressed(rl.KeyEnter):
		a.editing = false
		a.setFunction(string(a.draft))
	case rl.IsKeyPressed(rl.KeyEscape):
		a.editing = false
	}
}

func (a *App) bounds() engine.Bounds {
	w, h := a.surface.Size()
	return engine.Bounds{W: w, H: h}
}

func (a *App) selectMode(mode, alg string) {
	sess := a.driver.Session
	if err := sess.Switch(mode, alg, nil, a.bounds()); err != nil {
		a.notify("%v", err)
		return
	}
	a.paramSel = 0
}

func (a *App) nextAlgorithm() {
	sess := a.driver.Session
	mode, err := a.reg.Mode(sess.Mode())
	if err != nil {
		return
	}
	for i, alg := range mode.Algorithms {
		if alg.ID == sess.Algorithm().ID {
			a.selectMode(mode.ID, mode.Algorithms[(i+1)%len(mode.Algorithms)].ID)
			return
		}
	}
}

func (a *App) adjustParam(dir float64) {
	sess := a.driver.Session
	decls := sess.Algorithm().Params
	if a.paramSel >= len(decls) {
		return
	}
	d := decls[a.paramSel]
	step := d.Step
	if step <= 0 {
		step = (d.Max - d.Min) / 100
	}
	v := sess.Effective().Get(d.ID, d.Default) + dir*step
	sess.SetParam(d.ID, evaluator.Clamp(v, d.Min, d.Max))
}

// Workspace returns the base workspace updated with the live view.
func (a *App) Workspace() storage.Workspace {
	ws := a.opts.Base
	sess := a.driver.Session
	ws.FunctionInput = a.function
	ws.CurrentMode = sess.Mode()
	ws.Algorithm = sess.Algorithm().ID
	ws.Parameters = sess.Params()
	ws.UseAdaptiveCentering = a.driver.AdaptiveCentering
	ws.ShowEquation = a.showEquation
	return ws
}

func (a *App) save() {
	if a.opts.Store == nil {
		a.notify("no workspace store")
		return
	}
	if err := a.opts.Store.SaveWorkspace(a.Workspace()); err != nil {
		a.logger.Error("workspace not saved", "err", err)
		a.notify("save failed: %v", err)
		return
	}
	a.notify("workspace saved")
}

func (a *App) Draw() {
	rl.BeginDrawing()
	if err := a.driver.Frame(a.surface, time.Now()); err != nil {
		a.notify("%v", err)
	}
	a.surface.Finish()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	sess := a.driver.Session
	mode, _ := a.reg.Mode(sess.Mode())
	alg := sess.Algorithm()
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	bar := a.opts.Window.ControlsHeight

	a.drawText("synesthetica", 30, 24, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s / %s", mode.Name, alg.Name), 200, 28, 16, ColText)

	status, col := "RUNNING", ColSelect
	if !a.driver.Clock.Playing() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, w-130, 24, 16, col)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), w-130, 46, 14, ColTextDim)

	if a.showEquation || a.editing {
		eq := "f(x, t) = " + a.function
		if a.editing {
			eq = "f(x, t) = " + string(a.draft) + "_"
		}
		a.drawText(eq, 30, 56, 18, ColAccent)
	}
	if a.fnErr != nil {
		a.drawText(a.fnErr.Error(), 30, 80, 14, ColError)
	}

	y := h - bar
	rl.DrawRectangle(0, int32(y), int32(w), int32(bar), ColPanel)
	x := 30
	eff := sess.Effective()
	for i, d := range alg.Params {
		c := ColText
		if i == a.paramSel {
			c = ColSelect
		}
		a.drawText(fmt.Sprintf("%s %.2f", d.Name, eff.Get(d.ID, d.Default)), x, y+16, 14, c)
		x += 200
		if x > w-200 {
			break
		}
	}
	a.drawText("[SPACE] PAUSE  [N] MODE  [A] ALG  [TAB/UP/DOWN] TUNE  [P] PRESET  [S] SAVE  [F1] HELP  [Q] QUIT", 30, h-28, 14, ColTextDim)

	if a.status != "" && time.Since(a.statusAt) < 3*time.Second {
		a.drawText(a.status, 30, y-24, 14, ColAccent)
	}
	if a.showHelp {
		a.drawHelp(w)
	}
}

var helpLines = []string{
	"Mouse drag     rotate",
	"Right drag     pan",
	"Wheel / pinch  zoom",
	"0 / Home       reset view",
	"R              restart simulation",
	"C              adaptive centering",
	"E              show equation",
	"/              edit equation",
}

func (a *App) drawHelp(w int) {
	x, y := w-360, 90
	rl.DrawRectangle(int32(x-16), int32(y-16), 340, int32(len(helpLines)*22+24), ColPanel)
	for i, l := range helpLines {
		a.drawText(l, x, y+i*22, 16, ColAccent)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, strings.TrimSpace(text), rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

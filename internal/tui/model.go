package tui

import (
	"fmt"
	"image"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/synesthetica/internal/config"
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/export"
	"github.com/san-kum/synesthetica/internal/storage"
	"github.com/san-kum/synesthetica/internal/viz"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 120
	// panelWidth is the columns reserved for the stats panel.
	panelWidth = 48
	// panStep is the pan distance of one key press, in dots.
	panStep = 8
	// rotateStep is the pointer drag one key press stands for.
	rotateStep = 20
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth - 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

type TickMsg time.Time

// Options configures a terminal session.
type Options struct {
	Width, Height int
	FPS           int
	Mode          string
	Algorithm     string
	Params        engine.Params
	Function      string
	Theme         string
	// ControlsHeight is in dots when adaptive centering is on.
	ControlsHeight    float64
	AdaptiveCentering bool
	GIFPath           string
	// MaxFrames caps a GIF recording; reaching it ends the recording.
	// Zero means export.MaxWarmup.
	MaxFrames int
	SVGPath   string
	// Store receives the workspace on "s". Nil disables saving.
	Store *storage.Store
	Base  storage.Workspace
}

// Model drives one engine.Session on a braille surface.
type Model struct {
	reg     *engine.Registry
	driver  *engine.Driver
	logger  *log.Logger
	canvas  *viz.Canvas
	surface *viz.Surface
	opts    Options

	function string
	fnErr    error
	preset   int

	fnHistory []float64
	selected  int

	drag      bool
	lastMouse struct{ x, y int }

	recording bool
	frames    []*image.Paletted
	showHelp  bool
	status    string
	err       error
}

// New selects opts.Mode in a fresh session. Unknown modes or algorithms
// are errors; a bad function is reported in the panel and renders idle.
func New(reg *engine.Registry, logger *log.Logger, seed uint64, opts Options) (*Model, error) {
	if opts.Width <= 0 {
		opts.Width = width
	}
	if opts.Height <= 0 {
		opts.Height = height
	}
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "synesthetica.gif"
	}
	if opts.MaxFrames <= 0 {
		opts.MaxFrames = export.MaxWarmup
	}
	if opts.SVGPath == "" {
		opts.SVGPath = "synesthetica.svg"
	}
	if logger == nil {
		logger = log.Default()
	}
	viz.SetTheme(opts.Theme)

	canvas := viz.NewCanvas(opts.Width, opts.Height)
	m := &Model{
		reg:       reg,
		logger:    logger,
		canvas:    canvas,
		surface:   viz.NewSurface(canvas),
		opts:      opts,
		preset:    -1,
		fnHistory: make([]float64, 0, historyCapacity),
	}

	sess := engine.NewSession(reg, logger, seed)
	m.driver = engine.NewDriver(sess)
	m.driver.AdaptiveCentering = opts.AdaptiveCentering
	m.driver.ControlsHeight = opts.ControlsHeight
	sess.SetParams(opts.Params)
	if err := sess.Select(opts.Mode, opts.Algorithm, m.bounds()); err != nil {
		return nil, err
	}
	m.setFunction(opts.Function)
	return m, nil
}

func (m *Model) bounds() engine.Bounds {
	w, h := m.surface.Size()
	return engine.Bounds{W: w, H: h}
}

func tick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return tick(m.opts.FPS) }

// Update handles input events and advances the animation.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width-panelWidth-2, msg.Height-1)
	case TickMsg:
		m.step(time.Time(msg))
		return m, tick(m.opts.FPS)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	cam := m.driver.Camera
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return tea.Quit
	case " ":
		m.driver.Clock.Toggle()
	case "r":
		m.driver.Session.Reinit()
	case "0":
		cam.Reset()
	case "n":
		m.switchMode(1)
	case "N":
		m.switchMode(-1)
	case "a":
		m.cycleAlgorithm()
	case "tab":
		m.cycleParam()
	case "up", "k":
		m.adjustParam(1)
	case "down", "j":
		m.adjustParam(-1)
	case "left", "h":
		cam.PanBy(-panStep, 0)
	case "right", "l":
		cam.PanBy(panStep, 0)
	case "K":
		cam.PanBy(0, -panStep)
	case "J":
		cam.PanBy(0, panStep)
	case "x":
		cam.Drag(0, rotateStep)
	case "X":
		cam.Drag(0, -rotateStep)
	case "y":
		cam.Drag(rotateStep, 0)
	case "Y":
		cam.Drag(-rotateStep, 0)
	case "+", "=":
		cam.Wheel(-1)
	case "-", "_":
		cam.Wheel(1)
	case "c":
		m.driver.AdaptiveCentering = !m.driver.AdaptiveCentering
	case "p":
		m.nextPreset()
	case "t":
		m.nextTheme()
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = m.frames[:0]
		}
	case "v":
		m.exportSVG()
	case "s":
		m.save()
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

// handleMouse maps a left drag to rotation, a right drag to pan, and the
// wheel to zoom. Cell deltas are converted to dots.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	cam := m.driver.Camera
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		cam.Wheel(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		cam.Wheel(1)
	case msg.Action == tea.MouseActionPress:
		m.drag = true
		m.lastMouse.x, m.lastMouse.y = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.drag = false
	case msg.Action == tea.MouseActionMotion && m.drag:
		dx, dy := float64(msg.X-m.lastMouse.x)*2, float64(msg.Y-m.lastMouse.y)*4
		m.lastMouse.x, m.lastMouse.y = msg.X, msg.Y
		if msg.Button == tea.MouseButtonRight {
			cam.PanBy(dx, dy)
		} else {
			cam.Drag(dx, dy)
		}
	}
}

func (m *Model) resize(w, h int) {
	w, h = max(w, 10), max(h, 4)
	if w == m.canvas.Width && h == m.canvas.Height {
		return
	}
	m.canvas = viz.NewCanvas(w, h)
	m.surface = viz.NewSurface(m.canvas)
	m.frames = m.frames[:0]
	m.driver.Session.Resize(m.bounds())
}

// step draws one frame at wall time now.
func (m *Model) step(now time.Time) {
	if err := m.driver.Frame(m.surface, now); err != nil {
		m.err = err
	}
	t := m.driver.Clock.Time()
	if m.driver.Clock.Playing() {
		v := evaluator.OrZero(m.driver.Eval)(0, t, 1, 1, 1)
		if len(m.fnHistory) == historyCapacity {
			m.fnHistory = append(m.fnHistory[:0], m.fnHistory[1:]...)
		}
		m.fnHistory = append(m.fnHistory, v)
	}
	if m.recording {
		m.frames = append(m.frames, m.canvas.Image(8, 16, viz.CurrentTheme.Canvas))
		if len(m.frames) >= m.opts.MaxFrames {
			m.stopRecording()
		}
	}
}

func (m *Model) setFunction(src string) {
	f, err := evaluator.Compile(src)
	m.function, m.fnErr = src, err
	m.driver.Eval = f
	m.fnHistory = m.fnHistory[:0]
	if err != nil {
		m.logger.Warn("function rejected, rendering idle", "function", src, "err", err)
	}
}

func (m *Model) nextPreset() {
	m.preset = (m.preset + 1) % len(config.Presets)
	p := config.Presets[m.preset]
	m.setFunction(p.Equation)
	m.status = "preset: " + p.Name
}

func (m *Model) switchMode(step int) {
	sess := m.driver.Session
	next := m.reg.Next(sess.Mode(), step)
	if err := sess.Switch(next, engine.DefaultAlgorithm, nil, m.bounds()); err != nil {
		m.err = err
		return
	}
	m.selected = 0
	m.err = nil
}

func (m *Model) cycleAlgorithm() {
	sess := m.driver.Session
	mode, err := m.reg.Mode(sess.Mode())
	if err != nil {
		m.err = err
		return
	}
	cur := sess.Algorithm().ID
	for i, a := range mode.Algorithms {
		if a.ID == cur {
			m.err = sess.Switch(mode.ID, mode.Algorithms[(i+1)%len(mode.Algorithms)].ID, nil, m.bounds())
			m.selected = 0
			return
		}
	}
}

func (m *Model) cycleParam() {
	n := len(m.driver.Session.Algorithm().Params)
	if n == 0 {
		return
	}
	m.selected = (m.selected + 1) % n
}

// adjustParam moves the selected parameter by one declared step, kept
// inside its declared range.
func (m *Model) adjustParam(dir float64) {
	sess := m.driver.Session
	decls := sess.Algorithm().Params
	if m.selected >= len(decls) {
		return
	}
	d := decls[m.selected]
	step := d.Step
	if step <= 0 {
		step = (d.Max - d.Min) / 100
	}
	v := sess.Effective().Get(d.ID, d.Default) + dir*step
	sess.SetParam(d.ID, evaluator.Clamp(v, d.Min, d.Max))
}

// nextTheme switches the HUD theme and, when the algorithm has a palette
// parameter, the matching palette.
func (m *Model) nextTheme() {
	th := viz.NextTheme()
	if th.Palette < 0 {
		return
	}
	if _, ok := m.driver.Session.Algorithm().Param("palette"); ok {
		m.driver.Session.SetParam("palette", float64(th.Palette))
	}
}

func (m *Model) stopRecording() {
	m.recording = false
	if err := saveGIF(m.opts.GIFPath, m.frames, m.opts.FPS); err != nil {
		m.err = err
		m.logger.Error("gif not saved", "path", m.opts.GIFPath, "err", err)
	} else if len(m.frames) > 0 {
		m.status = fmt.Sprintf("saved %d frames to %s", len(m.frames), m.opts.GIFPath)
		m.logger.Info("gif saved", "path", m.opts.GIFPath, "frames", len(m.frames))
	}
	m.frames = nil
}

// exportSVG writes the current canvas as dots in their cell colors.
func (m *Model) exportSVG() {
	doc := export.CanvasToSVG(m.canvas, 4, viz.CurrentTheme.Canvas)
	if err := os.WriteFile(m.opts.SVGPath, []byte(doc), 0644); err != nil {
		m.err = err
		m.logger.Error("svg not saved", "path", m.opts.SVGPath, "err", err)
		return
	}
	m.status = "saved " + m.opts.SVGPath
}

// Workspace returns the base workspace updated with the live view.
func (m *Model) Workspace() storage.Workspace {
	ws := m.opts.Base
	sess := m.driver.Session
	ws.FunctionInput = m.function
	ws.CurrentMode = sess.Mode()
	ws.Algorithm = sess.Algorithm().ID
	ws.Parameters = sess.Params()
	ws.UseAdaptiveCentering = m.driver.AdaptiveCentering
	return ws
}

func (m *Model) save() {
	if m.opts.Store == nil {
		m.status = "no workspace store"
		return
	}
	if err := m.opts.Store.SaveWorkspace(m.Workspace()); err != nil {
		m.err = err
		return
	}
	m.status = "workspace saved"
}

// View renders the canvas with the stats panel on its right.
func (m *Model) View() string {
	sess := m.driver.Session
	mode, _ := m.reg.Mode(sess.Mode())
	alg := sess.Algorithm()

	var s strings.Builder
	s.WriteString(viz.Header(strings.ToUpper(mode.Name)) + "\n")
	s.WriteString(viz.Title(alg.Name) + "\n\n")

	switch {
	case m.recording:
		s.WriteString(viz.StatusRecording.Render(fmt.Sprintf("● REC %d", len(m.frames))))
	case m.driver.Clock.Playing():
		s.WriteString(viz.StatusRunning.Render("RUNNING"))
	default:
		s.WriteString(viz.StatusPaused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	if hist := finiteOnly(m.fnHistory); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("f(0, t)"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(viz.SparklineChart(m.fnHistory, 36) + "\n\n")

	cam := m.driver.Camera
	s.WriteString(viz.MetricLabel.Render("Time") + viz.MetricValue.Render(fmt.Sprintf("%.2fs", m.driver.Clock.Time())) + "\n")
	s.WriteString(viz.MetricLabel.Render("Zoom") + viz.MetricValue.Render(fmt.Sprintf("%.2fx", cam.Zoom)) + "\n")
	s.WriteString(viz.MetricLabel.Render("Rotate") + viz.MetricValue.Render(fmt.Sprintf("%.2f, %.2f", cam.Rotation.X, cam.Rotation.Y)) + "\n")
	s.WriteString(viz.MetricLabel.Render("f(x,t)") + viz.MetricValue.Render(m.function) + "\n")
	if m.fnErr != nil {
		s.WriteString(viz.ErrorText.Render(truncate(m.fnErr.Error(), panelWidth-6)) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	eff := sess.Effective()
	if len(alg.Params) == 0 {
		s.WriteString(viz.MetricLabel.Render("  (none)") + "\n")
	}
	for i, d := range alg.Params {
		line := viz.ParamBar(d.Name, eff.Get(d.ID, d.Default), d.Min, d.Max, 10)
		if i == m.selected {
			s.WriteString(viz.ActiveParam.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + viz.Subtle.Render(line) + "\n")
		}
	}

	if m.err != nil {
		s.WriteString("\n" + viz.ErrorText.Render(truncate(m.err.Error(), panelWidth-6)) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + viz.Subtle.Render(m.status) + "\n")
	}
	s.WriteString("\n" + viz.Separator(panelWidth-6) + "\n")
	s.WriteString(viz.KeyHint.Render("SP:Pause N/n:Mode A:Alg P:Preset\nTab ↑↓:Tune T:Theme G:Record ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.Render()), statsStyle.Render(s.String()))
	if m.showHelp {
		return viz.GlassPanel.Render(helpText) + "\n" + main
	}
	return main
}

const helpText = `KEYBOARD SHORTCUTS
  Space      Pause/Resume
  r          Restart the simulation
  n / N      Next / previous mode
  a          Next algorithm
  Tab        Cycle parameters
  Up / Down  Tune parameter
  h/l J/K    Pan
  x/X y/Y    Rotate
  + / -      Zoom
  0          Reset view
  c          Toggle adaptive centering
  p          Next equation preset
  t          Cycle themes
  g          Toggle GIF recording
  v          Export frame as SVG
  s          Save workspace
  q          Quit
Mouse: drag rotates, right-drag pans, wheel zooms`

func finiteOnly(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if evaluator.Finite(v) {
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if n <= 0 || len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}

// Run starts the full-screen program and returns when the user quits.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

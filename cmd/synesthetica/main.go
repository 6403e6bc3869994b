package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/synesthetica/internal/config"
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/gui"
	"github.com/san-kum/synesthetica/internal/modes"
	"github.com/san-kum/synesthetica/internal/storage"
	"github.com/san-kum/synesthetica/internal/tui"
)

var (
	configFile string
	logLevel   string
	dataDir    string
	seed       uint64
	mode       string
	algorithm  string
	function   string
	preset     string
	theme      string
	params     map[string]string
	// tui
	cols, rows int
	// snapshot
	outPath    string
	at         float64
	all        bool
	galleryDir string
	// inspect
	samples    int
	svgPath    string
	lyapunov   bool
	integrator string
	fromValue  float64
	toValue    float64
)

// session is everything a command needs, resolved from defaults, the
// config file, the saved workspace and finally the command line.
type session struct {
	cfg    *config.Config
	ws     storage.Workspace
	store  *storage.Store
	logger *log.Logger
	params engine.Params
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "synesthetica",
		Short:         "see a function of x and t through many visual metaphors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGUI,
	}

	addSessionFlags(rootCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the visualizer window",
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualizer in the terminal",
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&cols, "cols", 80, "canvas width in cells")
	tuiCmd.Flags().IntVar(&rows, "rows", 24, "canvas height in cells")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame to an SVG file",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "synesthetica.svg", "output file")
	snapshotCmd.Flags().Float64Var(&at, "at", 2, "animation time in seconds")
	snapshotCmd.Flags().BoolVar(&all, "all", false, "render every mode and algorithm")
	snapshotCmd.Flags().StringVar(&galleryDir, "dir", "gallery", "output directory for --all")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "plot and analyze the function",
		RunE:  runInspect,
	}
	inspectCmd.Flags().Float64Var(&at, "at", 0, "time t to sample at")
	inspectCmd.Flags().IntVar(&samples, "samples", 160, "samples across the range")
	inspectCmd.Flags().Float64Var(&fromValue, "from", -10, "start of the x range")
	inspectCmd.Flags().Float64Var(&toValue, "to", 10, "end of the x range")
	inspectCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curve to this SVG file")
	inspectCmd.Flags().BoolVar(&lyapunov, "lyapunov", false, "estimate exponents of the attractor systems")
	inspectCmd.Flags().StringVar(&integrator, "integrator", "euler", "integrator for --lyapunov (euler, rk4)")

	modesCmd := &cobra.Command{
		Use:   "modes [mode]",
		Short: "list modes, or the algorithms and parameters of one mode",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listModes,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset equations",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, snapshotCmd, inspectCmd, modesCmd, presetsCmd, workspaceCommand())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory holding the saved workspace")
	pf.Uint64Var(&seed, "seed", 1, "random seed for stochastic modes")
	pf.StringVar(&mode, "mode", config.DefaultMode, "visualization mode")
	pf.StringVar(&algorithm, "algorithm", config.DefaultAlgorithm, "algorithm within the mode")
	pf.StringVarP(&function, "function", "f", config.DefaultFunction, "expression in x, t, a, b, c")
	pf.StringVar(&preset, "preset", "", "use a named preset equation")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal theme")
	pf.StringToStringVarP(&params, "param", "p", nil, "algorithm parameter, e.g. -p amplitude=60")
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "synesthetica",
		ReportTimestamp: true,
	}), nil
}

// resolve layers the config file and the saved workspace under any flag
// the user set explicitly.
func resolve(cmd *cobra.Command, logOut io.Writer) (*session, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("data-dir") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") || cfg.Theme == "" {
		cfg.Theme = theme
	}

	logger, err := newLogger(logOut, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store := storage.New(cfg.DataDir)
	ws, err := store.LoadWorkspace()
	switch {
	case errors.Is(err, storage.ErrNoWorkspace):
		ws = storage.DefaultWorkspace()
		if configFile != "" {
			ws.CurrentMode, ws.Algorithm, ws.FunctionInput = cfg.Mode, cfg.Algorithm, cfg.Function
		}
	case err != nil:
		logger.Warn("ignoring unreadable workspace", "path", store.Path(), "err", err)
		ws = storage.DefaultWorkspace()
	default:
		logger.Debug("workspace loaded", "path", store.Path())
	}

	if flags.Changed("mode") {
		ws.CurrentMode = mode
	}
	if flags.Changed("algorithm") {
		ws.Algorithm = algorithm
	}
	if flags.Changed("function") {
		ws.FunctionInput = function
	}
	if flags.Changed("preset") {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		ws.FunctionInput = p.Equation
	}

	ps := ws.Parameters.Clone()
	if flags.Changed("mode") || flags.Changed("algorithm") {
		ps = engine.Params{}
	}
	for k, v := range params {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		ps[k] = f
	}
	ws.Parameters = ps

	return &session{cfg: cfg, ws: ws, store: store, logger: logger, params: ps}, nil
}

// logToFile creates the data dir, redirects the logger to its log file
// and writes pending first.
func (s *session) logToFile(pending *bytes.Buffer) (*os.File, error) {
	if err := s.store.Init(); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(s.cfg.DataDir, "synesthetica.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	if _, err := pending.WriteTo(f); err != nil {
		f.Close()
		return nil, err
	}
	s.logger.SetOutput(f)
	return f, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, os.Stderr)
	if err != nil {
		return err
	}
	if err := s.store.Init(); err != nil {
		return err
	}
	s.logger.Info("opening window", "mode", s.ws.CurrentMode, "function", s.ws.FunctionInput)
	return gui.Run(modes.Registry(), s.logger, s.cfg.Seed, gui.Options{
		Window:               s.cfg.Window,
		Mode:                 s.ws.CurrentMode,
		Algorithm:            s.ws.Algorithm,
		Params:               s.params,
		Function:             s.ws.FunctionInput,
		AdaptiveCentering:    s.ws.UseAdaptiveCentering,
		ShowEquation:         s.ws.ShowEquation,
		ShowEditableEquation: s.ws.ShowEditableEquation,
		Store:                s.store,
		Base:                 s.ws,
	})
}

func runTUI(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs go to a file in the
	// resolved data dir. Anything logged while resolving is replayed there.
	var early bytes.Buffer
	s, err := resolve(cmd, &early)
	if err != nil {
		return err
	}
	logFile, err := s.logToFile(&early)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// The control strip keeps its share of the window height, in dots.
	win := s.cfg.Window
	controls := 0.0
	if win.Height > 0 {
		controls = float64(win.ControlsHeight) / float64(win.Height) * float64(rows*4)
	}

	m, err := tui.New(modes.Registry(), s.logger, s.cfg.Seed, tui.Options{
		Width:             cols,
		Height:            rows,
		FPS:               win.FPS,
		Mode:              s.ws.CurrentMode,
		Algorithm:         s.ws.Algorithm,
		Params:            s.params,
		Function:          s.ws.FunctionInput,
		Theme:             s.cfg.Theme,
		ControlsHeight:    controls,
		AdaptiveCentering: s.ws.UseAdaptiveCentering,
		GIFPath:           filepath.Join(s.cfg.DataDir, "synesthetica.gif"),
		SVGPath:           filepath.Join(s.cfg.DataDir, "synesthetica.svg"),
		Store:             s.store,
		Base:              s.ws,
	})
	if err != nil {
		return err
	}
	return tui.Run(m)
}

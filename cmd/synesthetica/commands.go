package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/synesthetica/internal/analysis"
	"github.com/san-kum/synesthetica/internal/config"
	"github.com/san-kum/synesthetica/internal/dynamo"
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/export"
	"github.com/san-kum/synesthetica/internal/integrators"
	"github.com/san-kum/synesthetica/internal/modes"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
	"github.com/san-kum/synesthetica/internal/storage"
)

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, os.Stderr)
	if err != nil {
		return err
	}
	f, err := evaluator.Compile(s.ws.FunctionInput)
	if err != nil {
		return err
	}

	win := s.cfg.Window
	w, h := float64(win.Width), float64(win.Height)
	if all {
		return runGallery(cmd.Context(), s, f, w, h)
	}

	sess := engine.NewSession(modes.Registry(), s.logger, s.cfg.Seed)
	sess.SetParams(s.params)
	if err := sess.Select(s.ws.CurrentMode, s.ws.Algorithm, engine.Bounds{W: w, H: h}); err != nil {
		return err
	}
	d := engine.NewDriver(sess)
	d.Eval = f
	d.AdaptiveCentering = s.ws.UseAdaptiveCentering
	d.ControlsHeight = float64(win.ControlsHeight)

	svg, err := export.Snapshot(d, w, h, at, win.FPS, render.RGB255(10, 10, 10, 1))
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := svg.WriteTo(out); err != nil {
		return err
	}

	s.logger.Info("snapshot written", "path", outPath, "elements", svg.Elements(), "t", at)
	return nil
}

func runGallery(ctx context.Context, s *session, f evaluator.Func, w, h float64) error {
	if err := os.MkdirAll(galleryDir, 0755); err != nil {
		return err
	}
	g := &export.Gallery{
		Registry:   modes.Registry(),
		Logger:     s.logger,
		Eval:       f,
		Seed:       s.cfg.Seed,
		W:          w,
		H:          h,
		At:         at,
		FPS:        s.cfg.Window.FPS,
		Background: render.RGB255(10, 10, 10, 1),
	}

	start := time.Now()
	results, err := g.Run(ctx, g.Jobs())
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		path := filepath.Join(galleryDir, r.Job.String()+".svg")
		if err := os.WriteFile(path, []byte(r.SVG.String()), 0644); err != nil {
			return err
		}
	}
	s.logger.Info("gallery written", "dir", galleryDir, "frames", len(results)-failed, "failed", failed, "took", time.Since(start))
	if failed > 0 {
		return fmt.Errorf("%d of %d renders failed", failed, len(results))
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := resolve(cmd, os.Stderr)
	if err != nil {
		return err
	}
	f, err := evaluator.Compile(s.ws.FunctionInput)
	if err != nil {
		return err
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}

	fmt.Printf("function: %s\n", s.ws.FunctionInput)
	fmt.Printf("range: [%g, %g] at t = %g\n\n", fromValue, toValue, at)

	xs, ys := analysis.Sample(f, fromValue, toValue, at, samples)
	dys := analysis.Derivatives(f, xs, at)

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{"f(x)", ys},
		{"f'(x)", dys},
	} {
		data := analysis.Finite(series.data)
		if len(data) == 0 {
			fmt.Printf("%s: no finite samples\n\n", series.caption)
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	st := analysis.Summarize(ys)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MIN\tMAX\tMEAN\tFINITE\tZERO CROSSINGS")
	fmt.Fprintf(w, "%.4f\t%.4f\t%.4f\t%.0f%%\t%d\n", st.Min, st.Max, st.Mean, st.Finite*100, st.ZeroCrossings)
	if err := w.Flush(); err != nil {
		return err
	}

	ps, binHz := analysis.Spectrum(f, 1, 16, 1024)
	freq := float64(analysis.DominantBin(ps)) * binHz
	fmt.Printf("\ndominant frequency of f(1, t): %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}

	if lyapunov {
		fmt.Println()
		if _, err := integrators.New(integrator); err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SYSTEM\tLYAPUNOV (%s)\n", integrator)
		for _, sys := range []struct {
			name string
			dyn  dynamo.System
		}{
			{"lorenz", physics.NewLorenz()},
			{"rossler", physics.NewRossler()},
		} {
			integ, _ := integrators.New(integrator)
			x0 := dynamo.State{0.1, 0, 0}
			l := analysis.LyapunovExponent(sys.dyn, integ, x0, 0.005, 60, 1e-8)
			fmt.Fprintf(w, "%s\t%.4f\n", sys.name, l)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if svgPath != "" {
		doc := export.CurveToSVG(xs, ys, 800, 400, render.RGB255(0, 204, 255, 1))
		if err := os.WriteFile(svgPath, []byte(doc), 0644); err != nil {
			return err
		}
		s.logger.Info("curve written", "path", svgPath)
	}
	return nil
}

func listModes(cmd *cobra.Command, args []string) error {
	reg := modes.Registry()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if len(args) == 0 {
		fmt.Fprintln(w, "ID\tNAME\tALGORITHMS\tDESCRIPTION")
		for _, m := range reg.Modes() {
			ids := make([]string, len(m.Algorithms))
			for i, a := range m.Algorithms {
				ids[i] = a.ID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, strings.Join(ids, ","), m.Description)
		}
		return w.Flush()
	}

	m, err := reg.Mode(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n\n", m.Name, m.Description)
	fmt.Fprintln(w, "ALGORITHM\tPARAM\tMIN\tMAX\tSTEP\tDEFAULT")
	for _, a := range m.Algorithms {
		fmt.Fprintf(w, "%s (%s)\t\t\t\t\t\n", a.ID, a.Name)
		for _, p := range a.Params {
			fmt.Fprintf(w, "\t%s\t%g\t%g\t%g\t%g\n", p.ID, p.Min, p.Max, p.Step, p.Default)
		}
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEQUATION")
	for _, p := range config.Presets {
		fmt.Fprintf(w, "%s\t%s\n", p.Name, p.Equation)
	}
	return w.Flush()
}

func workspaceCommand() *cobra.Command {
	wsCmd := &cobra.Command{
		Use:   "workspace",
		Short: "show, save or reset the saved workspace",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "print the workspace the next session would start from",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd, os.Stderr)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s.ws)
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "save the workspace with any mode, function or parameter flags applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd, os.Stderr)
			if err != nil {
				return err
			}
			if err := evaluator.Validate(s.ws.FunctionInput); err != nil {
				return err
			}
			if _, err := modes.Registry().Algorithm(s.ws.CurrentMode, s.ws.Algorithm); err != nil {
				return err
			}
			if err := s.store.Init(); err != nil {
				return err
			}
			if err := s.store.SaveWorkspace(s.ws); err != nil {
				return err
			}
			fmt.Printf("saved %s\n", s.store.Path())
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "delete the saved workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolve(cmd, os.Stderr)
			if err != nil {
				return err
			}
			if err := s.store.ResetWorkspace(); err != nil {
				return err
			}
			fmt.Printf("workspace reset to defaults (%s)\n", storage.WorkspaceKey)
			return nil
		},
	}

	wsCmd.AddCommand(showCmd, saveCmd, resetCmd)
	return wsCmd
}

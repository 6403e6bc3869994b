package export

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/modes"
	"github.com/san-kum/synesthetica/internal/render"
	"github.com/san-kum/synesthetica/internal/viz"
)

func TestSVGPrimitives(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *SVG)
		want string
	}{
		{"line", func(s *SVG) { s.Line(0, 0, 10, 10) }, "<line"},
		{"circle", func(s *SVG) { s.FillArc(5, 5, 2, 0, 2*math.Pi) }, "<circle"},
		{"sector", func(s *SVG) { s.FillArc(5, 5, 2, 0, math.Pi/2) }, "<path"},
		{"arc", func(s *SVG) { s.Arc(5, 5, 2, 0, math.Pi) }, `fill="none"`},
		{"rect", func(s *SVG) { s.FillRect(1, 1, 4, 4) }, "<polygon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSVG(100, 100, render.Black)
			s.SetStroke(render.White)
			s.SetFill(render.White)
			tt.draw(s)
			if s.Elements() != 1 {
				t.Fatalf("elements = %d, want 1", s.Elements())
			}
			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("output missing %q", tt.want)
			}
		})
	}
}

func TestSVGSkipsNonFinite(t *testing.T) {
	s := NewSVG(100, 100, render.Black)
	s.SetStroke(render.White)
	s.SetFill(render.White)
	s.Line(math.NaN(), 0, 1, 1)
	s.FillArc(0, math.Inf(1), 2, 0, 2*math.Pi)
	s.FillRect(0, 0, math.NaN(), 1)
	if s.Elements() != 0 {
		t.Errorf("elements = %d, want 0", s.Elements())
	}
}

func TestSVGTransformAndGlow(t *testing.T) {
	s := NewSVG(100, 100, render.Black)
	s.Translate(50, 50)
	s.SetFill(render.White)
	s.SetShadow(10, render.White)
	s.FillArc(0, 0, 3, 0, 2*math.Pi)

	out := s.String()
	if !strings.Contains(out, `cx="50.00" cy="50.00"`) {
		t.Errorf("circle not translated: %s", out)
	}
	if !strings.Contains(out, `id="glow"`) {
		t.Error("glow filter not defined")
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != out {
		t.Error("WriteTo differs from String")
	}
}

func TestSnapshot(t *testing.T) {
	f, err := evaluator.Compile("a * sin(b * x + t)")
	if err != nil {
		t.Fatal(err)
	}
	sess := engine.NewSession(modes.Registry(), nil, 1)
	if err := sess.Select("fiber", "", engine.Bounds{W: 320, H: 240}); err != nil {
		t.Fatal(err)
	}
	d := engine.NewDriver(sess)
	d.Eval = f

	svg, err := Snapshot(d, 320, 240, 0.5, 30, render.Black)
	if err != nil {
		t.Fatal(err)
	}
	if svg.Elements() == 0 {
		t.Error("snapshot drew nothing")
	}
	if d.Clock.Time() != 0.5 {
		t.Errorf("clock = %v, want 0.5", d.Clock.Time())
	}
	if !strings.HasPrefix(svg.String(), "<?xml") {
		t.Error("missing xml header")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	red := render.RGB255(255, 0, 0, 1)
	c.Paint(1, 1, red, render.BlendNormal)

	out := CanvasToSVG(c, 4, render.Black)
	if strings.Count(out, "<circle") != 1 {
		t.Errorf("want one dot, got %d", strings.Count(out, "<circle"))
	}
	if !strings.Contains(out, red.Hex()) {
		t.Error("dot color missing")
	}
	if CanvasToSVG(nil, 4, render.Black) != "" {
		t.Error("nil canvas should produce nothing")
	}
}

func TestCurveToSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4}
	ys := []float64{0, 1, math.NaN(), 1, 0}
	out := CurveToSVG(xs, ys, 200, 100, render.White)
	if strings.Count(out, "M") < 2 {
		t.Error("NaN should break the path")
	}
	if CurveToSVG([]float64{math.NaN()}, []float64{1}, 10, 10, render.White) != "" {
		t.Error("all-NaN curve should be empty")
	}
}

func TestGallery(t *testing.T) {
	f, err := evaluator.Compile("a * sin(b * x + t)")
	if err != nil {
		t.Fatal(err)
	}
	g := &Gallery{
		Registry:   modes.Registry(),
		Eval:       f,
		Seed:       1,
		W:          200,
		H:          150,
		At:         0.2,
		FPS:        10,
		Background: render.Black,
		Workers:    4,
	}
	jobs := []Job{
		{Mode: "fiber", Algorithm: "v0"},
		{Mode: "nope", Algorithm: "v0"},
		{Mode: "graph", Algorithm: "v0"},
	}
	results, err := g.Run(context.Background(), jobs)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Job != jobs[i] {
			t.Errorf("result %d is %v, want %v", i, r.Job, jobs[i])
		}
	}
	if results[0].Err != nil || results[0].SVG == nil {
		t.Errorf("fiber failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, engine.ErrUnknownMode) {
		t.Errorf("unknown mode error = %v", results[1].Err)
	}
	if len(g.Jobs()) < len(modes.Catalog) {
		t.Error("every mode should contribute at least one job")
	}
}

func TestGalleryCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &Gallery{Registry: modes.Registry(), Eval: evaluator.Zero, W: 10, H: 10}
	if _, err := g.Run(ctx, g.Jobs()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

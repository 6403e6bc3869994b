package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/synesthetica/internal/render"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	if got := c.Grid[0][0]; got != 0x2800|0x1|0x80 {
		t.Errorf("cell = %U, want %U", got, 0x2800|0x1|0x80)
	}
	c.Set(-1, 0)
	c.Set(4, 0)
	if c.Lit() != 2 {
		t.Errorf("Lit() = %d, want 2", c.Lit())
	}
	c.Unset(0, 0)
	if c.Lit() != 1 {
		t.Errorf("Lit() after Unset = %d, want 1", c.Lit())
	}
	c.Clear()
	if c.Lit() != 0 {
		t.Error("Clear left dots on")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 2)
	c.DrawLine(0, 0, 19, 0, render.White, render.BlendNormal)
	if c.Lit() != 20 {
		t.Errorf("horizontal line lit %d dots, want 20", c.Lit())
	}
	if !strings.HasPrefix(c.String(), "⠉⠉") {
		t.Errorf("unexpected first row %q", strings.SplitN(c.String(), "\n", 2)[0])
	}
}

func TestAdditivePaint(t *testing.T) {
	c := NewCanvas(1, 1)
	red := render.Color{R: 0.6, A: 1}
	c.Paint(0, 0, red, render.BlendAdditive)
	c.Paint(1, 0, red, render.BlendAdditive)
	if got := c.Colors[0][0].R; got != 1 {
		t.Errorf("additive red = %v, want clamped 1", got)
	}
}

func TestSurface(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Surface)
		want func(lit int) bool
	}{
		{"size", func(s *Surface) {}, func(lit int) bool { return lit == 0 }},
		{"centered disc", func(s *Surface) {
			s.Translate(20, 20)
			s.SetFill(render.White)
			s.FillArc(0, 0, 5, 0, 2*math.Pi)
		}, func(lit int) bool { return lit > 60 && lit < 100 }},
		{"subpixel disc", func(s *Surface) {
			s.SetFill(render.White)
			s.FillArc(3, 3, 0.2, 0, 2*math.Pi)
		}, func(lit int) bool { return lit == 1 }},
		{"off canvas line", func(s *Surface) {
			s.SetStroke(render.White)
			s.Line(-1e9, -50, 1e9, -50)
		}, func(lit int) bool { return lit == 0 }},
		{"clipped line", func(s *Surface) {
			s.SetStroke(render.White)
			s.Line(-100, 10, 100, 10)
		}, func(lit int) bool { return lit == 40 }},
		{"faint stroke", func(s *Surface) {
			s.SetStroke(render.White.WithAlpha(0.01))
			s.Line(0, 0, 39, 39)
		}, func(lit int) bool { return lit == 0 }},
		{"nan ignored", func(s *Surface) {
			s.SetFill(render.White)
			s.FillArc(math.NaN(), 0, 3, 0, 1)
			s.FillRect(0, math.Inf(1), 3, 3)
		}, func(lit int) bool { return lit == 0 }},
		{"scaled rect", func(s *Surface) {
			s.Scale(2, 2)
			s.SetFill(render.White)
			s.FillRect(0, 0, 5, 5)
		}, func(lit int) bool { return lit == 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurface(NewCanvas(20, 10))
			if w, h := s.Size(); w != 40 || h != 40 {
				t.Fatalf("Size() = %v x %v, want 40 x 40", w, h)
			}
			tt.draw(s)
			if lit := s.Canvas.Lit(); !tt.want(lit) {
				t.Errorf("lit = %d", lit)
			}
		})
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Paint(0, 0, render.RGB255(255, 0, 0, 1), render.BlendNormal)
	img := c.Image(8, 16, render.Black)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if len(img.Palette) != 2 {
		t.Errorf("palette size = %d, want 2", len(img.Palette))
	}
	if img.ColorIndexAt(0, 0) != 1 || img.ColorIndexAt(15, 15) != 0 {
		t.Error("dot not rasterized at its cell corner")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "neon" {
		t.Error("unknown theme should fall back to neon")
	}
	SetTheme("minimal")
	if NextTheme().Name != "neon" {
		t.Error("NextTheme should wrap to the first theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestSparklineChart(t *testing.T) {
	if got := SparklineChart(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	out := SparklineChart([]float64{0, math.NaN(), 1}, 3)
	if !strings.Contains(out, "█") || !strings.Contains(out, "▁") {
		t.Errorf("sparkline missing extremes: %q", out)
	}
}

func TestThemeColor(t *testing.T) {
	tests := []struct {
		in   lipgloss.Color
		want render.Color
	}{
		{"#ff0000", render.RGB255(255, 0, 0, 1)},
		{"#00ccff", render.RGB255(0, 204, 255, 1)},
		{"205", render.White},
		{"", render.White},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			if got := ThemeColor(tt.in); got != tt.want {
				t.Errorf("ThemeColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", render.Black, render.White) != "" {
		t.Error("empty text should render empty")
	}
	out := Title("synesthetica")
	for _, r := range "synesthetica" {
		if !strings.ContainsRune(out, r) {
			t.Errorf("title lost %q: %q", r, out)
		}
	}
}

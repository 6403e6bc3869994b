package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/synesthetica/internal/render"
)

// Surface issues frame primitives as raylib 2D draw calls. It must be
// used between rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	render.State
	Background rl.Color

	blend render.Blend
}

func NewSurface(bg rl.Color) *Surface {
	return &Surface{State: render.NewState(), Background: bg}
}

func (s *Surface) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (s *Surface) Clear() { rl.ClearBackground(s.Background) }

func toRL(c render.Color) rl.Color {
	r, g, b, a := c.RGBA8()
	return rl.NewColor(r, g, b, a)
}

func vec(x, y float64) rl.Vector2 { return rl.NewVector2(float32(x), float32(y)) }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s *Surface) SetBlend(b render.Blend) {
	s.State.SetBlend(b)
	s.applyBlend()
}

func (s *Surface) Restore() {
	s.State.Restore()
	s.applyBlend()
}

// applyBlend keeps raylib's blend mode in step with the style.
func (s *Surface) applyBlend() {
	if s.Blend == s.blend {
		return
	}
	if s.blend != render.BlendNormal {
		rl.EndBlendMode()
	}
	if s.Blend == render.BlendAdditive {
		rl.BeginBlendMode(rl.BlendAdditive)
	}
	s.blend = s.Blend
}

// Finish ends any blend mode left open by the frame.
func (s *Surface) Finish() {
	s.Reset()
	s.applyBlend()
}

func (s *Surface) width() float32 {
	return float32(math.Max(s.LineWidth*s.Transform.Factor(), 1))
}

func (s *Surface) Line(x0, y0, x1, y1 float64) {
	ax, ay := s.Transform.Apply(x0, y0)
	bx, by := s.Transform.Apply(x1, y1)
	if !finite(ax, ay, bx, by) {
		return
	}
	s.glow(func(c rl.Color, grow float32) {
		rl.DrawLineEx(vec(ax, ay), vec(bx, by), s.width()+grow, c)
	}, s.Stroke)
}

// degrees converts a user-space angle to screen degrees.
func (s *Surface) degrees(a float64) float32 {
	return float32((a + s.Transform.Angle()) * 180 / math.Pi)
}

func segments(r float64) int32 { return int32(math.Min(math.Max(r/2, 12), 96)) }

func (s *Surface) Arc(x, y, r, start, end float64) {
	cx, cy := s.Transform.Apply(x, y)
	rr := r * s.Transform.Factor()
	if !finite(cx, cy, rr, start, end) || rr <= 0 {
		return
	}
	half := float64(s.width()) / 2
	inner, outer := float32(math.Max(rr-half, 0)), float32(rr+half)
	a0, a1 := s.degrees(start), s.degrees(end)
	s.glow(func(c rl.Color, grow float32) {
		rl.DrawRing(vec(cx, cy), max(inner-grow/2, 0), outer+grow/2, a0, a1, segments(rr), c)
	}, s.Stroke)
}

func (s *Surface) FillArc(x, y, r, start, end float64) {
	cx, cy := s.Transform.Apply(x, y)
	rr := r * s.Transform.Factor()
	if !finite(cx, cy, rr, start, end) || rr <= 0 {
		return
	}
	if math.Abs(end-start) >= 2*math.Pi {
		s.glow(func(c rl.Color, grow float32) {
			rl.DrawCircleV(vec(cx, cy), float32(rr)+grow, c)
		}, s.Fill)
		return
	}
	a0, a1 := s.degrees(start), s.degrees(end)
	s.glow(func(c rl.Color, grow float32) {
		rl.DrawCircleSector(vec(cx, cy), float32(rr)+grow, a0, a1, segments(rr), c)
	}, s.Fill)
}

// FillRect draws the rectangle rotated and uniformly scaled by the
// current transform.
func (s *Surface) FillRect(x, y, w, h float64) {
	px, py := s.Transform.Apply(x, y)
	k := s.Transform.Factor()
	if !finite(px, py, w, h) {
		return
	}
	rec := rl.NewRectangle(float32(px), float32(py), float32(w*k), float32(h*k))
	rot := float32(s.Transform.Angle() * 180 / math.Pi)
	rl.DrawRectanglePro(rec, rl.NewVector2(0, 0), rot, toRL(s.Fill))
}

// glow draws a widened faint copy in the shadow color when a shadow is
// set, then the shape itself.
func (s *Surface) glow(draw func(c rl.Color, grow float32), c render.Color) {
	if s.ShadowBlur > 0 {
		shadow := s.ShadowColor.WithAlpha(s.ShadowColor.A * c.A * 0.35)
		draw(toRL(shadow), float32(s.ShadowBlur*0.5))
	}
	draw(toRL(c), 0)
}

package viz

import (
	"math"

	"github.com/san-kum/synesthetica/internal/render"
)

// minVisible is the faintest color a dot is drawn for.
const minVisible = 0.06

// maxFill caps the sub-pixels a single fill may touch.
const maxFill = 1 << 16

// Surface draws frames onto a braille Canvas. Device units are canvas
// dots, which are roughly square on a terminal.
type Surface struct {
	render.State
	Canvas *Canvas
}

func NewSurface(c *Canvas) *Surface {
	return &Surface{State: render.NewState(), Canvas: c}
}

func (s *Surface) Size() (float64, float64) {
	w, h := s.Canvas.Dots()
	return float64(w), float64(h)
}

func (s *Surface) Clear() { s.Canvas.Clear() }

func visible(c render.Color) bool { return c.A*math.Max(c.R, math.Max(c.G, c.B)) >= minVisible }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// dot rounds a device coordinate, refusing values far off the canvas.
func (s *Surface) dot(x, y float64) (int, int, bool) {
	w, h := s.Size()
	if !finite(x, y) || x < -w || x > 2*w || y < -h || y > 2*h {
		return 0, 0, false
	}
	return int(math.Floor(x)), int(math.Floor(y)), true
}

func (s *Surface) Line(x0, y0, x1, y1 float64) {
	if !visible(s.Stroke) {
		return
	}
	m := s.Transform
	ax, ay := m.Apply(x0, y0)
	bx, by := m.Apply(x1, y1)
	if !finite(ax, ay, bx, by) {
		return
	}
	w, h := s.Size()
	if !clip(&ax, &ay, &bx, &by, w, h) {
		return
	}
	s.Canvas.DrawLine(int(math.Round(ax)), int(math.Round(ay)), int(math.Round(bx)), int(math.Round(by)), s.Stroke, s.Blend)
}

// Arc strokes the arc as a polyline with about one segment per two dots.
func (s *Surface) Arc(x, y, r, start, end float64) {
	if !visible(s.Stroke) || !finite(x, y, r, start, end) || r <= 0 {
		return
	}
	span := end - start
	if math.Abs(span) > 2*math.Pi {
		span = math.Copysign(2*math.Pi, span)
	}
	rr := r * s.Transform.Factor()
	n := int(math.Min(math.Max(math.Abs(span)*rr/2, 4), 256))
	px, py := x+r*math.Cos(start), y+r*math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + span*float64(i)/float64(n)
		nx, ny := x+r*math.Cos(a), y+r*math.Sin(a)
		s.Line(px, py, nx, ny)
		px, py = nx, ny
	}
}

// FillArc fills the sector between start and end. Discs below one dot
// light a single dot.
func (s *Surface) FillArc(x, y, r, start, end float64) {
	if !visible(s.Fill) || !finite(x, y, r, start, end) || r <= 0 {
		return
	}
	cx, cy := s.Transform.Apply(x, y)
	rr := r * s.Transform.Factor()
	if rr < 1 {
		if ix, iy, ok := s.dot(cx, cy); ok {
			s.Canvas.Paint(ix, iy, s.Fill, s.Blend)
		}
		return
	}
	full := math.Abs(end-start) >= 2*math.Pi
	rot := s.Transform.Angle()
	s.fill(cx-rr, cy-rr, cx+rr, cy+rr, func(px, py float64) bool {
		dx, dy := px-cx, py-cy
		if dx*dx+dy*dy > rr*rr {
			return false
		}
		return full || inSector(math.Atan2(dy, dx)-rot, start, end)
	})
}

func inSector(a, start, end float64) bool {
	if end < start {
		start, end = end, start
	}
	a = math.Mod(a-start, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a <= end-start
}

func (s *Surface) FillRect(x, y, w, h float64) {
	if !visible(s.Fill) || !finite(x, y, w, h) {
		return
	}
	m := s.Transform
	inv, ok := m.Invert()
	if !ok {
		return
	}
	x0, x1 := math.Min(x, x+w), math.Max(x, x+w)
	y0, y1 := math.Min(y, y+h), math.Max(y, y+h)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		dx, dy := m.Apply(c[0], c[1])
		minX, maxX = math.Min(minX, dx), math.Max(maxX, dx)
		minY, maxY = math.Min(minY, dy), math.Max(maxY, dy)
	}
	if maxX-minX < 1 && maxY-minY < 1 {
		if ix, iy, ok := s.dot(minX, minY); ok {
			s.Canvas.Paint(ix, iy, s.Fill, s.Blend)
		}
		return
	}
	s.fill(minX, minY, maxX, maxY, func(px, py float64) bool {
		ux, uy := inv.Apply(px, py)
		return ux >= x0 && ux <= x1 && uy >= y0 && uy <= y1
	})
}

// fill paints every dot in the device box whose center passes inside.
func (s *Surface) fill(minX, minY, maxX, maxY float64, inside func(x, y float64) bool) {
	w, h := s.Size()
	x0, y0 := int(math.Max(math.Floor(minX), 0)), int(math.Max(math.Floor(minY), 0))
	x1, y1 := int(math.Min(math.Ceil(maxX), w-1)), int(math.Min(math.Ceil(maxY), h-1))
	if x1 < x0 || y1 < y0 || (x1-x0+1)*(y1-y0+1) > maxFill {
		return
	}
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			if inside(float64(px)+0.5, float64(py)+0.5) {
				s.Canvas.Paint(px, py, s.Fill, s.Blend)
			}
		}
	}
}

// clip trims a segment to the [0,w)x[0,h) box (Liang-Barsky). It reports
// false when nothing is left.
func clip(x0, y0, x1, y1 *float64, w, h float64) bool {
	t0, t1 := 0.0, 1.0
	dx, dy := *x1-*x0, *y1-*y0
	edges := [4][2]float64{
		{-dx, *x0},
		{dx, w - 1 - *x0},
		{-dy, *y0},
		{dy, h - 1 - *y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return false
		}
	}
	*x0, *y0, *x1, *y1 = *x0+t0*dx, *y0+t0*dy, *x0+t1*dx, *y0+t1*dy
	return true
}

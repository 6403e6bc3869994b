package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/san-kum/synesthetica/internal/render"
)

// SVG is a render.Surface that records a frame as SVG elements in device
// space. Transforms are applied before writing, so the output has no
// nested groups.
type SVG struct {
	render.State
	W, H       float64
	Background render.Color

	body  strings.Builder
	count int
	glow  bool
}

func NewSVG(w, h float64, bg render.Color) *SVG {
	return &SVG{State: render.NewState(), W: w, H: h, Background: bg}
}

func (s *SVG) Size() (float64, float64) { return s.W, s.H }

// Clear drops everything drawn so far.
func (s *SVG) Clear() {
	s.body.Reset()
	s.count = 0
}

// Elements returns how many shapes have been written since the last Clear.
func (s *SVG) Elements() int { return s.count }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// paint returns the presentation attributes for c as a fill or stroke.
func (s *SVG) paint(attr string, c render.Color) string {
	var b strings.Builder
	fmt.Fprintf(&b, `%s="%s"`, attr, c.Hex())
	if c.A < 1 {
		fmt.Fprintf(&b, ` %s-opacity="%.3f"`, attr, c.A)
	}
	if s.Blend == render.BlendAdditive {
		b.WriteString(` style="mix-blend-mode:screen"`)
	}
	if s.ShadowBlur > 0 {
		s.glow = true
		b.WriteString(` filter="url(#glow)"`)
	}
	return b.String()
}

func (s *SVG) emit(format string, args ...any) {
	fmt.Fprintf(&s.body, format, args...)
	s.body.WriteByte('\n')
	s.count++
}

func (s *SVG) strokeWidth() float64 { return s.LineWidth * s.Transform.Factor() }

func (s *SVG) Line(x0, y0, x1, y1 float64) {
	ax, ay := s.Transform.Apply(x0, y0)
	bx, by := s.Transform.Apply(x1, y1)
	if !finite(ax, ay, bx, by) || s.Stroke.A == 0 {
		return
	}
	s.emit(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s stroke-width="%.2f" stroke-linecap="round"/>`,
		ax, ay, bx, by, s.paint("stroke", s.Stroke), s.strokeWidth())
}

// arcPath returns the device-space path of an arc, closed through the
// center when wedge is set.
func (s *SVG) arcPath(x, y, r, start, end float64, wedge bool) (string, bool) {
	if !finite(x, y, r, start, end) || r <= 0 {
		return "", false
	}
	span := end - start
	if math.Abs(span) >= 2*math.Pi {
		span = math.Copysign(2*math.Pi-1e-4, span)
	}
	cx, cy := s.Transform.Apply(x, y)
	ax, ay := s.Transform.Apply(x+r*math.Cos(start), y+r*math.Sin(start))
	bx, by := s.Transform.Apply(x+r*math.Cos(start+span), y+r*math.Sin(start+span))
	rr := r * s.Transform.Factor()
	large, sweep := 0, 1
	if math.Abs(span) > math.Pi {
		large = 1
	}
	if span < 0 {
		sweep = 0
	}
	if wedge {
		return fmt.Sprintf("M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d %d %.2f,%.2f Z", cx, cy, ax, ay, rr, rr, large, sweep, bx, by), true
	}
	return fmt.Sprintf("M%.2f,%.2f A%.2f,%.2f 0 %d %d %.2f,%.2f", ax, ay, rr, rr, large, sweep, bx, by), true
}

func (s *SVG) Arc(x, y, r, start, end float64) {
	if s.Stroke.A == 0 {
		return
	}
	if d, ok := s.arcPath(x, y, r, start, end, false); ok {
		s.emit(`<path d="%s" fill="none" %s stroke-width="%.2f"/>`, d, s.paint("stroke", s.Stroke), s.strokeWidth())
	}
}

func (s *SVG) FillArc(x, y, r, start, end float64) {
	if s.Fill.A == 0 || !finite(x, y, r, start, end) || r <= 0 {
		return
	}
	if math.Abs(end-start) >= 2*math.Pi {
		cx, cy := s.Transform.Apply(x, y)
		s.emit(`<circle cx="%.2f" cy="%.2f" r="%.2f" %s/>`, cx, cy, r*s.Transform.Factor(), s.paint("fill", s.Fill))
		return
	}
	if d, ok := s.arcPath(x, y, r, start, end, true); ok {
		s.emit(`<path d="%s" %s/>`, d, s.paint("fill", s.Fill))
	}
}

func (s *SVG) FillRect(x, y, w, h float64) {
	if s.Fill.A == 0 || !finite(x, y, w, h) {
		return
	}
	var pts []string
	for _, c := range [4][2]float64{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}} {
		px, py := s.Transform.Apply(c[0], c[1])
		pts = append(pts, fmt.Sprintf("%.2f,%.2f", px, py))
	}
	s.emit(`<polygon points="%s" %s/>`, strings.Join(pts, " "), s.paint("fill", s.Fill))
}

// WriteTo writes the complete document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *SVG) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, s.W, s.H, s.W, s.H)
	if s.glow {
		sb.WriteString(`<defs><filter id="glow" x="-50%" y="-50%" width="200%" height="200%"><feGaussianBlur stdDeviation="3" result="b"/><feMerge><feMergeNode in="b"/><feMergeNode in="SourceGraphic"/></feMerge></filter></defs>
`)
	}
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>
`, s.Background.Hex())
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

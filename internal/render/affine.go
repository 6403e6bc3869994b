package render

import "math"

// Affine is a 2D transform in canvas order:
//
//	x' = A·x + C·y + E
//	y' = B·x + D·y + F
type Affine struct{ A, B, C, D, E, F float64 }

func Identity() Affine { return Affine{A: 1, D: 1} }

// Mul returns m·n, applying n first.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

func (m Affine) Translate(x, y float64) Affine { return m.Mul(Affine{A: 1, D: 1, E: x, F: y}) }
func (m Affine) Scale(sx, sy float64) Affine   { return m.Mul(Affine{A: sx, D: sy}) }

func (m Affine) Rotate(a float64) Affine {
	s, c := math.Sincos(a)
	return m.Mul(Affine{A: c, B: s, C: -s, D: c})
}

// Apply maps a point through the transform.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Factor is the mean linear scale, used for radii and line widths.
func (m Affine) Factor() float64 { return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C)) }

// Angle is the rotation the transform applies to the x axis.
func (m Affine) Angle() float64 { return math.Atan2(m.B, m.A) }

// Invert returns the inverse transform. ok is false for a degenerate one.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Affine{}, false
	}
	return Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

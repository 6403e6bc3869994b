package physics

import "math"

// Segment is one drawn piece of a branching structure.
type Segment struct {
	From, To  Vec2
	Heading   float64
	Length    float64
	Thickness float64
	// Depth counts down to zero at the leaves.
	Depth int
}

// Shoot is a pending growth step on the work stack.
type Shoot struct {
	Origin    Vec2
	Heading   float64
	Length    float64
	Depth     int
	Thickness float64
}

// Fork derives the two children of a drawn segment.
type Fork func(seg Segment) (left, right Shoot)

// Grower expands shoots into segments with an explicit work stack,
// depth-first with the left child first.
type Grower struct {
	// MinLength stops shoots shorter than this. Defaults to 1 (sub-pixel).
	MinLength float64
	// MinThickness stops shoots thinner than this when positive.
	MinThickness float64
	// MaxSegments caps the work done in one call when positive.
	MaxSegments int

	stack []Shoot
}

func (g *Grower) terminal(s Shoot) bool {
	minLen := g.MinLength
	if minLen == 0 {
		minLen = 1
	}
	if s.Depth <= 0 || !(s.Length >= minLen) {
		return true
	}
	if g.MinThickness > 0 && !(s.Thickness >= g.MinThickness) {
		return true
	}
	return false
}

// Grow draws root and its descendants, calling emit for each segment in
// preorder, and returns the number of segments emitted. A shoot whose end
// point is non-finite is dropped together with its subtree.
func (g *Grower) Grow(root Shoot, fork Fork, emit func(Segment)) int {
	g.stack = append(g.stack[:0], root)
	n := 0
	for len(g.stack) > 0 {
		if g.MaxSegments > 0 && n >= g.MaxSegments {
			break
		}
		s := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		if g.terminal(s) {
			continue
		}

		to := s.Origin.Add(Vec2{math.Cos(s.Heading) * s.Length, math.Sin(s.Heading) * s.Length})
		if !to.Finite() {
			continue
		}
		seg := Segment{From: s.Origin, To: to, Heading: s.Heading, Length: s.Length, Thickness: s.Thickness, Depth: s.Depth}
		emit(seg)
		n++

		left, right := fork(seg)
		g.stack = append(g.stack, right, left)
	}
	return n
}

// Symmetric returns a Fork that turns each child by ±turn(seg) and scales
// length and thickness by the given factors.
func Symmetric(turn func(Segment) float64, lengthK, thicknessK float64) Fork {
	return func(seg Segment) (Shoot, Shoot) {
		d := turn(seg)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			d = 0
		}
		child := func(h float64) Shoot {
			return Shoot{Origin: seg.To, Heading: h, Length: seg.Length * lengthK, Depth: seg.Depth - 1, Thickness: seg.Thickness * thicknessK}
		}
		return child(seg.Heading - d), child(seg.Heading + d)
	}
}

package physics

import (
	"math"
	"math/rand/v2"
)

// Vec2 is a point or displacement in scene coordinates.
type Vec2 struct{ X, Y float64 }

func V(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Finite reports whether both components are finite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Polar returns the point at radius r and angle a.
func Polar(r, a float64) Vec2 { return Vec2{r * math.Cos(a), r * math.Sin(a)} }

// Rect is an axis-aligned rectangle centered on the origin.
type Rect struct{ HalfW, HalfH float64 }

// View returns the centered rectangle of a w×h view.
func View(w, h float64) Rect { return Rect{HalfW: w / 2, HalfH: h / 2} }

// Contains reports whether p lies inside r. Non-finite points never do.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= -r.HalfW && p.X <= r.HalfW && p.Y >= -r.HalfH && p.Y <= r.HalfH
}

// Random returns a uniformly distributed point inside r.
func (r Rect) Random(rng *rand.Rand) Vec2 {
	return Vec2{(rng.Float64() - 0.5) * 2 * r.HalfW, (rng.Float64() - 0.5) * 2 * r.HalfH}
}

// Grow scales both half extents by k.
func (r Rect) Grow(k float64) Rect { return Rect{r.HalfW * k, r.HalfH * k} }

// NewRNG returns a deterministic PCG source for a simulation state.
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

package physics

// Body is an entity tethered to an anchor point.
type Body struct {
	Pos, Vel, Anchor Vec2
}

// NewBody returns a body at rest on its anchor.
func NewBody(anchor Vec2) Body { return Body{Pos: anchor, Anchor: anchor} }

// Spring pulls a Body toward its anchor with stiffness K and multiplies the
// velocity by Damping every step.
type Spring struct {
	K       float64
	Damping float64
}

// Step applies an external force plus the spring pull, damps, and
// integrates one frame. Non-finite forces are ignored.
func (s Spring) Step(b *Body, force Vec2) {
	if !force.Finite() {
		force = Vec2{}
	}
	pull := b.Anchor.Sub(b.Pos).Scale(s.K)
	b.Vel = b.Vel.Add(force).Add(pull).Scale(s.Damping)
	b.Pos = b.Pos.Add(b.Vel)
}

// Kick adds an impulse to the body's velocity.
func (b *Body) Kick(impulse Vec2) {
	if impulse.Finite() {
		b.Vel = b.Vel.Add(impulse)
	}
}

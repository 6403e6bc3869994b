package render

// Blend selects how new drawing combines with what is already there.
type Blend int

const (
	BlendNormal Blend = iota
	// BlendAdditive sums colors, like the canvas "lighter" operation.
	BlendAdditive
)

// Surface is the drawing target of a frame. Coordinates pass through the
// current transform; nothing is ever read back.
type Surface interface {
	// Size returns the drawable extent in device units.
	Size() (w, h float64)
	Clear()

	SetFill(c Color)
	SetStroke(c Color)
	SetLineWidth(w float64)
	SetBlend(b Blend)
	// SetShadow sets a glow of the given blur radius. Zero blur disables it.
	SetShadow(blur float64, c Color)

	Line(x0, y0, x1, y1 float64)
	// Arc strokes a circular arc from start to end radians.
	Arc(x, y, r, start, end float64)
	FillArc(x, y, r, start, end float64)
	FillRect(x, y, w, h float64)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(a float64)
}

// Style is the drawing state covered by Save and Restore.
type Style struct {
	Transform   Affine
	Fill        Color
	Stroke      Color
	LineWidth   float64
	Blend       Blend
	ShadowBlur  float64
	ShadowColor Color
}

// DefaultStyle matches a fresh canvas context.
func DefaultStyle() Style {
	return Style{Transform: Identity(), Fill: Black, Stroke: Black, LineWidth: 1}
}

// State implements the stateful half of Surface. Concrete surfaces embed
// it and add the primitives.
type State struct {
	Style
	saved []Style
}

func NewState() State { return State{Style: DefaultStyle()} }

// Reset drops saved styles and returns to the default style.
func (s *State) Reset() {
	s.Style = DefaultStyle()
	s.saved = s.saved[:0]
}

func (s *State) Save() { s.saved = append(s.saved, s.Style) }

// Restore pops the last saved style. An unbalanced Restore is a no-op.
func (s *State) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.Style = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *State) Depth() int { return len(s.saved) }

func (s *State) Translate(x, y float64) { s.Transform = s.Transform.Translate(x, y) }
func (s *State) Scale(sx, sy float64)   { s.Transform = s.Transform.Scale(sx, sy) }
func (s *State) Rotate(a float64)       { s.Transform = s.Transform.Rotate(a) }

func (s *State) SetFill(c Color)        { s.Fill = c }
func (s *State) SetStroke(c Color)      { s.Stroke = c }
func (s *State) SetLineWidth(w float64) { s.LineWidth = w }
func (s *State) SetBlend(b Blend)       { s.Blend = b }

func (s *State) SetShadow(blur float64, c Color) {
	s.ShadowBlur = blur
	s.ShadowColor = c
}

package engine

import (
	"time"

	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/render"
)

// Driver is the per-view context handed to every frame: camera, clock,
// evaluator and layout options around one Session.
type Driver struct {
	Session *Session
	Camera  *Camera
	Clock   *Clock
	Eval    evaluator.Func

	// AdaptiveCentering lifts the origin by half of ControlsHeight so
	// scenes sit above an overlaid control bar.
	AdaptiveCentering bool
	ControlsHeight    float64
}

func NewDriver(s *Session) *Driver {
	return &Driver{Session: s, Camera: NewCamera(), Clock: NewClock(), AdaptiveCentering: true}
}

// Origin returns where the scene origin lands on the surface.
func (d *Driver) Origin(b Bounds) (x, y float64) {
	yOffset := 0.0
	if d.AdaptiveCentering {
		yOffset = -d.ControlsHeight / 2
	}
	return b.W/2 + d.Camera.Pan.X, b.H/2 + yOffset + d.Camera.Pan.Y
}

// Frame advances the clock to now and draws one frame.
func (d *Driver) Frame(s render.Surface, now time.Time) error {
	t := d.Clock.Tick(now)
	return d.Draw(s, t)
}

// Draw renders at animation time t without touching the clock.
func (d *Driver) Draw(s render.Surface, t float64) error {
	w, h := s.Size()
	b := Bounds{W: w, H: h}
	d.Session.Resize(b)

	s.Clear()
	s.Save()
	defer s.Restore()

	ox, oy := d.Origin(b)
	s.Translate(ox, oy)
	s.Scale(d.Camera.Zoom, d.Camera.Zoom)
	s.Rotate(d.Camera.Rotation.Y)

	return d.Session.Render(&Frame{
		Surface:  s,
		Time:     t,
		Eval:     d.Eval,
		Bounds:   b,
		Zoom:     d.Camera.Zoom,
		Rotation: d.Camera.Rotation,
	})
}

package engine

import "math"

const (
	MinZoom = 0.2
	MaxZoom = 5.0
	// DragSensitivity converts pointer pixels to radians.
	DragSensitivity = 0.005
)

type Offset struct{ X, Y float64 }

// Camera is the view transform driven by pointer gestures. Only gesture
// handlers mutate it, and none of them touch simulation state.
type Camera struct {
	Rotation Rotation
	Zoom     float64
	Pan      Offset
}

func NewCamera() *Camera { return &Camera{Zoom: 1} }

// Drag rotates: vertical motion tilts around x, horizontal spins around y.
func (c *Camera) Drag(dx, dy float64) {
	c.Rotation.X += dy * DragSensitivity
	c.Rotation.Y += dx * DragSensitivity
}

// PanBy shifts the view by a pointer delta.
func (c *Camera) PanBy(dx, dy float64) {
	c.Pan.X += dx
	c.Pan.Y += dy
}

// Wheel zooms out for positive deltas and in otherwise. Only the sign of
// deltaY matters.
func (c *Camera) Wheel(deltaY float64) {
	if deltaY > 0 {
		c.ZoomBy(0.9)
	} else {
		c.ZoomBy(1.1)
	}
}

// Pinch zooms by the ratio of successive two-finger distances.
func (c *Camera) Pinch(prevDist, dist float64) {
	if prevDist <= 0 || dist <= 0 {
		return
	}
	c.ZoomBy(dist / prevDist)
}

// PinchPan pans by the movement of the two-finger midpoint.
func (c *Camera) PinchPan(dx, dy float64) { c.PanBy(dx, dy) }

// ZoomBy multiplies the zoom and clamps it to [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(k float64) {
	z := c.Zoom * k
	if math.IsNaN(z) {
		return
	}
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Reset returns to the identity view.
func (c *Camera) Reset() {
	c.Rotation = Rotation{}
	c.Zoom = 1
	c.Pan = Offset{}
}

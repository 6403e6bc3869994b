package render

import (
	"math"
	"testing"
)

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#ff0000"},
		{120, 1, 0.5, "#00ff00"},
		{240, 1, 0.5, "#0000ff"},
		{-120, 1, 0.5, "#0000ff"},
		{720, 1, 0.5, "#ff0000"},
		{math.NaN(), 0, 1, "#ffffff"},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l, 1).Hex(); got != tt.want {
			t.Errorf("HSL(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestRGB255Clamps(t *testing.T) {
	c := RGB255(300, -5, 128, 2)
	r, g, _, a := c.RGBA8()
	if r != 255 || g != 0 || a != 255 {
		t.Errorf("RGB255 clamp = %v", c)
	}
}

func TestAffine(t *testing.T) {
	m := Identity().Translate(10, 20).Scale(2, 2).Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if math.Abs(x-10) > 1e-9 || math.Abs(y-22) > 1e-9 {
		t.Errorf("Apply(1,0) = (%v, %v), want (10, 22)", x, y)
	}
	if f := m.Factor(); math.Abs(f-2) > 1e-9 {
		t.Errorf("Factor = %v, want 2", f)
	}
	if a := m.Angle(); math.Abs(a-math.Pi/2) > 1e-9 {
		t.Errorf("Angle = %v, want pi/2", a)
	}
}

func TestStateSaveRestore(t *testing.T) {
	s := NewState()
	s.SetFill(White)
	s.Save()
	s.Translate(5, 5)
	s.SetFill(Black)
	s.SetBlend(BlendAdditive)
	s.Restore()

	if s.Transform != Identity() || s.Fill != White || s.Blend != BlendNormal {
		t.Errorf("Restore did not roll back: %+v", s.Style)
	}
	s.Restore()
	if s.Depth() != 0 {
		t.Errorf("unbalanced Restore changed depth")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Line(0, 0, 1, 1)
	r.Clear()
	r.FillArc(0, 0, 2, 0, 2*math.Pi)
	r.Line(math.NaN(), 0, 1, 1)

	if got := r.Count(OpLine); got != 1 {
		t.Errorf("Count(line) = %d, want 1", got)
	}
	if got := len(r.NonFinite()); got != 1 {
		t.Errorf("NonFinite = %d, want 1", got)
	}
	var _ Surface = r
}

func TestAffineInvert(t *testing.T) {
	m := Identity().Translate(400, 300).Scale(1.5, 1.5).Rotate(0.7)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible transform")
	}
	x, y := inv.Apply(m.Apply(12, -7))
	if math.Abs(x-12) > 1e-9 || math.Abs(y+7) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (12, -7)", x, y)
	}
	if _, ok := Identity().Scale(0, 1).Invert(); ok {
		t.Error("zero scale should not invert")
	}
}

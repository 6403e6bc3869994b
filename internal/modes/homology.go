package modes

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

// cloudRange is the half extent of the density cloud.
const cloudRange = 200

type homologyState struct {
	rng     *rand.Rand
	points  []physics.Vec2
	barcode physics.Barcode
}

func homologyVariants() map[string]engine.Variant {
	return map[string]engine.Variant{
		"v0": engine.Stateless(homologyCurve),
		"v1": engine.VariantFunc[*homologyState]{InitFn: homologyCloudInit, RenderFn: homologyCloud},
		"v2": engine.VariantFunc[*rngState]{InitFn: newRNG, RenderFn: homologyLevelSets},
		"v3": engine.VariantFunc[*homologyState]{InitFn: homologyBarcodeInit, RenderFn: homologyBarcodes},
	}
}

// filtrationRadius oscillates between 0 and 80 at a rate set by speed.
func filtrationRadius(t, speed float64) float64 {
	return (math.Sin(t*0.5*speed/20)*0.5 + 0.5) * 80
}

// drawFiltration links every pair closer than 2r with an edge that fades
// with distance, and rings each point with radius r.
func drawFiltration(s render.Surface, t float64, points []physics.Vec2, r float64) {
	s.SetLineWidth(0.5)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Dist(points[j])
			if d < 2*r {
				s.SetStroke(edgeColor.WithAlpha(0.3 * (1 - d/(2*r))))
				line(s, points[i], points[j])
			}
		}
	}

	s.SetLineWidth(1)
	for _, p := range points {
		hue := p.X + t*50
		s.SetFill(hsl(hue, 0.8, 0.7, 1))
		dot(s, p, 3)
		if r > 0 {
			s.SetStroke(hsl(hue, 0.8, 0.7, 0.2))
			ring(s, p, r)
		}
	}
}

func homologyCurve(f *engine.Frame) {
	n := max(f.Params.Int("points", 60), 0)
	span := f.Params.Get("range", 200)
	amp := f.Params.Get("amplitude", 50)

	points := make([]physics.Vec2, n)
	for i := range points {
		x := 0.0
		if n > 1 {
			x = (float64(i)/float64(n-1) - 0.5) * span
		}
		points[i] = physics.V(x, sample(f.Eval, x/100, f.Time)*amp)
	}
	drawFiltration(f.Surface, f.Time, points, filtrationRadius(f.Time, f.Params.Get("filtrationSpeed", 20)))
}

func homologyCloudInit(ctx engine.InitContext) *homologyState {
	st := &homologyState{rng: physics.NewRNG(ctx.Seed)}
	box := physics.Rect{HalfW: cloudRange, HalfH: cloudRange}
	st.points = make([]physics.Vec2, max(ctx.Params.Int("points", 50), 0))
	for i := range st.points {
		st.points[i] = box.Random(st.rng)
	}
	return st
}

// homologyCloud replaces a few random points each frame. New points spread
// vertically less where |f| is large, so the cloud thins along the curve.
func homologyCloud(f *engine.Frame, st *homologyState) {
	if n := len(st.points); n > 0 {
		for range f.Params.Int("updateRate", 10) {
			i := st.rng.IntN(n)
			x := (st.rng.Float64() - 0.5) * cloudRange * 2
			spread := 2 - math.Min(1.9, math.Abs(sample(f.Eval, x/100, f.Time)))
			st.points[i] = physics.V(x, (st.rng.Float64()-0.5)*cloudRange*spread)
		}
	}
	drawFiltration(f.Surface, f.Time, st.points, filtrationRadius(f.Time, f.Params.Get("filtrationSpeed", 20)))
}

// homologyLevelSets fills the grid cells of a noisy scalar field that lie
// above a threshold sweeping through [-1, 1].
func homologyLevelSets(f *engine.Frame, st *rngState) {
	n := f.Params.Int("gridSize", 50)
	if n <= 0 {
		return
	}
	noise := f.Params.Get("noise", 0.2)
	threshold := math.Sin(f.Time * f.Params.Get("filtrationSpeed", 20) / 20)
	pal := PaletteAt(f.Params.Int("palette", 0))
	w, h := view(f)
	cw, ch := w/float64(n), h/float64(n)
	s := f.Surface

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xn := float64(i)/float64(n) - 0.5
			yn := float64(j)/float64(n) - 0.5
			v := sample(f.Eval, xn*2, f.Time+math.Hypot(xn, yn)) + (st.rng.Float64()-0.5)*noise
			if v <= threshold {
				continue
			}
			s.SetFill(pal(math.Min(1, (v-threshold)*0.5), f.Time).WithAlpha(0.8))
			s.FillRect(xn*w-cw/2, yn*h-ch/2, cw, ch)
		}
	}
}

func homologyBarcodeInit(ctx engine.InitContext) *homologyState {
	st := &homologyState{rng: physics.NewRNG(ctx.Seed)}
	n := max(ctx.Params.Int("points", 40), 0)
	noise := ctx.Params.Get("noise", 0.1)
	box := physics.View(ctx.Bounds.W, ctx.Bounds.H).Grow(0.8)
	st.points = make([]physics.Vec2, n)
	for i := range st.points {
		p := box.Random(st.rng)
		st.points[i] = p.Add(physics.V((st.rng.Float64()-0.5)*noise*200, (st.rng.Float64()-0.5)*noise*200))
	}
	st.barcode = physics.Filtration(st.points, ctx.Params.Get("maxRadius", 100), st.rng)
	return st
}

func homologyBarcodes(f *engine.Frame, st *homologyState) {
	maxR := f.Params.Get("maxRadius", 100)
	r := (math.Sin(f.Time*0.2)*0.5 + 0.5) * maxR
	drawFiltration(f.Surface, f.Time, st.points, r)

	w, h := view(f)
	s := f.Surface
	s.Save()
	defer s.Restore()
	s.Translate(w/2*0.8, -h/2*0.8)
	drawBarcodePanel(s, st.barcode, r, maxR)
}

// drawBarcodePanel draws H0 and H1 bars in a 200×300 panel at the origin
// with a vertical marker at the current radius.
func drawBarcodePanel(s render.Surface, bc physics.Barcode, r, maxR float64) {
	const panelW, panelH, barW = 200, 300, 190
	s.SetFill(render.Color{A: 0.7})
	s.FillRect(0, 0, panelW, panelH)
	s.SetStroke(render.RGB255(128, 128, 128, 1))
	s.SetLineWidth(1)
	s.Line(0, 0, panelW, 0)
	s.Line(panelW, 0, panelW, panelH)
	s.Line(panelW, panelH, 0, panelH)
	s.Line(0, panelH, 0, 0)

	x := func(v float64) float64 {
		if maxR <= 0 {
			return 5
		}
		return 5 + math.Min(v, maxR)/maxR*barW
	}
	bars := func(set []physics.Bar, top, pitch, limit, hue, width float64) {
		s.SetStroke(hsl(hue, 0.8, 0.7, 1))
		s.SetLineWidth(width)
		for i, b := range set {
			y := top + float64(i)*pitch
			if y > limit {
				break
			}
			s.Line(x(b.Birth), y, x(b.Death), y)
		}
	}
	bars(bc.H0, 10, 4, 140, 200, 2)
	bars(bc.H1, 160, 6, 290, 60, 3)

	s.SetStroke(render.White)
	s.SetLineWidth(1)
	s.Line(x(r), 0, x(r), panelH)
}

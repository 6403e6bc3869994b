package modes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/evaluator"
	"github.com/san-kum/synesthetica/internal/physics"
	"github.com/san-kum/synesthetica/internal/render"
)

const frameDt = 1.0 / 60

var testBounds = engine.Bounds{W: 800, H: 600}

func wave(x, t, _, _, _ float64) float64 { return math.Sin(3*x + t) }

func identity(x, _, _, _, _ float64) float64 { return x }

// run initializes v and renders n frames, returning the recorder of the
// last frame and the state.
func run(t *testing.T, v engine.Variant, alg string, p engine.Params, f evaluator.Func, n int) (*render.Recorder, engine.State) {
	t.Helper()
	st := v.Init(engine.InitContext{Bounds: testBounds, Params: p, Algorithm: alg, Seed: 1})
	rec := render.NewRecorder(testBounds.W, testBounds.H)
	for i := 0; i < n; i++ {
		rec.Reset()
		v.Render(&engine.Frame{
			Surface:   rec,
			Time:      float64(i) * frameDt,
			Eval:      f,
			Params:    p,
			Bounds:    testBounds,
			Zoom:      1,
			Algorithm: alg,
		}, st)
	}
	return rec, st
}

func TestCatalogIsFullyImplemented(t *testing.T) {
	reg := Registry()
	ids := reg.ModeIDs()
	require.Len(t, ids, len(Catalog))
	assert.Equal(t, "fiber", ids[0])
	assert.Equal(t, "attractor", ids[len(ids)-1])

	for _, m := range Catalog {
		for _, a := range m.Algorithms {
			_, _, err := reg.Lookup(m.ID, a.ID)
			assert.NoError(t, err, "%s/%s", m.ID, a.ID)
			for _, d := range a.Params {
				assert.LessOrEqual(t, d.Min, d.Default, "%s/%s %s", m.ID, a.ID, d.ID)
				assert.GreaterOrEqual(t, d.Max, d.Default, "%s/%s %s", m.ID, a.ID, d.ID)
			}
		}
	}
}

func TestEveryVariantRendersFinite(t *testing.T) {
	reg := Registry()
	for _, m := range Catalog {
		for _, a := range m.Algorithms {
			t.Run(m.ID+"/"+a.ID, func(t *testing.T) {
				v, _, err := reg.Lookup(m.ID, a.ID)
				require.NoError(t, err)
				p := a.Defaults()
				before := p.Clone()

				rec, _ := run(t, v, a.ID, p, wave, 40)
				assert.NotEmpty(t, rec.Calls)
				assert.Empty(t, rec.NonFinite())
				assert.Equal(t, before, p)
			})
		}
	}
}

func TestVariantsSurviveParameterExtremes(t *testing.T) {
	reg := Registry()
	for _, m := range Catalog {
		for _, a := range m.Algorithms {
			v, _, err := reg.Lookup(m.ID, a.ID)
			require.NoError(t, err)
			lo, hi := engine.Params{}, engine.Params{}
			for _, d := range a.Params {
				lo[d.ID], hi[d.ID] = d.Min, d.Max
			}
			for _, p := range []engine.Params{lo, hi, {}} {
				assert.NotPanics(t, func() { run(t, v, a.ID, p, wave, 5) }, "%s/%s %v", m.ID, a.ID, p)
			}
		}
	}
}

func TestZeroFunctionRendersIdle(t *testing.T) {
	reg := Registry()
	v, a, err := reg.Lookup("fiber", "v0")
	require.NoError(t, err)
	rec, _ := run(t, v, "v0", a.Defaults(), evaluator.Zero, 1)

	require.Equal(t, 200, rec.Count(render.OpFillArc))
	for _, c := range rec.Calls {
		assert.Zero(t, c.Args[1])
	}
}

func TestFluidParticleCount(t *testing.T) {
	st := fluidInit(engine.InitContext{Bounds: testBounds, Params: engine.Params{"particleCount": 200}, Algorithm: "v0", Seed: 3})
	assert.Len(t, st.particles, 200)

	st = fluidInit(engine.InitContext{Bounds: testBounds, Params: engine.Params{"particleCount": 0}, Algorithm: "v0", Seed: 3})
	assert.Empty(t, st.particles)
}

func TestFluidClassicStaysInView(t *testing.T) {
	v := fluidVariants()["v0"]
	p := engine.Params{"particleCount": 200, "flowSpeed": 1.5, "noise": 0.5, "trailLength": 10}
	_, st := run(t, v, "v0", p, evaluator.Zero, 60)

	box := physics.View(testBounds.W, testBounds.H)
	particles := st.(*fluidState).particles
	require.Len(t, particles, 200)
	for _, pt := range particles {
		assert.True(t, box.Contains(pt.Pos), "%v", pt.Pos)
		assert.LessOrEqual(t, pt.Trail.Len(), 10)
	}
}

func TestSameSeedSameFrames(t *testing.T) {
	for _, alg := range []string{"v0", "v2"} {
		v := fluidVariants()[alg]
		a, _ := Registry().Algorithm("fluidField", alg)
		first, _ := run(t, v, alg, a.Defaults(), wave, 10)
		second, _ := run(t, v, alg, a.Defaults(), wave, 10)
		assert.Equal(t, first.Calls, second.Calls, alg)
	}
}

func TestEventGrowthSeedsAtZeroCrossings(t *testing.T) {
	v := eventVariants()["v0"]
	a, err := Registry().Algorithm("eventGrowth", "v0")
	require.NoError(t, err)
	st := v.Init(engine.InitContext{Bounds: testBounds, Params: a.Defaults(), Algorithm: "v0", Seed: 1}).(*eventState)

	frame := func(tm float64) {
		v.Render(&engine.Frame{
			Surface: render.NewRecorder(800, 600), Time: tm, Eval: identity,
			Params: a.Defaults(), Bounds: testBounds, Zoom: 1, Algorithm: "v0",
		}, st)
	}
	frame(0.05)
	assert.Empty(t, st.systems, "no scan before the first interval")
	frame(0.2)
	assert.Len(t, st.systems, 1)
}

func TestGraphGrowthAddsNodesOnSchedule(t *testing.T) {
	v := graphVariants()["v2"]
	p := engine.Params{"initialNodes": 3, "growthRate": 2, "edgesPerNode": 2, "attractionMod": 1}
	st := v.Init(engine.InitContext{Bounds: testBounds, Params: p, Algorithm: "v2", Seed: 1}).(*graphState)
	require.Len(t, st.graph.Nodes, 3)

	for _, tm := range []float64{0.5, 1.5, 2.5, 3} {
		v.Render(&engine.Frame{
			Surface: render.NewRecorder(800, 600), Time: tm, Eval: wave,
			Params: p, Bounds: testBounds, Zoom: 1, Algorithm: "v2",
		}, st)
	}
	assert.Len(t, st.graph.Nodes, 4)
}

func TestPaletteFallback(t *testing.T) {
	assert.Equal(t, Plasma(0.3, 1), PaletteAt(99)(0.3, 1))
	assert.Equal(t, Plasma(0.3, 1), PaletteAt(-1)(0.3, 1))
	for i, pal := range Palettes {
		c := pal(0.5, 2)
		for _, ch := range []float64{c.R, c.G, c.B} {
			assert.True(t, ch >= 0 && ch <= 1, "palette %d channel %v", i, ch)
		}
	}
}

func TestZeroCountClamps(t *testing.T) {
	assert.Equal(t, 0, zeroCount(-3))
	assert.Equal(t, 8, zeroCount(8))
	assert.Equal(t, len(zetaZeros), zeroCount(50))
}

func TestSynapsesAcrossMirrors(t *testing.T) {
	v := synapticVariants()["v0"]
	synapse := hsl(0, 0.9, 0.8, 1)
	synapsing := func(rec *render.Recorder) int {
		n := 0
		for _, c := range rec.Calls {
			if c.Op == render.OpLine && c.Style.Stroke == synapse {
				n++
			}
		}
		return n
	}

	flat, _ := run(t, v, "v0", engine.Params{"symmetry": 0}, wave, 1)
	mirrored, _ := run(t, v, "v0", engine.Params{"symmetry": 1}, wave, 1)

	lines := flat.Count(render.OpLine)
	require.Positive(t, lines)
	assert.Equal(t, 2*lines, mirrored.Count(render.OpLine))
	// Every mirrored tip lands on a tip of the first pass.
	assert.Equal(t, synapsing(flat)+lines, synapsing(mirrored))
}

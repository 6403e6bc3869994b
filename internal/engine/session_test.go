package engine_test

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/render"
)

type counterState struct {
	count  int
	frames int
}

func counterVariant() engine.Variant {
	return engine.VariantFunc[*counterState]{
		InitFn: func(ctx engine.InitContext) *counterState {
			return &counterState{count: ctx.Params.Int("count", 3)}
		},
		RenderFn: func(f *engine.Frame, s *counterState) {
			s.frames++
			f.Surface.FillRect(0, 0, float64(s.count), 1)
		},
	}
}

func testRegistry() *engine.Registry {
	reg := engine.NewRegistry()
	reg.MustRegister(engine.ModeDescriptor{
		ID: "counter",
		Algorithms: []engine.AlgorithmDescriptor{
			{ID: "v0", Params: []engine.ParamDecl{{ID: "count", Min: 0, Max: 10, Default: 3}}},
			{ID: "v1"},
		},
	}, map[string]engine.Variant{"v0": counterVariant(), "v1": counterVariant()})
	reg.MustRegister(engine.ModeDescriptor{
		ID:         "broken",
		Algorithms: []engine.AlgorithmDescriptor{{ID: "default"}},
	}, map[string]engine.Variant{"default": engine.Stateless(func(*engine.Frame) { panic("boom") })})
	return reg
}

var quiet = log.New(io.Discard)

var _ = Describe("Registry", func() {
	reg := testRegistry()

	It("resolves default to the first algorithm", func() {
		a, err := reg.Algorithm("counter", engine.DefaultAlgorithm)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.ID).To(Equal("v0"))
	})

	It("reports unknown ids with sentinel errors", func() {
		_, _, err := reg.Lookup("nope", "v0")
		Expect(errors.Is(err, engine.ErrUnknownMode)).To(BeTrue())
		_, _, err = reg.Lookup("counter", "v9")
		Expect(errors.Is(err, engine.ErrUnknownAlgorithm)).To(BeTrue())
	})

	It("rejects duplicates and missing variants", func() {
		err := reg.Register(engine.ModeDescriptor{ID: "counter", Algorithms: []engine.AlgorithmDescriptor{{ID: "v0"}}},
			map[string]engine.Variant{"v0": counterVariant()})
		Expect(errors.Is(err, engine.ErrDuplicateMode)).To(BeTrue())

		err = reg.Register(engine.ModeDescriptor{ID: "half", Algorithms: []engine.AlgorithmDescriptor{{ID: "v0"}, {ID: "v1"}}},
			map[string]engine.Variant{"v0": counterVariant()})
		Expect(errors.Is(err, engine.ErrUnknownAlgorithm)).To(BeTrue())
	})

	It("cycles modes in registration order", func() {
		Expect(reg.Next("counter", 1)).To(Equal("broken"))
		Expect(reg.Next("broken", 1)).To(Equal("counter"))
		Expect(reg.Next("counter", -1)).To(Equal("broken"))
	})
})

var _ = Describe("Session", func() {
	var (
		sess *engine.Session
		rec  *render.Recorder
	)

	BeforeEach(func() {
		sess = engine.NewSession(testRegistry(), quiet, 1)
		rec = render.NewRecorder(200, 100)
		Expect(sess.Select("counter", "default", engine.Bounds{W: 200, H: 100})).To(Succeed())
	})

	It("sizes state from declared defaults", func() {
		Expect(sess.State().(*counterState).count).To(Equal(3))
	})

	It("keeps state when the same pair is selected again", func() {
		before := sess.State()
		Expect(sess.Select("counter", "v0", engine.Bounds{W: 200, H: 100})).To(Succeed())
		Expect(sess.State()).To(BeIdenticalTo(before))
		Expect(sess.Inits()).To(Equal(1))
	})

	It("rebuilds state on algorithm change", func() {
		before := sess.State()
		Expect(sess.Select("counter", "v1", engine.Bounds{W: 200, H: 100})).To(Succeed())
		Expect(sess.State()).NotTo(BeIdenticalTo(before))
	})

	It("rebuilds state on every parameter edit, even an identical one", func() {
		p := engine.Params{"count": 7}
		sess.SetParams(p)
		first := sess.State()
		Expect(first.(*counterState).count).To(Equal(7))

		sess.SetParams(p)
		Expect(sess.State()).NotTo(BeIdenticalTo(first))
		Expect(sess.Inits()).To(Equal(3))
		Expect(p).To(Equal(engine.Params{"count": 7}))
	})

	It("switches pair and params with a single init", func() {
		sess.SetParams(engine.Params{"count": 7})
		inits := sess.Inits()
		Expect(sess.Switch("counter", "v1", nil, engine.Bounds{W: 200, H: 100})).To(Succeed())
		Expect(sess.Inits()).To(Equal(inits + 1))
		Expect(sess.Algorithm().ID).To(Equal("v1"))
		Expect(sess.Params()).To(BeEmpty())
		Expect(sess.State().(*counterState).count).To(Equal(3))
	})

	It("leaves the session alone when a switch fails", func() {
		sess.SetParams(engine.Params{"count": 7})
		before, inits := sess.State(), sess.Inits()
		err := sess.Switch("nope", "v0", nil, engine.Bounds{W: 200, H: 100})
		Expect(errors.Is(err, engine.ErrUnknownMode)).To(BeTrue())
		Expect(sess.State()).To(BeIdenticalTo(before))
		Expect(sess.Inits()).To(Equal(inits))
		Expect(sess.Params()).To(Equal(engine.Params{"count": 7}))
	})

	It("honors an explicit zero", func() {
		sess.SetParam("count", 0)
		Expect(sess.State().(*counterState).count).To(Equal(0))
	})

	It("recovers a panicking variant and reports it", func() {
		Expect(sess.Select("broken", "", engine.Bounds{W: 10, H: 10})).To(Succeed())
		err := sess.Render(&engine.Frame{Surface: rec})
		var rerr *engine.RenderError
		Expect(errors.As(err, &rerr)).To(BeTrue())
		Expect(rerr.Mode).To(Equal("broken"))
		Expect(sess.LastError()).To(Equal(err))
	})

	It("refuses to render without a selection", func() {
		empty := engine.NewSession(testRegistry(), quiet, 1)
		Expect(empty.Render(&engine.Frame{Surface: rec})).To(MatchError(engine.ErrNoSelection))
	})

	Describe("Driver", func() {
		var drv *engine.Driver

		BeforeEach(func() {
			drv = engine.NewDriver(sess)
			drv.ControlsHeight = 40
		})

		It("centers the origin above the controls", func() {
			x, y := drv.Origin(engine.Bounds{W: 200, H: 100})
			Expect(x).To(Equal(100.0))
			Expect(y).To(Equal(30.0))

			drv.AdaptiveCentering = false
			_, y = drv.Origin(engine.Bounds{W: 200, H: 100})
			Expect(y).To(Equal(50.0))
		})

		It("clears, transforms and restores around the render", func() {
			drv.Camera.Wheel(1)
			Expect(drv.Draw(rec, 0)).To(Succeed())

			Expect(rec.Calls[0].Op).To(Equal(render.OpClear))
			Expect(rec.Count(render.OpFillRect)).To(Equal(1))
			m := rec.Calls[1].Style.Transform
			x, y := m.Apply(0, 0)
			Expect(x).To(BeNumerically("~", 100, 1e-9))
			Expect(y).To(BeNumerically("~", 30, 1e-9))
			Expect(m.Factor()).To(BeNumerically("~", 0.9, 1e-9))
			Expect(rec.Depth()).To(Equal(0))
			Expect(sess.State().(*counterState).frames).To(Equal(1))
		})

		It("freezes time while paused", func() {
			start := time.Unix(100, 0)
			drv.Clock.Tick(start)
			drv.Clock.Tick(start.Add(time.Second))
			Expect(drv.Clock.Time()).To(BeNumerically("~", 1, 1e-9))

			drv.Clock.SetPlaying(false)
			drv.Clock.Tick(start.Add(5 * time.Second))
			Expect(drv.Clock.Time()).To(BeNumerically("~", 1, 1e-9))

			drv.Clock.SetPlaying(true)
			drv.Clock.Tick(start.Add(6 * time.Second))
			Expect(drv.Clock.Time()).To(BeNumerically("~", 2, 1e-9))
		})

		It("leaves simulation state alone on camera reset", func() {
			before := sess.State()
			drv.Camera.Drag(10, 10)
			drv.Camera.Reset()
			Expect(sess.State()).To(BeIdenticalTo(before))
		})
	})
})

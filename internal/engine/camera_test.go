package engine_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/synesthetica/internal/engine"
)

var _ = Describe("Camera", func() {
	var cam *engine.Camera

	BeforeEach(func() {
		cam = engine.NewCamera()
	})

	It("starts at the identity view", func() {
		Expect(cam.Zoom).To(Equal(1.0))
		Expect(cam.Rotation).To(Equal(engine.Rotation{}))
		Expect(cam.Pan).To(Equal(engine.Offset{}))
	})

	It("keeps zoom within bounds for any wheel sequence", func() {
		rng := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 2000; i++ {
			cam.Wheel(rng.Float64()*200 - 100)
			Expect(cam.Zoom).To(BeNumerically(">=", engine.MinZoom))
			Expect(cam.Zoom).To(BeNumerically("<=", engine.MaxZoom))
		}
	})

	It("saturates at both ends", func() {
		for i := 0; i < 100; i++ {
			cam.Wheel(1)
		}
		Expect(cam.Zoom).To(Equal(engine.MinZoom))
		for i := 0; i < 100; i++ {
			cam.Wheel(-1)
		}
		Expect(cam.Zoom).To(Equal(engine.MaxZoom))
	})

	It("zooms by the pinch ratio", func() {
		cam.Pinch(100, 150)
		Expect(cam.Zoom).To(BeNumerically("~", 1.5, 1e-12))
		cam.Pinch(100, 1e6)
		Expect(cam.Zoom).To(Equal(engine.MaxZoom))
		cam.Pinch(0, 10)
		Expect(cam.Zoom).To(Equal(engine.MaxZoom))
	})

	It("accumulates drag rotation without bounds", func() {
		cam.Drag(200, -100)
		Expect(cam.Rotation.Y).To(BeNumerically("~", 1.0, 1e-12))
		Expect(cam.Rotation.X).To(BeNumerically("~", -0.5, 1e-12))
		for i := 0; i < 10; i++ {
			cam.Drag(2000, 0)
		}
		Expect(cam.Rotation.Y).To(BeNumerically("~", 101.0, 1e-9))
	})

	It("pans additively", func() {
		cam.PanBy(10, -5)
		cam.PinchPan(1, 1)
		Expect(cam.Pan).To(Equal(engine.Offset{X: 11, Y: -4}))
	})

	It("resets rotation, zoom and pan", func() {
		cam.Drag(30, 40)
		cam.PanBy(7, 8)
		cam.Wheel(1)
		cam.Reset()
		Expect(cam.Rotation).To(Equal(engine.Rotation{}))
		Expect(cam.Zoom).To(Equal(1.0))
		Expect(cam.Pan).To(Equal(engine.Offset{}))
	})
})

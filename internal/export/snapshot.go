package export

import (
	"github.com/san-kum/synesthetica/internal/engine"
	"github.com/san-kum/synesthetica/internal/render"
)

// MaxWarmup bounds the frames simulated before a snapshot.
const MaxWarmup = 60 * 300

// Snapshot renders the driver's session at time at onto a new SVG of size
// w x h. Stateful modes are first stepped from zero at fps frames per
// second on a throwaway surface, so the picture matches what a live view
// would show at that time.
func Snapshot(d *engine.Driver, w, h, at float64, fps int, bg render.Color) (*SVG, error) {
	if fps > 0 && at > 0 {
		scratch := render.NewRecorder(w, h)
		dt := 1 / float64(fps)
		for i := 0; i < MaxWarmup && float64(i)*dt < at; i++ {
			if err := d.Draw(scratch, float64(i)*dt); err != nil {
				return nil, err
			}
		}
	}
	d.Clock.Seek(at)
	svg := NewSVG(w, h, bg)
	if err := d.Draw(svg, at); err != nil {
		return nil, err
	}
	return svg, nil
}

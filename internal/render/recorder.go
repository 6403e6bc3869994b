package render

import "math"

// Op names a recorded primitive.
type Op string

const (
	OpClear    Op = "clear"
	OpLine     Op = "line"
	OpArc      Op = "arc"
	OpFillArc  Op = "fillArc"
	OpFillRect Op = "fillRect"
)

// Call is one recorded primitive with its arguments in user space and the
// style in effect when it was issued.
type Call struct {
	Op    Op
	Args  []float64
	Style Style
}

// Recorder is an in-memory Surface that keeps every primitive call.
type Recorder struct {
	State
	W, H  float64
	Calls []Call
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{State: NewState(), W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
	r.record(OpClear)
}

func (r *Recorder) Line(x0, y0, x1, y1 float64)           { r.record(OpLine, x0, y0, x1, y1) }
func (r *Recorder) Arc(x, y, rad, start, end float64)     { r.record(OpArc, x, y, rad, start, end) }
func (r *Recorder) FillArc(x, y, rad, start, end float64) { r.record(OpFillArc, x, y, rad, start, end) }
func (r *Recorder) FillRect(x, y, w, h float64)           { r.record(OpFillRect, x, y, w, h) }

func (r *Recorder) record(op Op, args ...float64) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args, Style: r.Style})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// NonFinite returns the calls with a NaN or infinite argument.
func (r *Recorder) NonFinite() []Call {
	var bad []Call
	for _, c := range r.Calls {
		for _, a := range c.Args {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				bad = append(bad, c)
				break
			}
		}
	}
	return bad
}

// Reset drops recorded calls and the drawing state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.State.Reset()
}

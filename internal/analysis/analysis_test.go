package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/synesthetica/internal/dynamo"
	"github.com/san-kum/synesthetica/internal/integrators"
	"github.com/san-kum/synesthetica/internal/physics"
)

type decay struct{}

func (decay) Derive(x dynamo.State, _ float64) dynamo.State { return x.Scale(-1) }
func (decay) StateDim() int                                 { return 1 }

func TestPowerSpectrumPeak(t *testing.T) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 8 * float64(i) / 64)
	}
	ps := PowerSpectrum(data)
	if len(ps) != 32 {
		t.Fatalf("len = %d, want 32", len(ps))
	}
	if got := DominantBin(ps); got != 8 {
		t.Errorf("dominant bin = %d, want 8", got)
	}
}

func TestPowerSpectrumIgnoresNonFinite(t *testing.T) {
	ps := PowerSpectrum([]float64{math.NaN(), 1, math.Inf(1), 1})
	for i, v := range ps {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("bin %d is %v", i, v)
		}
	}
}

func TestSpectrum(t *testing.T) {
	f := func(_, tm, _, _, _ float64) float64 { return math.Sin(2 * math.Pi * 2 * tm) }
	ps, binHz := Spectrum(f, 0, 4, 128)
	if binHz != 0.25 {
		t.Errorf("binHz = %v, want 0.25", binHz)
	}
	if hz := float64(DominantBin(ps)) * binHz; hz != 2 {
		t.Errorf("dominant frequency = %v Hz, want 2", hz)
	}

	if ps, _ := Spectrum(nil, 0, 1, 1); ps != nil {
		t.Error("expected nil spectrum for a single sample")
	}
}

func TestDominantBinShort(t *testing.T) {
	if DominantBin([]float64{5}) != 0 {
		t.Error("DC-only spectrum should report bin 0")
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Stats
	}{
		{"empty", nil, Stats{}},
		{"mixed", []float64{1, -1, 2, math.NaN()}, Stats{Min: -1, Max: 2, Mean: 2.0 / 3, Finite: 0.75, ZeroCrossings: 2}},
		{"all nan", []float64{math.NaN()}, Stats{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if math.Abs(got.Mean-tt.want.Mean) > 1e-12 {
				t.Errorf("mean = %v, want %v", got.Mean, tt.want.Mean)
			}
			got.Mean, tt.want.Mean = 0, 0
			if got != tt.want {
				t.Errorf("Summarize = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSampleAndDerivatives(t *testing.T) {
	sq := func(x, _, _, _, _ float64) float64 { return x * x }
	xs, ys := Sample(sq, -1, 1, 0, 5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > 1e-12 || math.Abs(ys[i]-want[i]*want[i]) > 1e-12 {
			t.Errorf("sample %d = (%v, %v)", i, xs[i], ys[i])
		}
	}
	d := Derivatives(sq, []float64{3}, 0)
	if math.Abs(d[0]-6) > 1e-6 {
		t.Errorf("f'(3) = %v, want 6", d[0])
	}
	if xs, _ := Sample(sq, 0, 1, 0, 1); xs != nil {
		t.Error("expected no samples for n < 2")
	}
}

func TestLyapunovExponent(t *testing.T) {
	euler := integrators.NewEuler()

	lambda := LyapunovExponent(decay{}, euler, dynamo.State{1}, 0.01, 10, 1e-6)
	if math.Abs(lambda+1) > 0.02 {
		t.Errorf("decay λ = %v, want about -1", lambda)
	}

	lambda = LyapunovExponent(physics.NewLorenz(), euler, dynamo.State{1, 1, 1}, 0.005, 60, 1e-8)
	if lambda <= 0.3 {
		t.Errorf("lorenz λ = %v, want clearly positive", lambda)
	}

	if LyapunovExponent(decay{}, euler, nil, 0.01, 1, 1e-6) != 0 {
		t.Error("empty state should give 0")
	}
}

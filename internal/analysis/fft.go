package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/synesthetica/internal/evaluator"
)

// PowerSpectrum returns the magnitude of the first len(data)/2 frequency
// bins. Any length is accepted; non-finite samples count as zero.
func PowerSpectrum(data []float64) []float64 {
	clean := make([]float64, len(data))
	for i, v := range data {
		clean[i] = evaluator.Or(v, 0)
	}
	spectrum := fft.FFTReal(clean)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// Spectrum samples f at x for n evenly spaced times over duration seconds
// and returns the power spectrum with the frequency step of one bin, in Hz.
func Spectrum(f evaluator.Func, x, duration float64, n int) (ps []float64, binHz float64) {
	if n < 2 || duration <= 0 {
		return nil, 0
	}
	f = evaluator.OrZero(f)
	samples := make([]float64, n)
	dt := duration / float64(n)
	for i := range samples {
		samples[i] = f(x, float64(i)*dt, 1, 1, 1)
	}
	return PowerSpectrum(samples), 1 / duration
}

// DominantBin returns the strongest bin above DC, or 0 when there is none.
func DominantBin(ps []float64) int {
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return best
}

package main

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/dsputils"
	"github.com/mjibson/go-dsp/fft"
)

// sineSignal returns n samples of offset + amplitude*sin, with the given
// number of full cycles over the window.
func sineSignal(n int, cycles int, amplitude, offset float64) []float64 {
	sig := make([]float64, n)
	for i := 0; i < n; i++ {
		sig[i] = offset + amplitude*math.Sin(2*math.Pi*float64(cycles)*float64(i)/float64(n))
	}
	return sig
}

// magnitudeSpectrum zero pads sig to a power of two and returns the
// magnitudes of the non-negative frequency bins.
func magnitudeSpectrum(sig []float64) []float64 {
	if len(sig) == 0 {
		return []float64{}
	}
	n := dsputils.NextPowerOf2(len(sig))
	padded := dsputils.ZeroPadF(sig, n)
	spectrum := ToAbs(fft.FFTReal(padded))
	return spectrum[0 : n/2+1]
}

func ToAbs(a []complex128) []float64 {
	r := make([]float64, len(a))
	for i := 0; i < len(a); i++ {
		r[i] = cmplx.Abs(a[i])
	}
	return r
}

func rng(n int) []int {
	r := make([]int, n)
	for i := 0; i < n; i++ {
		r[i] = i
	}
	return r
}

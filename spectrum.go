package main

import (
	"sort"
)

func newSpectrum(buf []float64) *Spectrum {
	units := make([]SpectrumUnit, len(buf))
	for i := 0; i < len(buf); i++ {
		units[i].bin = i
		units[i].magn = buf[i]
	}
	return &Spectrum{units}
}

var _ sort.Interface = &Spectrum{}

type Spectrum struct {
	units []SpectrumUnit
}

func (s *Spectrum) Len() int {
	return len(s.units)
}

// Less orders the strongest bins first.
func (s *Spectrum) Less(i, j int) bool {
	return s.units[i].magn > s.units[j].magn
}

func (s *Spectrum) Swap(i, j int) {
	s.units[i], s.units[j] = s.units[j], s.units[i]
}

// Strongest returns up to k bins with the largest magnitude.
func (s *Spectrum) Strongest(k int) []SpectrumUnit {
	units := make([]SpectrumUnit, len(s.units))
	copy(units, s.units)
	sort.Stable(&Spectrum{units})
	if k > len(units) {
		k = len(units)
	}
	return units[0:k]
}

type SpectrumUnit struct {
	bin  int
	magn float64
}

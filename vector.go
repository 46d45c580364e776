package main

import (
	log "github.com/sirupsen/logrus"
)

// scaleDown divides every element of dst by s in place.
// s is a copy, so it stays fixed even if the caller read it out of dst.
func scaleDown(dst []float64, s float64) {
	for i := 0; i < len(dst); i++ {
		dst[i] /= s
	}
}

// scaleDownAliased is the broken form: *s is read again on every iteration.
// With s == &dst[0] everything after the first element is divided by the
// already scaled first element.
func scaleDownAliased(dst []float64, s *float64) {
	for i := 0; i < len(dst); i++ {
		dst[i] /= *s
	}
}

// scaleDownRef keeps the pointer signature but takes the value before
// touching dst.
func scaleDownRef(dst []float64, s *float64) {
	if s == nil {
		panic("Scaling by nil divisor")
	}
	if i, ok := aliases(dst, s); ok {
		log.Debugf("Divisor aliases element %d of the sequence", i)
	}
	v := *s
	scaleDown(dst, v)
}

func divNVS(src []float64, s float64) (res []float64) {
	res = make([]float64, len(src))
	for i := 0; i < len(src); i++ {
		res[i] = src[i] / s
	}
	return res
}

// aliases reports the index of the element of dst that p points at.
func aliases(dst []float64, p *float64) (int, bool) {
	if p == nil {
		return 0, false
	}
	for i := 0; i < len(dst); i++ {
		if &dst[i] == p {
			return i, true
		}
	}
	return 0, false
}

package a

func scale(dst []float64, s *float64) {
	for i := range dst {
		dst[i] /= *s
	}
}

func scaleValue(dst []float64, s float64) {
	for i := range dst {
		dst[i] /= s
	}
}

type holder struct {
	xs []float64
}

func values() []float64 {
	return []float64{2, 1, 2, 3, 4}
}

func aliased(h *holder) {
	v := []float64{2, 1, 2, 3, 4}
	scale(v, &v[0])       // want `argument &v\[0\] aliases slice v passed to the same call`
	scale(v[1:], &v[3])   // want `argument &v\[3\] aliases slice v passed to the same call`
	scale(h.xs, &h.xs[2]) // want `argument &h.xs\[2\] aliases slice h.xs passed to the same call`
}

func independent(h *holder) {
	v := []float64{2, 1, 2, 3, 4}
	w := []float64{2}
	scaleValue(v, v[0])
	scale(v, &w[0])

	d := v[0]
	scale(v, &d)

	scale(values(), &values()[0])
	scale(h.xs, &v[0])
}

type series []float64

func (s series) scale(d *float64) {
	for i := range s {
		s[i] /= *d
	}
}

func arrays(p *[4]float64) {
	var a [5]float64
	scale(a[:], &a[0])  // want `argument &a\[0\] aliases slice a passed to the same call`
	scale(p[1:], &p[2]) // want `argument &p\[2\] aliases slice p passed to the same call`
	scale(a[2:4], &a[1])
	scaleValue(a[:], a[0])
}

func receivers() {
	v := series{2, 1, 2, 3, 4}
	v.scale(&v[0]) // want `argument &v\[0\] aliases slice v passed to the same call`

	w := series{2}
	v.scale(&w[0])
	series.scale(v, &v[1]) // want `argument &v\[1\] aliases slice v passed to the same call`
}

func bounds(i int) {
	v := []float64{2, 1, 2, 3, 4}
	scale(v[:2], &v[3])    // want `argument &v\[3\] aliases slice v passed to the same call`
	scale(v[1:3:4], &v[3]) // want `argument &v\[3\] aliases slice v passed to the same call`
	scale(v[2:], &v[i])    // want `argument &v\[i\] aliases slice v passed to the same call`
	scale(v[:2:2], &v[3])
	scale(v[2:], &v[0])
}

package main

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
)

// Divisor selects what the sequence is divided by: either one of its own
// elements (taken by reference) or an independent value.
type Divisor struct {
	index   int
	value   float64
	aliased bool
}

func ElementDivisor(i int) Divisor {
	return Divisor{index: i, aliased: true}
}

func ValueDivisor(v float64) Divisor {
	return Divisor{value: v}
}

func (d Divisor) String() string {
	if d.aliased {
		return fmt.Sprintf("&s[%d]", d.index)
	}
	return fmt.Sprintf("%v", d.value)
}

// Comparison holds one sequence scaled by both implementations.
type Comparison struct {
	Before   []float64
	Divisor  float64 // divisor value before any element was touched
	Aliased  []float64
	Snapshot []float64
	Expected []float64 // Before divided by Divisor into a fresh slice
}

// Diverged returns the indexes where the two implementations disagree.
// NaN positions are equal to each other.
func (c *Comparison) Diverged() []int {
	res := make([]int, 0)
	for i := 0; i < len(c.Aliased); i++ {
		a, s := c.Aliased[i], c.Snapshot[i]
		if a != s && !(math.IsNaN(a) && math.IsNaN(s)) {
			res = append(res, i)
		}
	}
	return res
}

func compareScaling(values []float64, d Divisor) (*Comparison, error) {
	if d.aliased && (d.index < 0 || d.index >= len(values)) {
		return nil, fmt.Errorf("Divisor index %d out of range for %d values", d.index, len(values))
	}

	c := &Comparison{Before: append([]float64(nil), values...)}
	c.Aliased = append([]float64(nil), values...)
	c.Snapshot = append([]float64(nil), values...)

	if d.aliased {
		c.Divisor = values[d.index]
		scaleDownAliased(c.Aliased, &c.Aliased[d.index])
		scaleDownRef(c.Snapshot, &c.Snapshot[d.index])
	} else {
		c.Divisor = d.value
		v := d.value
		scaleDownAliased(c.Aliased, &v)
		scaleDown(c.Snapshot, d.value)
	}

	c.Expected = divNVS(c.Before, c.Divisor)

	for i := 0; i < len(values); i++ {
		log.Tracef("s[%d]: %v -> aliased %v, snapshot %v", i, c.Before[i], c.Aliased[i], c.Snapshot[i])
	}
	return c, nil
}

func logComparison(c *Comparison, d Divisor) {
	log.WithFields(log.Fields{
		"divisor": d.String(),
		"value":   c.Divisor,
	}).Infof("Input: %v", c.Before)
	log.Infof("Aliased divisor:  %v", c.Aliased)
	log.Infof("Snapshot divisor: %v", c.Snapshot)
	log.Debugf("Expected:         %v", c.Expected)
	if diff := c.Diverged(); len(diff) > 0 {
		log.Warnf("Results differ at %d of %d positions: %v", len(diff), len(c.Before), diff)
	} else {
		log.Info("Results agree")
	}
}

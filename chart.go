package main

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type series struct {
	name   string
	values []float64
}

// drawChart renders the series as grouped bars, one group per index.
func drawChart(w io.Writer, title string, ss ...series) error {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "aliased divisor vs snapshot divisor",
		}),
		charts.WithLegendOpts(opts.Legend{}),
	)

	n := 0
	for _, s := range ss {
		if len(s.values) > n {
			n = len(s.values)
		}
	}
	bar.SetXAxis(rng(n))
	for _, s := range ss {
		bar.AddSeries(s.name, barData(s.values))
	}

	return bar.Render(w)
}

// barData converts values into chart points. Inf and NaN have no JSON
// form, echarts draws "-" as an empty bar.
func barData(buf []float64) []opts.BarData {
	res := make([]opts.BarData, len(buf))
	for i := 0; i < len(buf); i++ {
		if math.IsInf(buf[i], 0) || math.IsNaN(buf[i]) {
			res[i] = opts.BarData{Value: "-"}
		} else {
			res[i] = opts.BarData{Value: buf[i]}
		}
	}
	return res
}

func comparisonSeries(c *Comparison) []series {
	return []series{
		{"input", c.Before},
		{"aliased", c.Aliased},
		{"snapshot", c.Snapshot},
	}
}

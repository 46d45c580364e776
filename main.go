package main

import (
	"fmt"
	"os"

	"github.com/mjibson/go-dsp/window"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/floats"
)

// Divides a sequence by one of its own elements, once with a divisor read
// through a pointer on every step and once with a divisor copied up front.
//
//	scaledown example
//	scaledown run -v 2,1,2,3,4 -i 0
//	scaledown run -v 2,1,2,3,4 -d 2
//	scaledown --chart dc.html spectrum --samples 64 --freq 4 --bin 0
func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	var debug, trace bool
	var chartFile string

	var divisor float64
	var divisorIndex int

	var samples, freq, bin int
	var amplitude, offset float64
	var useHann bool

	app := &cli.App{
		Name:                 "scaledown",
		Usage:                "Divide a sequence in place by one of its own elements",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "Log debug messages",
				EnvVars:     []string{"SCALEDOWN_DEBUG"},
				Destination: &debug,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "Log every element",
				EnvVars:     []string{"SCALEDOWN_TRACE"},
				Destination: &trace,
			},
			&cli.StringFlag{
				Name:        "chart",
				Usage:       "Render input and both results into an html chart",
				EnvVars:     []string{"SCALEDOWN_CHART"},
				Destination: &chartFile,
			},
		},
		Before: func(cCtx *cli.Context) error {
			log.SetFormatter(&log.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "15:04:05",
			})
			switch {
			case trace:
				log.SetLevel(log.TraceLevel)
			case debug:
				log.SetLevel(log.DebugLevel)
			default:
				log.SetLevel(log.InfoLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "example",
				Aliases: []string{"e"},
				Usage:   "Divide [2 1 2 3 4] by its first element",
				Action: func(cCtx *cli.Context) error {
					return scaleAndReport([]float64{2, 1, 2, 3, 4}, ElementDivisor(0), chartFile)
				},
			},
			{
				Name:    "run",
				Aliases: []string{"r"},
				Usage:   "Divide a sequence by a value or by one of its elements",
				Action: func(cCtx *cli.Context) error {
					values := cCtx.Float64Slice("values")
					if cCtx.IsSet("divisor") && cCtx.IsSet("divisor_index") {
						return fmt.Errorf("Only one of --divisor and --divisor_index can be set")
					}
					d := ElementDivisor(divisorIndex)
					if cCtx.IsSet("divisor") {
						d = ValueDivisor(divisor)
					}
					return scaleAndReport(values, d, chartFile)
				},
				Flags: []cli.Flag{
					&cli.Float64SliceFlag{
						Name:    "values",
						Aliases: []string{"v"},
						Usage:   "Sequence to scale, comma separated",
						Value:   cli.NewFloat64Slice(2, 1, 2, 3, 4),
					},
					&cli.Float64Flag{
						Name:        "divisor",
						Aliases:     []string{"d"},
						Usage:       "Independent divisor value",
						Destination: &divisor,
					},
					&cli.IntFlag{
						Name:        "divisor_index",
						Aliases:     []string{"i"},
						Usage:       "Divide by the element at this index, taken by reference",
						Destination: &divisorIndex,
					},
				},
			},
			{
				Name:    "spectrum",
				Aliases: []string{"s"},
				Usage:   "Normalize the spectrum of a sine by one of its own bins",
				Action: func(cCtx *cli.Context) error {
					if samples < 1 {
						return fmt.Errorf("Need at least one sample, got %d", samples)
					}
					sig := sineSignal(samples, freq, amplitude, offset)
					if useHann {
						window.Apply(sig, window.Hann)
					}
					mag := magnitudeSpectrum(sig)
					peak := floats.MaxIdx(mag)
					log.Infof("Spectrum of %d bins, peak at bin %d: %v", len(mag), peak, mag[peak])
					for _, u := range newSpectrum(mag).Strongest(3) {
						log.Debugf("Bin %d: %v", u.bin, u.magn)
					}
					return scaleAndReport(mag, ElementDivisor(bin), chartFile)
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "samples",
						Aliases:     []string{"n"},
						Usage:       "Signal length",
						Value:       64,
						Destination: &samples,
					},
					&cli.IntFlag{
						Name:        "freq",
						Aliases:     []string{"f"},
						Usage:       "Full cycles of the sine over the signal",
						Value:       4,
						Destination: &freq,
					},
					&cli.Float64Flag{
						Name:        "amplitude",
						Aliases:     []string{"a"},
						Value:       1,
						Destination: &amplitude,
					},
					&cli.Float64Flag{
						Name:        "offset",
						Aliases:     []string{"o"},
						Usage:       "Constant component, shows up in bin 0",
						Value:       1,
						Destination: &offset,
					},
					&cli.IntFlag{
						Name:        "bin",
						Aliases:     []string{"b"},
						Usage:       "Bin to normalize by",
						Destination: &bin,
					},
					&cli.BoolFlag{
						Name:        "hann",
						Usage:       "Apply a Hann window before the transform",
						Destination: &useHann,
					},
				},
			},
		},
	}
	return app
}

func scaleAndReport(values []float64, d Divisor, chartFile string) error {
	c, err := compareScaling(values, d)
	if err != nil {
		return err
	}
	logComparison(c, d)
	if chartFile == "" {
		return nil
	}
	return writeChart(chartFile, fmt.Sprintf("Divided by %v", d), c)
}

func writeChart(name string, title string, c *Comparison) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("Couldn't create chart file: %w", err)
	}
	defer f.Close()
	if err := drawChart(f, title, comparisonSeries(c)...); err != nil {
		return fmt.Errorf("Couldn't render chart: %w", err)
	}
	log.Infof("Chart written to %s", name)
	return nil
}

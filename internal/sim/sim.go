// Package sim runs one simulate, filter and record cycle.
package sim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/cwbudde/sensor-filter/dsp/core"
	"github.com/cwbudde/sensor-filter/dsp/filter/lowpass"
	"github.com/cwbudde/sensor-filter/dsp/filter/movingavg"
	"github.com/cwbudde/sensor-filter/dsp/signal"
	"github.com/cwbudde/sensor-filter/internal/chart"
	"github.com/cwbudde/sensor-filter/internal/config"
	"github.com/cwbudde/sensor-filter/internal/record"
	"github.com/cwbudde/sensor-filter/measure/noise"
)

// Result holds the aligned sequences of one run. LowPass and LowPassReport
// are nil when the low-pass stage is disabled.
type Result struct {
	Sensor        signal.SensorKind
	SampleRate    float64
	Times         []float64
	Raw           []float64
	MovingAverage []float64
	LowPass       []float64

	MovingAverageReport *noise.Report
	LowPassReport       *noise.Report
}

// Artifacts are the files written for a run.
type Artifacts struct {
	RawCSV      string
	FilteredCSV string
	Plot        string // empty when plotting is disabled
}

// Run simulates cfg.Samples readings with noise drawn from src and filters
// them. cfg must already be validated.
func Run(cfg config.Config, src rand.Source, log logrus.FieldLogger) (*Result, error) {
	kind, err := cfg.SensorKind()
	if err != nil {
		return nil, err
	}

	s := signal.NewSimulator(src, core.WithPeriod(cfg.Dt))
	times, raw, err := s.Generate(kind, cfg.Samples, cfg.Amplitude, cfg.NoiseStd)
	if err != nil {
		return nil, fmt.Errorf("sim: simulating %s: %w", kind, err)
	}
	log.WithFields(logrus.Fields{"sensor": kind, "samples": len(raw)}).Debug("simulated raw readings")

	res, err := Filter(times, raw, cfg.Window, cfg.Alpha, s.Config().SampleRate())
	if err != nil {
		return nil, err
	}
	res.Sensor = kind
	return res, nil
}

// Filter runs both filters over raw. alpha <= 0 disables the low-pass stage.
// Noise reports are computed for non-empty input.
func Filter(times, raw []float64, window int, alpha, sampleRate float64) (*Result, error) {
	res := &Result{SampleRate: sampleRate, Times: times, Raw: raw}

	ma, err := movingavg.Apply(raw, window)
	if err != nil {
		return nil, fmt.Errorf("sim: moving average: %w", err)
	}
	res.MovingAverage = ma

	if alpha > 0 {
		lp, err := lowpass.Apply(raw, alpha)
		if err != nil {
			return nil, fmt.Errorf("sim: low-pass: %w", err)
		}
		res.LowPass = lp
	}

	if len(raw) == 0 {
		return res, nil
	}

	r, err := noise.Compare(raw, ma, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("sim: measuring moving average: %w", err)
	}
	res.MovingAverageReport = &r

	if res.LowPass != nil {
		r, err := noise.Compare(raw, res.LowPass, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("sim: measuring low-pass: %w", err)
		}
		res.LowPassReport = &r
	}
	return res, nil
}

// Series returns the result as CSV columns.
func (r *Result) Series() record.Series {
	return record.Series{
		Times:         r.Times,
		Raw:           r.Raw,
		MovingAverage: r.MovingAverage,
		LowPass:       r.LowPass,
	}
}

// Write stores the raw log, the filtered log and optionally the chart in dir,
// naming them <kind>_<sensor>_<stamp>.
func (r *Result) Write(dir, stamp string, plot bool, log logrus.FieldLogger) (Artifacts, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("sim: creating output directory: %w", err)
	}

	a := Artifacts{
		RawCSV:      filepath.Join(dir, fmt.Sprintf("raw_%s_%s.csv", r.Sensor, stamp)),
		FilteredCSV: filepath.Join(dir, fmt.Sprintf("filtered_%s_%s.csv", r.Sensor, stamp)),
	}

	if err := record.WriteRaw(a.RawCSV, r.Times, r.Raw); err != nil {
		return Artifacts{}, err
	}
	log.WithField("path", a.RawCSV).Debug("wrote raw log")

	if err := record.WriteFiltered(a.FilteredCSV, r.Series()); err != nil {
		return Artifacts{}, err
	}
	log.WithField("path", a.FilteredCSV).Debug("wrote filtered log")

	if plot {
		a.Plot = filepath.Join(dir, fmt.Sprintf("plot_%s_%s.png", r.Sensor, stamp))
		err := chart.Render(a.Plot, chart.Input{
			Sensor:        r.Sensor.String(),
			Unit:          r.Sensor.Unit(),
			Times:         r.Times,
			Raw:           r.Raw,
			MovingAverage: r.MovingAverage,
			LowPass:       r.LowPass,
		})
		if err != nil {
			return Artifacts{}, err
		}
		log.WithField("path", a.Plot).Debug("rendered chart")
	}
	return a, nil
}

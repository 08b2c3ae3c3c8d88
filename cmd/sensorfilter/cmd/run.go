package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/exp/rand"

	"github.com/cwbudde/sensor-filter/internal/config"
	"github.com/cwbudde/sensor-filter/internal/sim"
)

const stampLayout = "20060102-150405"

var now = time.Now

func addFilterFlags(fs *pflag.FlagSet) {
	d := config.Default()
	fs.Int(config.KeyWindow, d.Window, "moving average window size (number of samples)")
	fs.Float64(config.KeyAlpha, d.Alpha, "low-pass smoothing factor (0-1); 0 disables the low-pass filter")
	fs.Float64(config.KeyDt, d.Dt, "sampling period in seconds")
}

func newRunCmd(root *rootOpts) *cobra.Command {
	var noPlot bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Simulate a sensor, filter the readings and write CSV logs and a chart",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			v, err := config.New(root.cfgFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlags(c.Flags()); err != nil {
				return err
			}
			if noPlot {
				v.Set(config.KeyPlot, false)
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			log := newLogger(c.ErrOrStderr(), root.debugModeOn)
			return runSimulation(c, cfg, log)
		},
	}

	d := config.Default()
	fs := c.Flags()
	fs.String(config.KeySensor, d.Sensor, "sensor to simulate: temperature or distance")
	fs.Int(config.KeySamples, d.Samples, "number of samples to generate")
	fs.Float64(config.KeyAmplitude, d.Amplitude, "signal amplitude (ripple for temperature, motion for distance)")
	fs.Float64(config.KeyNoiseStd, d.NoiseStd, "standard deviation of the Gaussian measurement noise")
	fs.Int64(config.KeySeed, d.Seed, "random seed; negative for a clock-based seed")
	fs.String(config.KeyOutputDir, d.OutputDir, "directory for CSV logs and the chart")
	fs.BoolVar(&noPlot, "no-plot", false, "skip chart rendering")
	addFilterFlags(fs)
	return c
}

func runSimulation(c *cobra.Command, cfg config.Config, log *logrus.Entry) error {
	seed := uint64(cfg.Seed)
	if cfg.RandomSeed() {
		seed = uint64(now().UnixNano())
	}
	log = log.WithField("seed", seed)
	log.WithFields(logrus.Fields{
		"sensor":  cfg.Sensor,
		"samples": cfg.Samples,
		"window":  cfg.Window,
		"alpha":   cfg.Alpha,
	}).Info("starting simulation")

	res, err := sim.Run(cfg, rand.NewSource(seed), log)
	if err != nil {
		return err
	}

	artifacts, err := res.Write(cfg.OutputDir, now().Format(stampLayout), cfg.Plot, log)
	if err != nil {
		return err
	}
	log.Info("simulation complete")

	out := c.OutOrStdout()
	printSummary(out, res)
	fmt.Fprintf(out, "Raw data:      %s\n", artifacts.RawCSV)
	fmt.Fprintf(out, "Filtered data: %s\n", artifacts.FilteredCSV)
	if artifacts.Plot != "" {
		fmt.Fprintf(out, "Plot image:    %s\n", artifacts.Plot)
	}
	return nil
}

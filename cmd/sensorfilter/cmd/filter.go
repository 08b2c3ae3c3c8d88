package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/sensor-filter/internal/config"
	"github.com/cwbudde/sensor-filter/internal/record"
	"github.com/cwbudde/sensor-filter/internal/sim"
)

var errMissingPath = errors.New("--input and --output are required")

func newFilterCmd(root *rootOpts) *cobra.Command {
	var input, output string

	c := &cobra.Command{
		Use:   "filter",
		Short: "Filter a recorded raw CSV log",
		Long: `filter reads a time_s,raw CSV log (as written by "run"), applies the
moving-average and low-pass filters and writes the filtered log.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if input == "" || output == "" {
				return errMissingPath
			}
			v, err := config.New(root.cfgFile)
			if err != nil {
				return err
			}
			if err := v.BindPFlags(c.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log := newLogger(c.ErrOrStderr(), root.debugModeOn)

			times, raw, err := record.ReadRaw(input)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"path": input, "samples": len(raw)}).Info("read raw log")

			res, err := sim.Filter(times, raw, cfg.Window, cfg.Alpha, sampleRate(times, cfg.Dt))
			if err != nil {
				return err
			}
			if err := record.WriteFiltered(output, res.Series()); err != nil {
				return err
			}

			out := c.OutOrStdout()
			printSummary(out, res)
			fmt.Fprintf(out, "Filtered data: %s\n", output)
			return nil
		},
	}

	fs := c.Flags()
	fs.StringVarP(&input, "input", "i", "", "raw CSV log to read")
	fs.StringVarP(&output, "output", "o", "", "filtered CSV log to write")
	addFilterFlags(fs)
	return c
}

// sampleRate estimates the rate from the first time step of a recorded log,
// falling back to 1/dt.
func sampleRate(times []float64, dt float64) float64 {
	if len(times) >= 2 {
		if step := times[1] - times[0]; step > 0 {
			return 1 / step
		}
	}
	return 1 / dt
}

package cmd

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
}

var longRootCmdDescription = `sensorfilter simulates noisy temperature or distance readings, smooths
them with a moving-average (boxcar) filter and a first-order low-pass filter,
and records raw and filtered series for comparison.
`

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:           "sensorfilter",
		Short:         "Simulate, filter and log noisy sensor readings.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().BoolVarP(&opts.debugModeOn, "debug", "d", false, "turn on debug logging")

	root.AddCommand(newRunCmd(opts), newFilterCmd(opts), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("sensorfilter: %v", err)
		os.Exit(1)
	}
}

// newLogger returns a logger tagged with a fresh run id.
func newLogger(w io.Writer, debug bool) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
	}
	return l.WithField("run", uuid.NewString())
}

// Command sensorfilter simulates a noisy sensor, smooths the readings with a
// moving-average and a low-pass filter, and logs raw and filtered series as
// CSV files alongside a comparison chart.
//
// Usage:
//
//	sensorfilter run [flags]
//	sensorfilter filter --input raw.csv --output filtered.csv [flags]
//
// Examples:
//
//	sensorfilter run
//	sensorfilter run --sensor distance --window 5 --low-pass-alpha 0.1
//	sensorfilter run --seed -1 --no-plot
//	sensorfilter filter --input data/raw_temperature_20260101-120000.csv --output smooth.csv
package main

import "github.com/cwbudde/sensor-filter/cmd/sensorfilter/cmd"

func main() {
	cmd.Execute()
}

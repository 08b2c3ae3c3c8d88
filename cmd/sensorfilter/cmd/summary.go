package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/olekukonko/tablewriter"

	"github.com/cwbudde/sensor-filter/internal/sim"
	"github.com/cwbudde/sensor-filter/measure/noise"
)

func printSummary(w io.Writer, res *sim.Result) {
	if res.MovingAverageReport == nil {
		fmt.Fprintln(w, "No samples.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Mean", "Std", "Roughness", "Residual RMS", "HF attenuation"})
	table.Append(row("raw", res.MovingAverageReport.RawMean, res.MovingAverageReport.RawStd,
		res.MovingAverageReport.RawRoughness, math.NaN(), math.NaN()))
	table.Append(reportRow("moving average", res.MovingAverageReport))
	if res.LowPassReport != nil {
		table.Append(reportRow("low-pass", res.LowPassReport))
	}
	table.Render()
}

func reportRow(name string, r *noise.Report) []string {
	return row(name, r.FilteredMean, r.FilteredStd, r.FilteredRoughness, r.ResidualRMS, r.HighBandAttenuationDB)
}

func row(name string, mean, std, rough, residual, attenDB float64) []string {
	cell := func(v float64, format string) string {
		if math.IsNaN(v) {
			return "-"
		}
		return fmt.Sprintf(format, v)
	}
	return []string{
		name,
		cell(mean, "%.4f"),
		cell(std, "%.4f"),
		cell(rough, "%.4f"),
		cell(residual, "%.4f"),
		cell(attenDB, "%.1f dB"),
	}
}

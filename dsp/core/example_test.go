package core_test

import (
	"fmt"

	"github.com/cwbudde/sensor-filter/dsp/core"
)

func ExampleApplySamplingOptions() {
	cfg := core.ApplySamplingOptions(core.WithSampleRate(20))

	fmt.Printf("period=%.3f t[10]=%.2f\n", cfg.Period, cfg.Time(10))

	// Output:
	// period=0.050 t[10]=0.50
}

func ExampleDiff() {
	fmt.Println(core.Diff(nil, []float64{1, 2, 4, 7}))

	// Output:
	// [1 2 3]
}

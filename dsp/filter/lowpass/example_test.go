package lowpass_test

import (
	"fmt"

	"github.com/cwbudde/sensor-filter/dsp/filter/lowpass"
)

func ExampleApply() {
	out, err := lowpass.Apply([]float64{10, 0, 0, 0}, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// [10 5 2.5 1.25]
}

func ExampleFilter_ProcessSample() {
	f, err := lowpass.New(0.2)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, x := range []float64{20, 25, 25, 25} {
		fmt.Printf("y[%d] = %.2f\n", i, f.ProcessSample(x))
	}
	// Output:
	// y[0] = 20.00
	// y[1] = 21.00
	// y[2] = 21.80
	// y[3] = 22.44
}

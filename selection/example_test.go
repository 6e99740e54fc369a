package selection_test

import (
	"fmt"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/selection"
)

func ExampleSweep() {
	train, _ := dataset.New([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7})
	validation, _ := dataset.New([]float64{0.5, 2.5}, []float64{2, 6})

	res, err := selection.Sweep(train, validation,
		selection.Grid{Degrees: []int{0, 1}},
		selection.WithLogger(discard()))
	if err != nil {
		fmt.Println(err)
		return
	}
	best := res.Best()
	fmt.Printf("degree=%d validation_rms=%.3f\n", best.Degree, best.ValidationRMS)
	// Output:
	// degree=1 validation_rms=0.000
}

package selection_test

import (
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/selection"
)

func BenchmarkSweep(b *testing.B) {
	errors.SetWarningHandler(func(error) {})
	rng := rand.New(rand.NewPCG(42, 42))
	train := dataset.Sinusoidal(100, 0.3, rng)
	validation := dataset.Sinusoidal(100, 0.3, rng)
	grid := selection.Grid{
		Degrees: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		Lambdas: selection.LogLambdas(-20, -15, -10, -5, 0),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := selection.Sweep(train, validation, grid, selection.WithLogger(discard())); err != nil {
			b.Fatal(err)
		}
	}
}

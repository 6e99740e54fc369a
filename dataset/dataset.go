// Package dataset holds paired (x, t) observations and the synthetic
// sinusoidal generator used to exercise curve fitting.
package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// SampleSet is a set of observations t_i at inputs x_i. X and T always have
// the same length.
type SampleSet struct {
	X []float64
	T []float64
}

// New copies x and t into a SampleSet.
func New(x, t []float64) (SampleSet, error) {
	if len(x) != len(t) {
		return SampleSet{}, errors.NewDimensionError("dataset.New", len(x), len(t), 0)
	}
	return SampleSet{
		X: append([]float64(nil), x...),
		T: append([]float64(nil), t...),
	}, nil
}

// Len returns the number of observations.
func (s SampleSet) Len() int { return len(s.X) }

// Truth is the noiseless generating curve sin(2πx).
func Truth(x float64) float64 {
	return math.Sin(2 * math.Pi * x)
}

// Sinusoidal draws n inputs uniformly from [0, 1) and targets
// t = sin(2πx) + ε with ε ~ N(0, noise²). noise ≤ 0 gives noiseless targets.
func Sinusoidal(n int, noise float64, rng *rand.Rand) SampleSet {
	if n <= 0 {
		return SampleSet{}
	}
	uniform := distuv.Uniform{Min: 0, Max: 1, Src: rng}
	normal := distuv.Normal{Mu: 0, Sigma: noise, Src: rng}

	s := SampleSet{X: make([]float64, n), T: make([]float64, n)}
	for i := 0; i < n; i++ {
		x := uniform.Rand()
		s.X[i] = x
		s.T[i] = Truth(x)
		if noise > 0 {
			s.T[i] += normal.Rand()
		}
	}
	return s
}

// Split shuffles s and returns nTrain training and nValidation validation
// observations. The remainder, possibly empty, is the test set.
func Split(s SampleSet, nTrain, nValidation int, rng *rand.Rand) (train, validation, test SampleSet, err error) {
	if nTrain < 1 {
		return train, validation, test, errors.NewInvalidParameterError("nTrain", "must be at least 1", nTrain)
	}
	if nValidation < 0 {
		return train, validation, test, errors.NewInvalidParameterError("nValidation", "must be non-negative", nValidation)
	}
	if nTrain+nValidation > s.Len() {
		return train, validation, test, errors.NewInvalidParameterError("nTrain+nValidation",
			"exceeds the number of samples", nTrain+nValidation)
	}

	perm := rng.Perm(s.Len())
	take := func(idx []int) SampleSet {
		out := SampleSet{X: make([]float64, len(idx)), T: make([]float64, len(idx))}
		for i, j := range idx {
			out.X[i] = s.X[j]
			out.T[i] = s.T[j]
		}
		return out
	}

	train = take(perm[:nTrain])
	validation = take(perm[nTrain : nTrain+nValidation])
	test = take(perm[nTrain+nValidation:])
	return train, validation, test, nil
}

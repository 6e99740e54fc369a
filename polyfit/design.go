package polyfit

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/core/parallel"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// DesignMatrix returns the N×(degree+1) matrix whose (i, j) entry is x[i]^j.
// Column 0 is all ones.
func DesignMatrix(x []float64, degree int) (*mat.Dense, error) {
	const op = "polyfit.DesignMatrix"
	if len(x) == 0 {
		return nil, errors.NewInvalidInputError(op, "empty input")
	}
	if err := validateDegree(degree); err != nil {
		return nil, err
	}
	return vandermonde(x, degree), nil
}

// vandermonde assumes validated input.
func vandermonde(x []float64, degree int) *mat.Dense {
	a := mat.NewDense(len(x), degree+1, nil)
	parallel.ParallelizeWithThreshold(len(x), parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			row := a.RawRowView(i)
			for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x[i] {
				row[j] = p
			}
		}
	})
	return a
}

func validateDegree(degree int) error {
	if degree < 0 {
		return errors.NewInvalidParameterError("degree", "must be non-negative", degree)
	}
	return nil
}

func validateLambda(lambda float64) error {
	if math.IsNaN(lambda) || lambda < 0 {
		return errors.NewInvalidParameterError("lambda", "must be a non-negative number", lambda)
	}
	if math.IsInf(lambda, 1) {
		return errors.NewInvalidParameterError("lambda", "must be finite", lambda)
	}
	return nil
}

func validateSamples(op string, x, t []float64) error {
	if len(x) == 0 {
		return errors.NewInvalidInputError(op, "empty sample set")
	}
	if len(t) != len(x) {
		return errors.NewDimensionError(op, len(x), len(t), 0)
	}
	return nil
}

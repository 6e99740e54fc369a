package polyfit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// RMSError returns sqrt(Σ (c(x_i) − t_i)² / N), the plain root-mean-square
// residual of c on (x, t).
func RMSError(x, t []float64, c Coefficients) (float64, error) {
	const op = "polyfit.RMSError"
	if err := validateSamples(op, x, t); err != nil {
		return 0, err
	}
	if c.Len() == 0 {
		return 0, errors.NewInvalidInputError(op, "empty coefficient vector")
	}

	pred := mat.NewVecDense(len(x), c.EvalAll(x))
	rms, err := metrics.RMSE(mat.NewVecDense(len(t), t), pred)
	if err != nil {
		return 0, err
	}
	if err := errors.CheckScalar(op, rms); err != nil {
		return 0, err
	}
	return rms, nil
}

// ErrorFunction returns E(W) = ½ Σ (c(x_i) − t_i)², the quantity the
// unregularized solver minimizes.
func ErrorFunction(x, t []float64, c Coefficients) (float64, error) {
	const op = "polyfit.ErrorFunction"
	if err := validateSamples(op, x, t); err != nil {
		return 0, err
	}
	if c.Len() == 0 {
		return 0, errors.NewInvalidInputError(op, "empty coefficient vector")
	}

	sse, err := metrics.SumSquaredError(mat.NewVecDense(len(t), t), mat.NewVecDense(len(x), c.EvalAll(x)))
	if err != nil {
		return 0, err
	}
	return sse / 2, nil
}

package polyfit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Fit returns the coefficients of the degree-M polynomial minimizing
// ||A·W − T||², computed as W = pinv(A)·T.
//
// M ≥ len(x) is allowed and yields the least-norm interpolating solution.
func Fit(x, t []float64, degree int) (Coefficients, error) {
	const op = "polyfit.Fit"
	if err := validateSamples(op, x, t); err != nil {
		return Coefficients{}, err
	}
	if err := validateDegree(degree); err != nil {
		return Coefficients{}, err
	}

	a := vandermonde(x, degree)
	aInv, _, err := pinv(op, a, DefaultRcond)
	if err != nil {
		return Coefficients{}, err
	}

	w := mat.NewVecDense(degree+1, nil)
	w.MulVec(aInv, mat.NewVecDense(len(t), t))

	return newCoefficientsFromVec(op, w)
}

// FitRidge returns the ridge-regularized coefficients
//
//	W = pinv(AᵀA + λN·I) · AᵀT
//
// where N = len(x). Scaling λ by N keeps a given λ comparable across sample
// sizes. With λ = 0 this is the unregularized normal-equation solution.
func FitRidge(x, t []float64, degree int, lambda float64) (Coefficients, error) {
	const op = "polyfit.FitRidge"
	if err := validateSamples(op, x, t); err != nil {
		return Coefficients{}, err
	}
	if err := validateDegree(degree); err != nil {
		return Coefficients{}, err
	}
	if err := validateLambda(lambda); err != nil {
		return Coefficients{}, err
	}

	a := vandermonde(x, degree)
	cols := degree + 1

	var gram mat.Dense
	gram.Mul(a.T(), a)
	penalty := lambda * float64(len(x))
	for j := 0; j < cols; j++ {
		gram.Set(j, j, gram.At(j, j)+penalty)
	}

	gramInv, _, err := pinv(op, &gram, DefaultRcond)
	if err != nil {
		return Coefficients{}, err
	}

	var at mat.VecDense
	at.MulVec(a.T(), mat.NewVecDense(len(t), t))

	w := mat.NewVecDense(cols, nil)
	w.MulVec(gramInv, &at)

	return newCoefficientsFromVec(op, w)
}

func newCoefficientsFromVec(op string, w *mat.VecDense) (Coefficients, error) {
	c := Coefficients{asc: mat.Col(nil, 0, w)}
	if err := errors.CheckNumericalStability(op, c.asc); err != nil {
		return Coefficients{}, err
	}
	return c, nil
}

package polyfit

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// DefaultRcond is the relative cutoff for small singular values: singular
// values at or below DefaultRcond·σ_max are treated as zero.
const DefaultRcond = 1e-15

// Pinv returns the Moore-Penrose pseudo-inverse of a, computed from its thin
// singular value decomposition. A rank-deficient a is not an error.
func Pinv(a mat.Matrix) (*mat.Dense, error) {
	inv, _, err := pinv("polyfit.Pinv", a, DefaultRcond)
	return inv, err
}

// pinv also returns the numerical rank. When the rank is below min(rows, cols)
// an IllConditionedWarning is raised through errors.Warn.
func pinv(op string, a mat.Matrix, rcond float64) (inv *mat.Dense, rank int, err error) {
	defer errors.Recover(&err, op)

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, 0, errors.NewInvalidInputError(op, "empty matrix")
	}
	if err := errors.CheckMatrix(op, a); err != nil {
		return nil, 0, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, 0, errors.NewComputationFailedError(op, errors.New("SVD factorization did not converge"))
	}

	values := svd.Values(nil)
	k := len(values)

	// Values are sorted in decreasing order.
	cutoff := rcond * values[0]
	inverted := make([]float64, k)
	for i, s := range values {
		if s > cutoff {
			inverted[i] = 1 / s
			rank++
		}
	}
	if rank < k {
		errors.Warn(errors.NewIllConditionedWarning(op, rank, c, cutoff))
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// pinv(A) = V · Σ⁺ · Uᵀ
	var vs mat.Dense
	vs.Mul(&v, mat.NewDiagDense(k, inverted))
	inv = mat.NewDense(c, r, nil)
	inv.Mul(&vs, u.T())

	if err := errors.CheckMatrix(op, inv); err != nil {
		return nil, 0, err
	}
	return inv, rank, nil
}

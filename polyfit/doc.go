// Package polyfit fits polynomials by linear least squares.
//
// The package is a set of pure functions over plain slices:
//
//   - DesignMatrix builds the N×(M+1) Vandermonde matrix with entries x_i^j.
//   - Fit solves min ||A·W − T||² with the Moore-Penrose pseudo-inverse, so
//     rank-deficient problems (including M ≥ N) return the least-norm solution
//     instead of a singular-matrix error.
//   - FitRidge solves the ridge-regularized normal equations
//     (AᵀA + λN·I)·W = AᵀT, scaling the penalty by the sample count N.
//   - RMSError scores coefficients on held-out data as sqrt(Σ residual² / N);
//     ErrorFunction returns E(W) = ½·Σ residual².
//   - PolynomialRegression wraps the solvers in the Fit/Predict/Score
//     estimator interface, optionally standardizing x first.
//
// # Coefficient order
//
// Coefficients are stored lowest degree first (W[0] is the bias), matching the
// design-matrix columns. Callers that expect the highest-degree-first
// convention use Coefficients.Descending and PolyvalDescending.
//
// # RMS scaling
//
// RMSError computes sqrt(Σ residual² / N). The textbook definition
// E_RMS = sqrt(2E(W)/N) with E(W) = ½·Σ residual² is the same number; a
// variant sometimes written as sqrt((2/N)·Σ residual²) double counts the
// factor of two and is not what this package computes.
//
// Example:
//
//	w, err := polyfit.Fit([]float64{0, 1, 2}, []float64{0, 1, 4}, 2)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(w.Ascending()) // ≈ [0 0 1]
package polyfit

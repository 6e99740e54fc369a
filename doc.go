// Package curvefit fits polynomials to one-dimensional data by linear least
// squares and selects the degree and ridge strength on held-out data.
//
// # Packages
//
//   - polyfit: design matrix, pseudo-inverse solver, ridge solver, RMS error,
//     and the PolynomialRegression estimator.
//   - selection: grid sweep over (degree, λ), best-point selection, test
//     evaluation, and the Explorer that refits on every parameter change.
//   - dataset: sample sets, the sin(2πx) generator and random splits.
//   - report: fit and error-curve plots (gonum/plot) and .npy export.
//   - metrics, preprocessing: RMSE / R² and StandardScaler used by polyfit.
//   - pkg/errors, pkg/log: structured errors and logging shared by all packages.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//	    "math/rand/v2"
//
//	    "github.com/YuminosukeSato/curvefit/dataset"
//	    "github.com/YuminosukeSato/curvefit/selection"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewPCG(1, 1))
//	    data := dataset.Sinusoidal(110, 0.3, rng)
//	    train, val, test, err := dataset.Split(data, 10, 50, rng)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := selection.Sweep(train, val, selection.Grid{
//	        Degrees: []int{0, 1, 3, 9},
//	        Lambdas: selection.LogLambdas(-18, -10, 0),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    best := res.Best()
//	    rms, _ := selection.Evaluate(best, test)
//	    fmt.Printf("M=%d λ=%g test RMS=%.3f\n", best.Degree, best.Lambda, rms)
//	}
//
// # Error Handling
//
// Errors carry stack traces (cockroachdb/errors) and can be classified with
// errors.Is against pkg/errors.ErrInvalidInput, ErrInvalidParameter and
// ErrComputationFailed. Rank-deficient systems are not errors; the solvers
// return the least-norm solution and raise an IllConditionedWarning through
// pkg/errors.Warn.
//
// # Logging
//
// Call log.SetupLogger("debug") to get per-fit JSON records from zerolog.
package curvefit

// Package selection chooses the polynomial degree and ridge strength by
// fitting on a training set and scoring on a held-out validation set.
package selection

import (
	"math"
	"time"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/YuminosukeSato/curvefit/polyfit"
)

// Params is one hyperparameter setting. Lambda == 0 selects the
// unregularized solver.
type Params struct {
	Degree int
	Lambda float64
}

// LogLambda returns ln(λ), or -Inf when λ is 0.
func (p Params) LogLambda() float64 {
	return math.Log(p.Lambda)
}

// LambdaFromLog maps ln(λ) back to λ. -Inf maps to 0.
func LambdaFromLog(lnLambda float64) float64 {
	if math.IsInf(lnLambda, -1) {
		return 0
	}
	return math.Exp(lnLambda)
}

// LogLambdas converts a list of ln(λ) values into λ values.
func LogLambdas(lnLambdas ...float64) []float64 {
	out := make([]float64, len(lnLambdas))
	for i, v := range lnLambdas {
		out[i] = LambdaFromLog(v)
	}
	return out
}

// Grid enumerates degrees in the outer loop and lambdas in the inner loop.
// A nil or empty Lambdas fits every degree once with the unregularized solver.
type Grid struct {
	Degrees []int
	Lambdas []float64
}

// Params returns the grid points in sweep order.
func (g Grid) Params() []Params {
	lambdas := g.Lambdas
	if len(lambdas) == 0 {
		lambdas = []float64{0}
	}
	out := make([]Params, 0, len(g.Degrees)*len(lambdas))
	for _, m := range g.Degrees {
		for _, lambda := range lambdas {
			out = append(out, Params{Degree: m, Lambda: lambda})
		}
	}
	return out
}

// Point is the outcome of fitting one grid point.
type Point struct {
	Params
	Coefficients  polyfit.Coefficients
	TrainRMS      float64
	ValidationRMS float64
}

// Result holds every point of a sweep in grid order.
type Result struct {
	Grid   Grid
	Points []Point
}

// Best returns the point with the smallest validation RMS. Ties keep the
// earliest point in grid order.
func (r *Result) Best() Point {
	if len(r.Points) == 0 {
		return Point{}
	}
	best := 0
	for i := 1; i < len(r.Points); i++ {
		if r.Points[i].ValidationRMS < r.Points[best].ValidationRMS {
			best = i
		}
	}
	return r.Points[best]
}

// Sweep fits every grid point on train and scores it on both train and
// validation. The first failing point aborts the sweep.
func Sweep(train, validation dataset.SampleSet, grid Grid, opts ...Option) (*Result, error) {
	o := newOptions(opts)
	logger := o.logger.With(log.OperationKey, log.OperationSweep)

	if len(grid.Degrees) == 0 {
		return nil, errors.NewInvalidParameterError("grid.Degrees", "must not be empty", grid.Degrees)
	}
	if train.Len() == 0 {
		return nil, errors.NewInvalidInputError("selection.Sweep", "empty training set")
	}
	if validation.Len() == 0 {
		return nil, errors.NewInvalidInputError("selection.Sweep", "empty validation set")
	}

	start := time.Now()
	params := grid.Params()
	result := &Result{Grid: grid, Points: make([]Point, 0, len(params))}

	for _, p := range params {
		pt, err := score(p, train, validation)
		if err != nil {
			logger.Error("sweep point failed",
				log.DegreeKey, p.Degree,
				log.RegularizationKey, p.Lambda,
				log.ErrAttrKey, err,
			)
			return nil, errors.Wrapf(err, "sweep point degree=%d lambda=%g", p.Degree, p.Lambda)
		}
		logger.Debug("sweep point fitted",
			log.DegreeKey, p.Degree,
			log.RegularizationKey, p.Lambda,
			log.SamplesKey, train.Len(),
			log.TrainRMSKey, pt.TrainRMS,
			log.ValidationRMSKey, pt.ValidationRMS,
		)
		result.Points = append(result.Points, pt)
	}

	best := result.Best()
	logger.Info("sweep completed",
		log.GridSizeKey, len(params),
		log.DegreeKey, best.Degree,
		log.RegularizationKey, best.Lambda,
		log.ValidationRMSKey, best.ValidationRMS,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return result, nil
}

// Evaluate returns the RMS error of best's coefficients on test.
func Evaluate(best Point, test dataset.SampleSet) (float64, error) {
	return polyfit.RMSError(test.X, test.T, best.Coefficients)
}

// fit dispatches to the plain or ridge solver.
func fit(p Params, train dataset.SampleSet) (polyfit.Coefficients, error) {
	if p.Lambda == 0 {
		return polyfit.Fit(train.X, train.T, p.Degree)
	}
	return polyfit.FitRidge(train.X, train.T, p.Degree, p.Lambda)
}

func score(p Params, train, eval dataset.SampleSet) (Point, error) {
	w, err := fit(p, train)
	if err != nil {
		return Point{}, err
	}
	trainRMS, err := polyfit.RMSError(train.X, train.T, w)
	if err != nil {
		return Point{}, err
	}
	evalRMS, err := polyfit.RMSError(eval.X, eval.T, w)
	if err != nil {
		return Point{}, err
	}
	return Point{
		Params:        p,
		Coefficients:  w,
		TrainRMS:      trainRMS,
		ValidationRMS: evalRMS,
	}, nil
}

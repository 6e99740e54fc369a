package selection

import (
	"gonum.org/v1/gonum/floats"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/YuminosukeSato/curvefit/polyfit"
)

// Snapshot is the state shown after a parameter change.
type Snapshot struct {
	Params
	Coefficients polyfit.Coefficients
	TrainRMS     float64
	EvalRMS      float64
}

// Curve samples the fitted polynomial at n evenly spaced points on [lo, hi].
func (s Snapshot) Curve(lo, hi float64, n int) (xs, ys []float64) {
	switch {
	case n <= 0:
		return nil, nil
	case n == 1:
		xs = []float64{lo}
	default:
		xs = make([]float64, n)
		floats.Span(xs, lo, hi)
	}
	return xs, s.Coefficients.EvalAll(xs)
}

// Handler receives the result of every recompute. On failure the snapshot
// holds only the requested Params.
type Handler func(Snapshot, error)

// Explorer refits on every parameter change and reports through a Handler.
// It keeps no state between calls.
type Explorer struct {
	train    dataset.SampleSet
	eval     dataset.SampleSet
	onChange Handler
	logger   log.Logger
}

// NewExplorer returns an Explorer fitting on train and scoring on eval.
// onChange may be nil.
func NewExplorer(train, eval dataset.SampleSet, onChange Handler, opts ...Option) *Explorer {
	o := newOptions(opts)
	return &Explorer{
		train:    train,
		eval:     eval,
		onChange: onChange,
		logger:   o.logger.With(log.OperationKey, log.OperationExplore),
	}
}

// Set refits with p, calls the handler and returns the same values.
func (e *Explorer) Set(p Params) (Snapshot, error) {
	snap := Snapshot{Params: p}

	pt, err := score(p, e.train, e.eval)
	if err != nil {
		e.logger.Warn("recompute failed",
			log.DegreeKey, p.Degree,
			log.RegularizationKey, p.Lambda,
			log.ErrAttrKey, err,
		)
	} else {
		snap.Coefficients = pt.Coefficients
		snap.TrainRMS = pt.TrainRMS
		snap.EvalRMS = pt.ValidationRMS
		fields := []any{
			log.DegreeKey, p.Degree,
			log.RegularizationKey, p.Lambda,
			log.TrainRMSKey, snap.TrainRMS,
			log.ValidationRMSKey, snap.EvalRMS,
		}
		if p.Lambda > 0 {
			fields = append(fields, log.LogRegularizationKey, p.LogLambda())
		}
		e.logger.Debug("recomputed", fields...)
	}

	if e.onChange != nil {
		e.onChange(snap, err)
	}
	return snap, err
}

// SetLog is Set with λ given as ln(λ), the scale a slider moves on.
func (e *Explorer) SetLog(degree int, lnLambda float64) (Snapshot, error) {
	return e.Set(Params{Degree: degree, Lambda: LambdaFromLog(lnLambda)})
}

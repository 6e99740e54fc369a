package report

import (
	"io"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/polyfit"
	"github.com/YuminosukeSato/curvefit/selection"
)

// Column layout of WriteSweepNpy.
const (
	ColDegree = iota
	ColLambda
	ColTrainRMS
	ColValidationRMS
	sweepCols
)

// SweepMatrix returns a K×4 matrix with one row per sweep point in grid order:
// degree, λ, train RMS, validation RMS.
func SweepMatrix(result *selection.Result) (*mat.Dense, error) {
	if result == nil || len(result.Points) == 0 {
		return nil, errors.NewInvalidInputError("report.SweepMatrix", "empty sweep result")
	}
	m := mat.NewDense(len(result.Points), sweepCols, nil)
	for i, pt := range result.Points {
		m.SetRow(i, []float64{float64(pt.Degree), pt.Lambda, pt.TrainRMS, pt.ValidationRMS})
	}
	return m, nil
}

// WriteSweepNpy writes SweepMatrix(result) to w in .npy format.
func WriteSweepNpy(w io.Writer, result *selection.Result) error {
	m, err := SweepMatrix(result)
	if err != nil {
		return err
	}
	if err := npyio.Write(w, m); err != nil {
		return errors.Wrap(err, "write sweep npy")
	}
	return nil
}

// WriteCoefficientsNpy writes the coefficients, lowest degree first, as a
// 1-D .npy array.
func WriteCoefficientsNpy(w io.Writer, c polyfit.Coefficients) error {
	if c.Len() == 0 {
		return errors.NewInvalidInputError("report.WriteCoefficientsNpy", "empty coefficient vector")
	}
	if err := npyio.Write(w, c.Ascending()); err != nil {
		return errors.Wrap(err, "write coefficients npy")
	}
	return nil
}

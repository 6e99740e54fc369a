// Package report renders fit and model-selection results as plots and
// .npy arrays.
package report

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/selection"
)

// Default figure size used by Save.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

// curveSamples is the number of points used to draw a fitted polynomial.
const curveSamples = 200

// Series is a named sample set drawn as a scatter.
type Series struct {
	Name string
	Data dataset.SampleSet
}

// FitPlot draws every series as points, the generating curve sin(2πx) and the
// fitted polynomial of snap over the combined x range of the series.
func FitPlot(sets []Series, snap selection.Snapshot) (*plot.Plot, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range sets {
		for _, x := range s.Data.X {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		return nil, errors.NewInvalidInputError("report.FitPlot", "no samples to plot")
	}
	if snap.Coefficients.Len() == 0 {
		return nil, errors.NewInvalidInputError("report.FitPlot", "snapshot has no coefficients")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("M = %d, λ = %.3g (train RMS %.3f, eval RMS %.3f)",
		snap.Degree, snap.Lambda, snap.TrainRMS, snap.EvalRMS)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "t"
	p.Add(plotter.NewGrid())

	for i, s := range sets {
		sc, err := plotter.NewScatter(xys(s.Data.X, s.Data.T))
		if err != nil {
			return nil, errors.Wrapf(err, "scatter %q", s.Name)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)
	}

	truth := plotter.NewFunction(dataset.Truth)
	truth.XMin, truth.XMax = lo, hi
	truth.Samples = curveSamples
	truth.LineStyle.Color = plotutil.Color(len(sets))
	truth.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(truth)
	p.Legend.Add("sin(2πx)", truth)

	xs, ys := snap.Curve(lo, hi, curveSamples)
	fitted, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return nil, errors.Wrap(err, "fitted curve")
	}
	fitted.LineStyle.Color = plotutil.Color(len(sets) + 1)
	fitted.LineStyle.Width = vg.Points(1.5)
	p.Add(fitted)
	p.Legend.Add("fit", fitted)

	return p, nil
}

// ErrorCurvePlot draws train and validation RMS for every point of result.
// With more than one degree the x axis is M and each λ gets its own pair of
// lines; otherwise the x axis is ln(λ) and points with λ = 0 are skipped.
func ErrorCurvePlot(result *selection.Result) (*plot.Plot, error) {
	if result == nil || len(result.Points) == 0 {
		return nil, errors.NewInvalidInputError("report.ErrorCurvePlot", "empty sweep result")
	}

	p := plot.New()
	p.Title.Text = "RMS error"
	p.Y.Label.Text = "E_RMS"
	p.Add(plotter.NewGrid())

	byDegree := len(result.Grid.Degrees) > 1
	type curve struct {
		label      string
		train, val plotter.XYs
	}
	var curves []*curve
	index := map[string]*curve{}

	for _, pt := range result.Points {
		var key string
		var x float64
		if byDegree {
			key = lambdaLabel(pt.Lambda)
			x = float64(pt.Degree)
		} else {
			if pt.Lambda <= 0 {
				continue
			}
			key = fmt.Sprintf("M=%d", pt.Degree)
			x = pt.LogLambda()
		}
		c, ok := index[key]
		if !ok {
			c = &curve{label: key}
			index[key] = c
			curves = append(curves, c)
		}
		c.train = append(c.train, plotter.XY{X: x, Y: pt.TrainRMS})
		c.val = append(c.val, plotter.XY{X: x, Y: pt.ValidationRMS})
	}
	if len(curves) == 0 {
		return nil, errors.NewInvalidInputError("report.ErrorCurvePlot", "no points with λ > 0")
	}

	if byDegree {
		p.X.Label.Text = "M"
	} else {
		p.X.Label.Text = "ln λ"
	}

	for i, c := range curves {
		for _, part := range []struct {
			name   string
			data   plotter.XYs
			dashed bool
		}{
			{"train", c.train, false},
			{"validation", c.val, true},
		} {
			line, points, err := plotter.NewLinePoints(part.data)
			if err != nil {
				return nil, errors.Wrapf(err, "%s curve %s", part.name, c.label)
			}
			line.Color = plotutil.Color(i)
			points.Color = plotutil.Color(i)
			if part.dashed {
				line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
				points.Shape = draw.BoxGlyph{}
			} else {
				points.Shape = draw.CircleGlyph{}
			}
			p.Add(line, points)
			p.Legend.Add(fmt.Sprintf("%s (%s)", part.name, c.label), line, points)
		}
	}
	return p, nil
}

// Save writes p to path as PNG or SVG depending on the extension.
func Save(p *plot.Plot, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg":
	default:
		return errors.NewInvalidParameterError("path", "extension must be .png or .svg", path)
	}
	if err := p.Save(Width, Height, path); err != nil {
		return errors.Wrapf(err, "save plot to %s", path)
	}
	return nil
}

func lambdaLabel(lambda float64) string {
	if lambda == 0 {
		return "λ=0"
	}
	return fmt.Sprintf("ln λ=%.3g", math.Log(lambda))
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

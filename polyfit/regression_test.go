package polyfit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
)

// quadraticData returns y = 1 + 2x + 3x² sampled on n points in [-1, 1].
func quadraticData(n int) (*mat.Dense, *mat.Dense) {
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x := -1 + 2*float64(i)/float64(n-1)
		X.Set(i, 0, x)
		y.Set(i, 0, 1+2*x+3*x*x)
	}
	return X, y
}

func TestPolynomialRegression(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		tol  float64
	}{
		{"plain", []Option{WithDegree(2)}, 1e-9},
		{"standardized", []Option{WithDegree(2), WithStandardize(true)}, 1e-9},
		{"small ridge", []Option{WithDegree(2), WithLambda(1e-10)}, 1e-6},
	}

	X, y := quadraticData(20)
	XTest := mat.NewDense(3, 1, []float64{-0.5, 0.25, 0.9})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := log.NewTestLogger(log.LevelError)
			reg := NewPolynomialRegression(append(tt.opts, WithLogger(logger))...)

			if err := reg.Fit(X, y); err != nil {
				t.Fatalf("Fit() unexpected error: %v", err)
			}
			if !reg.IsFitted() {
				t.Fatal("IsFitted() = false after Fit")
			}

			pred, err := reg.Predict(XTest)
			if err != nil {
				t.Fatalf("Predict() unexpected error: %v", err)
			}
			for i := 0; i < 3; i++ {
				x := XTest.At(i, 0)
				want := 1 + 2*x + 3*x*x
				if got := pred.At(i, 0); math.Abs(got-want) > tt.tol {
					t.Errorf("Predict(%v) = %v, want %v", x, got, want)
				}
			}

			score, err := reg.Score(X, y)
			if err != nil {
				t.Fatalf("Score() unexpected error: %v", err)
			}
			if math.Abs(score-1) > tt.tol {
				t.Errorf("Score() = %v, want 1", score)
			}
		})
	}
}

func TestPolynomialRegressionCoefficients(t *testing.T) {
	X, y := quadraticData(10)
	reg := NewPolynomialRegression(WithDegree(2))
	if err := reg.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	c, err := reg.Coefficients()
	if err != nil {
		t.Fatalf("Coefficients() unexpected error: %v", err)
	}
	want := []float64{1, 2, 3}
	for j, w := range want {
		if math.Abs(c.At(j)-w) > 1e-9 {
			t.Errorf("W[%d] = %v, want %v", j, c.At(j), w)
		}
	}
	if reg.Degree() != 2 || reg.Lambda() != 0 {
		t.Errorf("Degree/Lambda = %d/%v", reg.Degree(), reg.Lambda())
	}
}

func TestPolynomialRegressionNotFitted(t *testing.T) {
	reg := NewPolynomialRegression()
	X := mat.NewDense(1, 1, []float64{0})

	var nf *errors.NotFittedError
	if _, err := reg.Predict(X); !errors.As(err, &nf) {
		t.Errorf("Predict() error = %v, want NotFittedError", err)
	}
	if _, err := reg.Score(X, X); !errors.As(err, &nf) {
		t.Errorf("Score() error = %v, want NotFittedError", err)
	}
	if _, err := reg.Coefficients(); !errors.As(err, &nf) {
		t.Errorf("Coefficients() error = %v, want NotFittedError", err)
	}
}

func TestPolynomialRegressionFitErrors(t *testing.T) {
	tests := []struct {
		name    string
		reg     *PolynomialRegression
		X, y    mat.Matrix
		wantErr error
	}{
		{
			name:    "two feature columns",
			reg:     NewPolynomialRegression(),
			X:       mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			y:       mat.NewDense(2, 1, []float64{1, 2}),
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "row mismatch",
			reg:     NewPolynomialRegression(),
			X:       mat.NewDense(3, 1, []float64{1, 2, 3}),
			y:       mat.NewDense(2, 1, []float64{1, 2}),
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "negative degree",
			reg:     NewPolynomialRegression(WithDegree(-1)),
			X:       mat.NewDense(2, 1, []float64{1, 2}),
			y:       mat.NewDense(2, 1, []float64{1, 2}),
			wantErr: errors.ErrInvalidParameter,
		},
		{
			name:    "negative lambda",
			reg:     NewPolynomialRegression(WithLambda(-1)),
			X:       mat.NewDense(2, 1, []float64{1, 2}),
			y:       mat.NewDense(2, 1, []float64{1, 2}),
			wantErr: errors.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := log.NewTestLogger(log.LevelError)
			tt.reg.logger = logger

			err := tt.reg.Fit(tt.X, tt.y)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Fit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.reg.IsFitted() {
				t.Error("IsFitted() = true after failed Fit")
			}
		})
	}
}

func TestPolynomialRegressionLogsFit(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	reg := NewPolynomialRegression(WithDegree(3), WithLambda(0.01), WithLogger(logger))

	X, y := quadraticData(8)
	if err := reg.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	if !logger.ContainsMessage("model fitted") {
		t.Error("expected a fit log entry")
	}
	if !logger.ContainsField(log.OperationKey, log.OperationFitRidge) {
		t.Error("expected operation fit_ridge")
	}
	if !logger.ContainsField(log.DegreeKey, float64(3)) {
		t.Error("expected degree 3")
	}
	if !logger.ContainsField(log.ModelNameKey, "PolynomialRegression") {
		t.Error("expected model name field")
	}
}

package polyfit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// sinSamples returns n evenly spaced points of sin(2πx) on [0, 1].
func sinSamples(n int) (x, t []float64) {
	x = make([]float64, n)
	floats.Span(x, 0, 1)
	t = make([]float64, n)
	for i, v := range x {
		t[i] = math.Sin(2 * math.Pi * v)
	}
	return x, t
}

func assertCoefficients(t *testing.T, name string, got Coefficients, want []float64, tol float64) {
	t.Helper()
	if got.Len() != len(want) {
		t.Fatalf("%s: got %d coefficients, want %d", name, got.Len(), len(want))
	}
	if !floats.EqualApprox(got.Ascending(), want, tol) {
		t.Errorf("%s = %v, want %v (tolerance: %v)", name, got.Ascending(), want, tol)
	}
}

func TestFitScenarios(t *testing.T) {
	tests := []struct {
		name   string
		x, t   []float64
		degree int
		want   []float64
	}{
		{
			name:   "line through two points",
			x:      []float64{0, 1},
			t:      []float64{0, 1},
			degree: 1,
			want:   []float64{0, 1},
		},
		{
			name:   "parabola through three points",
			x:      []float64{0, 1, 2},
			t:      []float64{0, 1, 4},
			degree: 2,
			want:   []float64{0, 0, 1},
		},
		{
			name:   "exact cubic from overdetermined data",
			x:      []float64{-2, -1, 0, 1, 2, 3},
			t:      []float64{-7, -1, 1, 5, 17, 43},
			degree: 3,
			want:   []float64{1, 2, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Fit(tt.x, tt.t, tt.degree)
			if err != nil {
				t.Fatalf("Fit() unexpected error: %v", err)
			}
			assertCoefficients(t, "Fit()", got, tt.want, 1e-9)

			rms, err := RMSError(tt.x, tt.t, got)
			if err != nil {
				t.Fatalf("RMSError() unexpected error: %v", err)
			}
			if rms > 1e-9 {
				t.Errorf("RMSError() = %v, want 0", rms)
			}
		})
	}
}

func TestFitDegreeZeroIsMean(t *testing.T) {
	x := []float64{0.1, 0.4, 0.5, 0.9, 1.7}
	target := []float64{3, -1, 2.5, 0, 8}

	got, err := Fit(x, target, 0)
	if err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	assertCoefficients(t, "Fit()", got, []float64{stat.Mean(target, nil)}, 1e-12)
}

func TestFitInterpolates(t *testing.T) {
	for _, n := range []int{2, 4, 6, 8} {
		x, target := sinSamples(n)

		got, err := Fit(x, target, n-1)
		if err != nil {
			t.Fatalf("n=%d: Fit() unexpected error: %v", n, err)
		}
		for i := range x {
			if y := got.Eval(x[i]); math.Abs(y-target[i]) > 1e-8 {
				t.Errorf("n=%d: W(%v) = %v, want %v", n, x[i], y, target[i])
			}
		}
	}
}

func TestFitDegreeExceedsSamples(t *testing.T) {
	captureWarnings(t)

	x := []float64{0, 1, 2}
	target := []float64{1, -1, 3}

	got, err := Fit(x, target, 5)
	if err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	if got.Degree() != 5 {
		t.Errorf("Degree() = %d, want 5", got.Degree())
	}
	rms, err := RMSError(x, target, got)
	if err != nil {
		t.Fatalf("RMSError() unexpected error: %v", err)
	}
	if rms > 1e-8 {
		t.Errorf("RMSError() = %v, want 0 for an underdetermined fit", rms)
	}
}

func TestFitRidgeZeroMatchesFit(t *testing.T) {
	x, target := sinSamples(10)

	plain, err := Fit(x, target, 3)
	if err != nil {
		t.Fatalf("Fit() unexpected error: %v", err)
	}
	ridge, err := FitRidge(x, target, 3, 0)
	if err != nil {
		t.Fatalf("FitRidge() unexpected error: %v", err)
	}
	assertCoefficients(t, "FitRidge(λ=0)", ridge, plain.Ascending(), 1e-6)
}

func TestFitRidgeShrinksCoefficients(t *testing.T) {
	x, target := sinSamples(10)
	lambdas := []float64{1e-4, 1e-3, 1e-2, 1e-1, 1, 10, 100}

	prev := math.Inf(1)
	for _, lambda := range lambdas {
		w, err := FitRidge(x, target, 5, lambda)
		if err != nil {
			t.Fatalf("FitRidge(λ=%g) unexpected error: %v", lambda, err)
		}
		norm := w.Norm()
		if norm > prev*(1+1e-9) {
			t.Errorf("‖W‖ grew from %v to %v at λ=%g", prev, norm, lambda)
		}
		prev = norm
	}
}

func TestFitRidgeScalesPenaltyBySampleCount(t *testing.T) {
	// Repeating every sample leaves the solution unchanged when λ is scaled by N.
	x, target := sinSamples(6)
	x2 := append(append([]float64(nil), x...), x...)
	t2 := append(append([]float64(nil), target...), target...)

	w1, err := FitRidge(x, target, 3, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := FitRidge(x2, t2, 3, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	assertCoefficients(t, "FitRidge(duplicated)", w2, w1.Ascending(), 1e-9)
}

func TestFitErrors(t *testing.T) {
	tests := []struct {
		name    string
		fit     func() (Coefficients, error)
		wantErr error
	}{
		{
			name:    "Fit empty input",
			fit:     func() (Coefficients, error) { return Fit(nil, nil, 1) },
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "Fit length mismatch",
			fit:     func() (Coefficients, error) { return Fit([]float64{1, 2}, []float64{1}, 1) },
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "Fit negative degree",
			fit:     func() (Coefficients, error) { return Fit([]float64{1, 2}, []float64{1, 2}, -1) },
			wantErr: errors.ErrInvalidParameter,
		},
		{
			name:    "FitRidge empty input",
			fit:     func() (Coefficients, error) { return FitRidge([]float64{}, []float64{}, 1, 0.1) },
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "FitRidge negative lambda",
			fit:     func() (Coefficients, error) { return FitRidge([]float64{1, 2}, []float64{1, 2}, 1, -0.5) },
			wantErr: errors.ErrInvalidParameter,
		},
		{
			name:    "FitRidge NaN lambda",
			fit:     func() (Coefficients, error) { return FitRidge([]float64{1, 2}, []float64{1, 2}, 1, math.NaN()) },
			wantErr: errors.ErrInvalidParameter,
		},
		{
			name:    "FitRidge negative degree",
			fit:     func() (Coefficients, error) { return FitRidge([]float64{1, 2}, []float64{1, 2}, -2, 0) },
			wantErr: errors.ErrInvalidParameter,
		},
		{
			name:    "Fit NaN target",
			fit:     func() (Coefficients, error) { return Fit([]float64{0, 1}, []float64{0, math.NaN()}, 1) },
			wantErr: errors.ErrComputationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fit()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRMSError(t *testing.T) {
	tests := []struct {
		name    string
		x, t    []float64
		coef    Coefficients
		want    float64
		wantErr error
	}{
		{
			name: "exact fit",
			x:    []float64{0, 1, 2},
			t:    []float64{0, 1, 4},
			coef: NewCoefficients([]float64{0, 0, 1}),
			want: 0,
		},
		{
			name: "constant residual",
			x:    []float64{0, 1, 2, 3},
			t:    []float64{1, 1, 1, 1},
			coef: NewCoefficients([]float64{3}),
			want: 2,
		},
		{
			name: "plain mean, no factor of two",
			x:    []float64{0, 1},
			t:    []float64{0, 0},
			coef: NewCoefficients([]float64{0, 2}),
			want: math.Sqrt(2),
		},
		{
			name:    "empty",
			coef:    NewCoefficients([]float64{1}),
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "length mismatch",
			x:       []float64{0, 1},
			t:       []float64{0},
			coef:    NewCoefficients([]float64{1}),
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "no coefficients",
			x:       []float64{0},
			t:       []float64{0},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RMSError(tt.x, tt.t, tt.coef)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RMSError() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("RMSError() unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RMSError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorFunctionMatchesRMS(t *testing.T) {
	x, target := sinSamples(12)
	w, err := Fit(x, target, 3)
	if err != nil {
		t.Fatal(err)
	}

	e, err := ErrorFunction(x, target, w)
	if err != nil {
		t.Fatalf("ErrorFunction() unexpected error: %v", err)
	}
	rms, err := RMSError(x, target, w)
	if err != nil {
		t.Fatalf("RMSError() unexpected error: %v", err)
	}
	// E_RMS = sqrt(2E/N)
	if got := math.Sqrt(2 * e / float64(len(x))); math.Abs(got-rms) > 1e-12 {
		t.Errorf("sqrt(2E/N) = %v, RMSError() = %v", got, rms)
	}

	if _, err := ErrorFunction(nil, nil, w); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("ErrorFunction(empty) error = %v, want %v", err, errors.ErrInvalidInput)
	}
}

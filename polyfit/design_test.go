package polyfit

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

func TestDesignMatrix(t *testing.T) {
	tests := []struct {
		name   string
		x      []float64
		degree int
		want   *mat.Dense
	}{
		{
			name:   "quadratic on two points",
			x:      []float64{2, 3},
			degree: 2,
			want:   mat.NewDense(2, 3, []float64{1, 2, 4, 1, 3, 9}),
		},
		{
			name:   "degree zero is a column of ones",
			x:      []float64{-1.5, 0, 7},
			degree: 0,
			want:   mat.NewDense(3, 1, []float64{1, 1, 1}),
		},
		{
			name:   "more columns than rows",
			x:      []float64{-1},
			degree: 4,
			want:   mat.NewDense(1, 5, []float64{1, -1, 1, -1, 1}),
		},
		{
			name:   "zero input keeps the bias column",
			x:      []float64{0},
			degree: 2,
			want:   mat.NewDense(1, 3, []float64{1, 0, 0}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DesignMatrix(tt.x, tt.degree)
			if err != nil {
				t.Fatalf("DesignMatrix() unexpected error: %v", err)
			}
			if !mat.EqualApprox(got, tt.want, 1e-12) {
				t.Errorf("DesignMatrix() =\n%v\nwant\n%v", mat.Formatted(got), mat.Formatted(tt.want))
			}
		})
	}
}

func TestDesignMatrixEntries(t *testing.T) {
	x := []float64{0.1, 0.5, 1.3, -2.2}
	const degree = 6

	a, err := DesignMatrix(x, degree)
	if err != nil {
		t.Fatalf("DesignMatrix() unexpected error: %v", err)
	}
	r, c := a.Dims()
	if r != len(x) || c != degree+1 {
		t.Fatalf("DesignMatrix() dims = (%d, %d), want (%d, %d)", r, c, len(x), degree+1)
	}
	for i := range x {
		for j := 0; j <= degree; j++ {
			want := math.Pow(x[i], float64(j))
			if math.Abs(a.At(i, j)-want) > 1e-12*math.Max(1, math.Abs(want)) {
				t.Errorf("A[%d][%d] = %v, want %v", i, j, a.At(i, j), want)
			}
		}
	}
}

func TestDesignMatrixLarge(t *testing.T) {
	// Above the parallel threshold rows are filled by several workers.
	n := 2500
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / float64(n-1)
	}

	a, err := DesignMatrix(x, 3)
	if err != nil {
		t.Fatalf("DesignMatrix() unexpected error: %v", err)
	}
	for i := 0; i < n; i++ {
		if a.At(i, 0) != 1 || math.Abs(a.At(i, 3)-x[i]*x[i]*x[i]) > 1e-12 {
			t.Fatalf("row %d = %v", i, a.RawRowView(i))
		}
	}
}

func TestDesignMatrixErrors(t *testing.T) {
	tests := []struct {
		name    string
		x       []float64
		degree  int
		wantErr error
	}{
		{"empty input", nil, 2, errors.ErrInvalidInput},
		{"negative degree", []float64{1, 2}, -1, errors.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DesignMatrix(tt.x, tt.degree)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DesignMatrix() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

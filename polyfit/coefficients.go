package polyfit

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Coefficients is an immutable polynomial coefficient vector stored lowest
// degree first. The zero value has no coefficients and evaluates to 0.
type Coefficients struct {
	asc []float64
}

// NewCoefficients copies ascending (W[0] is the constant term).
func NewCoefficients(ascending []float64) Coefficients {
	return Coefficients{asc: append([]float64(nil), ascending...)}
}

// FromDescending builds Coefficients from a highest-degree-first slice.
func FromDescending(descending []float64) Coefficients {
	asc := append([]float64(nil), descending...)
	floats.Reverse(asc)
	return Coefficients{asc: asc}
}

// Ascending returns a copy ordered from degree 0 to degree M.
func (c Coefficients) Ascending() []float64 {
	return append([]float64(nil), c.asc...)
}

// Descending returns a copy ordered from degree M to degree 0.
func (c Coefficients) Descending() []float64 {
	desc := c.Ascending()
	floats.Reverse(desc)
	return desc
}

// Len returns M+1.
func (c Coefficients) Len() int { return len(c.asc) }

// Degree returns M, or -1 for the zero value.
func (c Coefficients) Degree() int { return len(c.asc) - 1 }

// At returns the coefficient of x^j.
func (c Coefficients) At(j int) float64 { return c.asc[j] }

// Norm returns the L2 norm ‖W‖.
func (c Coefficients) Norm() float64 {
	if len(c.asc) == 0 {
		return 0
	}
	return floats.Norm(c.asc, 2)
}

// Vec returns the coefficients as a column vector, ascending.
func (c Coefficients) Vec() *mat.VecDense {
	return mat.NewVecDense(len(c.asc), c.Ascending())
}

// Eval evaluates the polynomial at x.
func (c Coefficients) Eval(x float64) float64 {
	return Polyval(c, x)
}

// EvalAll evaluates the polynomial at every element of xs.
func (c Coefficients) EvalAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Polyval(c, x)
	}
	return out
}

func (c Coefficients) String() string {
	parts := make([]string, len(c.asc))
	for j, w := range c.asc {
		parts[j] = fmt.Sprintf("%.6g·x^%d", w, j)
	}
	return strings.Join(parts, " + ")
}

// Polyval evaluates c at x with Horner's rule.
func Polyval(c Coefficients, x float64) float64 {
	var y float64
	for j := len(c.asc) - 1; j >= 0; j-- {
		y = y*x + c.asc[j]
	}
	return y
}

// PolyvalDescending evaluates w, given highest degree first, at x.
// Solver output must be reversed (Coefficients.Descending) before use here.
func PolyvalDescending(w []float64, x float64) float64 {
	var y float64
	for _, coef := range w {
		y = y*x + coef
	}
	return y
}

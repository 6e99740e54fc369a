package polyfit

import "github.com/YuminosukeSato/curvefit/pkg/log"

// Option is a function that configures PolynomialRegression
type Option func(*PolynomialRegression)

// WithDegree sets the polynomial degree M
func WithDegree(degree int) Option {
	return func(pr *PolynomialRegression) {
		pr.degree = degree
	}
}

// WithLambda sets the ridge strength λ. Zero selects the unregularized solver.
func WithLambda(lambda float64) Option {
	return func(pr *PolynomialRegression) {
		pr.lambda = lambda
	}
}

// WithStandardize sets whether x is standardized before building the design matrix
func WithStandardize(standardize bool) Option {
	return func(pr *PolynomialRegression) {
		pr.standardize = standardize
	}
}

// WithLogger overrides the component logger
func WithLogger(logger log.Logger) Option {
	return func(pr *PolynomialRegression) {
		pr.logger = logger
	}
}

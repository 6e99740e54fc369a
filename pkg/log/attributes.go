// Package log defines standard attribute keys for curve-fitting operations.
//
// Using these keys keeps fit, sweep and evaluation logs consistent so the
// output of a model-selection run can be filtered and compared.
//
// The attributes are organized into categories:
//   - Operation Context
//   - Data Shape
//   - Hyperparameters
//   - Metrics
//   - Error Context
//
// Keys follow a hierarchical naming convention (e.g., "data.samples",
// "hyperparams.degree").

package log

// Operation Context
const (
	// ModelNameKey identifies the model type.
	// Examples: "PolynomialRegression", "StandardScaler"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "fit_ridge", "predict", "score", "sweep"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "polyfit", "selection", "report"
	ComponentKey = "ml.component"

	// PhaseKey indicates which split the operation works on.
	// Examples: "training", "validation", "testing"
	PhaseKey = "ml.phase"
)

// Data Shape
const (
	// SamplesKey indicates the number of samples in the set being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of columns of the design matrix (degree + 1).
	FeaturesKey = "data.features"

	// RankKey records the numerical rank found by the pseudo-inverse.
	RankKey = "data.rank"
)

// Hyperparameters
const (
	// DegreeKey records the polynomial degree M.
	DegreeKey = "hyperparams.degree"

	// RegularizationKey records the ridge strength λ.
	RegularizationKey = "hyperparams.regularization"

	// LogRegularizationKey records ln(λ) as shown by the interactive layer.
	LogRegularizationKey = "hyperparams.log_regularization"

	// GridSizeKey records the number of (degree, λ) points in a sweep.
	GridSizeKey = "hyperparams.grid_size"

	// RandomSeedKey records the random seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Metrics
const (
	// TrainRMSKey records the RMS error on the training set.
	TrainRMSKey = "metrics.rms.train"

	// ValidationRMSKey records the RMS error on the validation set.
	ValidationRMSKey = "metrics.rms.validation"

	// TestRMSKey records the RMS error on the test set.
	TestRMSKey = "metrics.rms.test"

	// R2ScoreKey records R² for the estimator facade.
	R2ScoreKey = "metrics.r2_score"

	// CoefNormKey records the L2 norm of the coefficient vector.
	CoefNormKey = "metrics.coef_norm"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// SuggestionKey provides a hint for resolving the issue.
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationFitRidge = "fit_ridge"
	OperationPredict  = "predict"
	OperationScore    = "score"
	OperationSweep    = "sweep"
	OperationExplore  = "explore"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseTesting    = "testing"

	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorInvalidParameter  = "INVALID_PARAMETER"
	ErrorComputationFailed = "COMPUTATION_FAILED"
	ErrorNotFitted         = "NOT_FITTED"
)

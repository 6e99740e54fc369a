package polyfit

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/curvefit/core/model"
	"github.com/YuminosukeSato/curvefit/metrics"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/YuminosukeSato/curvefit/preprocessing"
)

// PolynomialRegression は1変数の多項式回帰モデル。
// Fit / FitRidge / Polyval を推定器のインターフェースで包む。
type PolynomialRegression struct {
	model.BaseEstimator

	degree      int
	lambda      float64
	standardize bool

	coef   Coefficients
	scaler *preprocessing.StandardScaler
	logger log.Logger
}

// NewPolynomialRegression は新しい多項式回帰モデルを作成する。
// 既定は次数1、λ=0、標準化なし。
//
// 使用例:
//
//	reg := polyfit.NewPolynomialRegression(polyfit.WithDegree(3), polyfit.WithLambda(1e-3))
//	if err := reg.Fit(X, y); err != nil {
//	    return err
//	}
//	yPred, err := reg.Predict(XTest)
func NewPolynomialRegression(opts ...Option) *PolynomialRegression {
	pr := &PolynomialRegression{
		degree: 1,
	}
	for _, opt := range opts {
		opt(pr)
	}
	if pr.logger == nil {
		pr.logger = log.GetLoggerWithName("polyfit")
	}
	pr.logger = pr.logger.With(log.ModelNameKey, "PolynomialRegression")
	return pr
}

// Fit はモデルを訓練データで学習させる。
// X は n×1 の入力、y は n×1 の目的変数。λ>0 のときはリッジ回帰で解く。
func (pr *PolynomialRegression) Fit(X, y mat.Matrix) error {
	pr.Reset()
	start := time.Now()

	x, t, err := pr.columns("PolynomialRegression.Fit", X, y)
	if err != nil {
		return err
	}

	if pr.standardize {
		pr.scaler = preprocessing.NewStandardScalerDefault()
		scaled, err := pr.scaler.FitTransform(mat.NewVecDense(len(x), x))
		if err != nil {
			return err
		}
		x = mat.Col(nil, 0, scaled)
	}

	operation := log.OperationFit
	var coef Coefficients
	if pr.lambda == 0 {
		coef, err = Fit(x, t, pr.degree)
	} else {
		operation = log.OperationFitRidge
		coef, err = FitRidge(x, t, pr.degree, pr.lambda)
	}
	if err != nil {
		pr.logger.Error("fit failed",
			log.OperationKey, operation,
			log.ErrAttrKey, err,
		)
		return err
	}

	pr.coef = coef
	pr.SetFitted()

	pr.logger.Debug("model fitted",
		log.OperationKey, operation,
		log.SamplesKey, len(x),
		log.DegreeKey, pr.degree,
		log.RegularizationKey, pr.lambda,
		log.CoefNormKey, coef.Norm(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は入力データに対する予測を行う
func (pr *PolynomialRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !pr.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialRegression", "Predict")
	}

	r, c := X.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError("PolynomialRegression.Predict", 1, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		v := X.At(i, 0)
		if pr.scaler != nil {
			v = pr.scaler.TransformValue(v)
		}
		predictions.Set(i, 0, pr.coef.Eval(v))
	}
	return predictions, nil
}

// Score は予測の決定係数（R²）を計算する
func (pr *PolynomialRegression) Score(X, y mat.Matrix) (float64, error) {
	if !pr.IsFitted() {
		return 0, errors.NewNotFittedError("PolynomialRegression", "Score")
	}

	_, t, err := pr.columns("PolynomialRegression.Score", X, y)
	if err != nil {
		return 0, err
	}
	yPred, err := pr.Predict(X)
	if err != nil {
		return 0, err
	}

	score, err := metrics.R2Score(mat.NewVecDense(len(t), t), mat.NewVecDense(len(t), mat.Col(nil, 0, yPred)))
	if err != nil {
		return 0, err
	}
	pr.logger.Debug("model scored",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(t),
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Coefficients は学習済みの係数（昇順）を返す。
// 標準化を有効にした場合は標準化後の x に対する係数になる。
func (pr *PolynomialRegression) Coefficients() (Coefficients, error) {
	if !pr.IsFitted() {
		return Coefficients{}, errors.NewNotFittedError("PolynomialRegression", "Coefficients")
	}
	return pr.coef, nil
}

// Degree は次数 M を返す
func (pr *PolynomialRegression) Degree() int { return pr.degree }

// Lambda はリッジ係数 λ を返す
func (pr *PolynomialRegression) Lambda() float64 { return pr.lambda }

// GetParams はハイパーパラメータを取得する
func (pr *PolynomialRegression) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree":      pr.degree,
		"lambda":      pr.lambda,
		"standardize": pr.standardize,
	}
}

func (pr *PolynomialRegression) String() string {
	return fmt.Sprintf("PolynomialRegression(degree=%d, lambda=%g, standardize=%t)",
		pr.degree, pr.lambda, pr.standardize)
}

// columns は X, y を n×1 の列として取り出す
func (pr *PolynomialRegression) columns(op string, X, y mat.Matrix) (x, t []float64, err error) {
	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return nil, nil, errors.NewInvalidInputError(op, "empty data")
	}
	if c != 1 {
		return nil, nil, errors.NewDimensionError(op, 1, c, 1)
	}
	if ry != r {
		return nil, nil, errors.NewDimensionError(op, r, ry, 0)
	}
	if cy != 1 {
		return nil, nil, errors.NewInvalidInputError(op, "y must be a column vector")
	}
	return mat.Col(nil, 0, X), mat.Col(nil, 0, y), nil
}

var _ model.Regressor = (*PolynomialRegression)(nil)

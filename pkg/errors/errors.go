// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// 多項式フィッティングの失敗を InvalidInput / InvalidParameter / ComputationFailed の
// 三種類に分類し、cockroachdb/errors によるスタックトレースを付与します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("curvefit-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
// nil を渡すと従来のハンドラに戻ります。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// IllConditionedWarning は擬似逆行列の計算で特異値が切り捨てられた場合の警告です。
// ランク落ちはエラーではなく、最小ノルム解が返されます。
type IllConditionedWarning struct {
	Op        string
	Rank      int
	Columns   int
	Threshold float64
}

func (w *IllConditionedWarning) Error() string {
	return fmt.Sprintf("%s: design matrix is rank deficient (rank %d of %d, cutoff %.3g); returning least-norm solution",
		w.Op, w.Rank, w.Columns, w.Threshold)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *IllConditionedWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("rank", w.Rank).
		Int("columns", w.Columns).
		Float64("threshold", w.Threshold).
		Str("type", "IllConditionedWarning")
}

// NewIllConditionedWarning は新しいIllConditionedWarningを作成します。
func NewIllConditionedWarning(op string, rank, columns int, threshold float64) *IllConditionedWarning {
	return &IllConditionedWarning{Op: op, Rank: rank, Columns: columns, Threshold: threshold}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidInputError は入力データが空、または長さが揃っていない場合のエラーです。
type InvalidInputError struct {
	Op     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("curvefit: %s: invalid input: %s", e.Op, e.Reason)
}

// Is により errors.Is(err, ErrInvalidInput) が成立します。
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Str("type", "InvalidInputError")
}

// NewInvalidInputError は新しいInvalidInputErrorを作成し、スタックトレースを付与します。
func NewInvalidInputError(op, reason string) error {
	return errors.WithStack(&InvalidInputError{Op: op, Reason: reason})
}

// DimensionError は入力と目的変数の長さが一致しない場合のエラーです。
// InvalidInput の一種として扱われます。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("curvefit: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// Is により errors.Is(err, ErrInvalidInput) が成立します。
func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidInput
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	return errors.WithStack(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis})
}

// InvalidParameterError はハイパーパラメータ（次数、正則化係数、分割サイズ）が不正な場合のエラーです。
type InvalidParameterError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("curvefit: invalid parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// Is により errors.Is(err, ErrInvalidParameter) が成立します。
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidParameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "InvalidParameterError")
}

// NewInvalidParameterError は新しいInvalidParameterErrorを作成し、スタックトレースを付与します。
func NewInvalidParameterError(param, reason string, value interface{}) error {
	return errors.WithStack(&InvalidParameterError{ParamName: param, Reason: reason, Value: value})
}

// ComputationFailedError は数値ライブラリの失敗（SVDの非収束、NaN/Infの発生、panic）を表します。
// リトライは行いません。
type ComputationFailedError struct {
	Op  string
	Err error
}

func (e *ComputationFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("curvefit: %s: computation failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("curvefit: %s: computation failed", e.Op)
}

func (e *ComputationFailedError) Unwrap() error {
	return e.Err
}

// Is により errors.Is(err, ErrComputationFailed) が成立します。
func (e *ComputationFailedError) Is(target error) bool {
	return target == ErrComputationFailed
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ComputationFailedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("type", "ComputationFailedError")
	if e.Err != nil {
		event.Str("cause", e.Err.Error())
	}
}

// NewComputationFailedError は新しいComputationFailedErrorを作成し、スタックトレースを付与します。
func NewComputationFailedError(op string, err error) error {
	return errors.WithStack(&ComputationFailedError{Op: op, Err: err})
}

// NotFittedError はモデルが未学習の状態で `Predict` や `Score` を呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("curvefit: %s: this model is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	return errors.WithStack(&NotFittedError{ModelName: modelName, Method: method})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrInvalidInput は空のデータや長さの不一致を示します。
	ErrInvalidInput = New("invalid input")

	// ErrInvalidParameter は負の次数や負の正則化係数を示します。
	ErrInvalidParameter = New("invalid parameter")

	// ErrComputationFailed は数値計算の失敗を示します。
	ErrComputationFailed = New("computation failed")
)

package reweight

import "math"

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"
import "gonum.org/v1/gonum/stat"

// Epsilon floors both sides of the estimator weight ratio.
const Epsilon = 1e-7

// Step holds the diagnostics of one weight update.
type Step struct {
	Epoch           int     `json:"epoch"`
	EstimatorError  float64 `json:"estimator_error"`
	EstimatorWeight float64 `json:"estimator_weight"`
	Boosted         int     `json:"boosted"`
}

// Incorrect returns 1 for every contrastive example whose prediction differs
// from its label and 0 otherwise.
func Incorrect(predictions, labels []uint16, contra []bool) ([]float64, error) {
	if len(predictions) != len(labels) || len(labels) != len(contra) {
		return nil, errors.Wrapf(ErrLength, "predictions %d, labels %d, contra %d",
			len(predictions), len(labels), len(contra))
	}
	var out = make([]float64, len(labels))
	for i := range out {
		if contra[i] && predictions[i] != labels[i] {
			out[i] = 1
		}
	}
	return out, nil
}

// EstimatorError is the weighted mean of incorrect. A vector with zero total
// weight has no error.
func EstimatorError(incorrect []float64, w Weights) float64 {
	if floats.Sum(w) == 0 {
		return 0
	}
	return stat.Mean(incorrect, w)
}

// EstimatorWeight is the AdaBoost confidence ln((1-err+factor)/(err-factor)),
// with both sides floored at Epsilon so the result is always finite.
func EstimatorWeight(estimatorError, factor float64) float64 {
	num := math.Max(Epsilon, 1-estimatorError+factor)
	den := math.Max(Epsilon, estimatorError-factor)
	return math.Log(num / den)
}

// Update scales, in place, the weight of every incorrect contrastive example
// by exp(estimator weight). All other weights are multiplied by exactly 1.
// On a length mismatch or an invalid factor w is left untouched.
func Update(w Weights, predictions, labels []uint16, contra []bool, factor float64) (Step, error) {
	if err := CheckFactor(factor); err != nil {
		return Step{}, err
	}
	incorrect, err := Incorrect(predictions, labels, contra)
	if err != nil {
		return Step{}, err
	}
	if len(w) != len(incorrect) {
		return Step{}, errors.Wrapf(ErrLength, "weights %d, examples %d", len(w), len(incorrect))
	}

	var step Step
	step.EstimatorError = EstimatorError(incorrect, w)
	step.EstimatorWeight = EstimatorWeight(step.EstimatorError, factor)
	step.Boosted = int(floats.Sum(incorrect))

	var scale = make([]float64, len(incorrect))
	for i, bad := range incorrect {
		scale[i] = math.Exp(step.EstimatorWeight * bad)
	}
	floats.Mul(w, scale)
	return step, nil
}

package reweight

import "math"

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned when there are no examples to weight.
	ErrEmpty = errors.New("reweight: empty training set")
	// ErrLength is returned when per-example inputs are not index aligned.
	ErrLength = errors.New("reweight: length mismatch")
	// ErrPolicy is returned for an unknown initialization policy.
	ErrPolicy = errors.New("reweight: unknown policy")
	// ErrFactor is returned for a negative or non-finite factor.
	ErrFactor = errors.New("reweight: factor must be a finite non-negative number")
	// ErrWeights is returned for a weight vector holding negative or non-finite values.
	ErrWeights = errors.New("reweight: weights must be finite and non-negative")
)

// CheckFactor reports ErrFactor unless factor is finite and non-negative.
func CheckFactor(factor float64) error {
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return errors.Wrapf(ErrFactor, "%v", factor)
	}
	return nil
}

// CheckWeights reports ErrWeights for the first negative or non-finite entry of w.
func CheckWeights(w Weights) error {
	for i, v := range w {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrWeights, "weight %d is %v", i, v)
		}
	}
	return nil
}

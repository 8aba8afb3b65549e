// Package reweight implements AdaBoost style example reweighting driven by
// contrastive examples.
//
// A weight vector is created once before the first epoch by Initialize and is
// then adjusted once per epoch by Update, using the model predictions on the
// full training set. Only contrastive examples that the model gets wrong count
// as errors, and only those examples have their weight boosted. The vector is
// never renormalized.
package reweight

import "strconv"
import "strings"

import "github.com/pkg/errors"

// Policy selects how the initial weight vector is built.
type Policy int

const (
	// Balanced gives contrastive and non-contrastive examples equal total mass.
	Balanced Policy = iota
	// Uniform gives every example weight 1/N.
	Uniform
)

func (p Policy) String() string {
	switch p {
	case Balanced:
		return "balanced"
	case Uniform:
		return "uniform"
	}
	return "Policy(" + strconv.Itoa(int(p)) + ")"
}

// ParsePolicy parses a policy name, ignoring case.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "balanced":
		return Balanced, nil
	case "uniform":
		return Uniform, nil
	}
	return 0, errors.Wrapf(ErrPolicy, "%q", name)
}

// Weights is the per-example weight vector, index aligned with the training set.
type Weights []float64

// Clone returns a copy not aliased with w.
func (w Weights) Clone() Weights {
	return append(Weights(nil), w...)
}

// Head returns at most n leading weights, aliased with w.
func (w Weights) Head(n int) []float64 {
	if n < 0 || n > len(w) {
		n = len(w)
	}
	return w[:n]
}

// Initialize builds the weight vector for the given contrastive flags.
//
// Balanced assigns noncontra/N to every contrastive example and contra/N to
// every other one; the result is not normalized. Uniform assigns 1/N.
func Initialize(p Policy, contra []bool) (Weights, error) {
	var total = len(contra)
	if total == 0 {
		return nil, ErrEmpty
	}
	var w = make(Weights, total)
	switch p {
	case Balanced:
		var contraCount int
		for _, c := range contra {
			if c {
				contraCount++
			}
		}
		contraWeight := float64(total-contraCount) / float64(total)
		noncontraWeight := float64(contraCount) / float64(total)
		for i, c := range contra {
			if c {
				w[i] = contraWeight
			} else {
				w[i] = noncontraWeight
			}
		}
	case Uniform:
		for i := range w {
			w[i] = 1 / float64(total)
		}
	default:
		return nil, errors.Wrapf(ErrPolicy, "%s", p)
	}
	return w, nil
}

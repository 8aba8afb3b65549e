package reweight

import "github.com/pkg/errors"

import "github.com/asclab/contraweight/datasets"

// Reweighter owns the weight vector of one training run.
//
// It starts in the initialized state at epoch 0 and moves to epoch k after the
// k-th successful Update. Weights returns the live buffer: the goroutine that
// calls Update is its only writer, everybody else may only read it between
// updates.
type Reweighter struct {
	policy   Policy
	factor   float64
	labels   []uint16
	contra   []bool
	weights  Weights
	epoch    int
	observer Observer
}

// Option configures a Reweighter.
type Option func(*Reweighter)

// WithObserver adds an observer notified after every update.
func WithObserver(o Observer) Option {
	return func(r *Reweighter) {
		if o == nil {
			return
		}
		if r.observer == NopObserver {
			r.observer = o
			return
		}
		r.observer = Observers{r.observer, o}
	}
}

// New captures labels and contrastive flags of data and builds the initial
// weights according to policy.
func New(policy Policy, data datasets.Slice, factor float64, opts ...Option) (*Reweighter, error) {
	if err := CheckFactor(factor); err != nil {
		return nil, err
	}
	contra := datasets.ContraFlags(data)
	weights, err := Initialize(policy, contra)
	if err != nil {
		return nil, err
	}
	r := &Reweighter{
		policy:   policy,
		factor:   factor,
		labels:   datasets.Labels(data),
		contra:   contra,
		weights:  weights,
		observer: NopObserver,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Update applies one epoch of reweighting using the predictions for every
// training example, in dataset order.
func (r *Reweighter) Update(predictions []uint16) (Step, error) {
	step, err := Update(r.weights, predictions, r.labels, r.contra, r.factor)
	if err != nil {
		return step, errors.Wrapf(err, "epoch %d", r.epoch+1)
	}
	r.epoch++
	step.Epoch = r.epoch
	r.observer.ObserveStep(step, r.weights)
	return step, nil
}

// Weights returns the live weight vector.
func (r *Reweighter) Weights() Weights { return r.weights }

// Labels returns the captured true labels.
func (r *Reweighter) Labels() []uint16 { return r.labels }

// Epoch returns the number of completed updates.
func (r *Reweighter) Epoch() int { return r.epoch }

func (r *Reweighter) Policy() Policy { return r.policy }

func (r *Reweighter) Factor() float64 { return r.factor }

func (r *Reweighter) Len() int { return len(r.weights) }

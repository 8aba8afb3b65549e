package reweight

import "go.uber.org/zap"

// DefaultLogSample is the number of leading weights reported by LogObserver.
const DefaultLogSample = 20

// Observer receives the result of every successful update. Observers must not
// modify w and must not retain it past the call.
type Observer interface {
	ObserveStep(step Step, w Weights)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(step Step, w Weights)

func (f ObserverFunc) ObserveStep(step Step, w Weights) {
	f(step, w)
}

// Observers fans out to every observer in order.
type Observers []Observer

func (o Observers) ObserveStep(step Step, w Weights) {
	for _, obs := range o {
		if obs != nil {
			obs.ObserveStep(step, w)
		}
	}
}

type nopObserver struct{}

func (nopObserver) ObserveStep(Step, Weights) {}

// NopObserver discards every step.
var NopObserver Observer = nopObserver{}

// LogObserver logs the leading weights and the estimator scalars of each step.
func LogObserver(logger *zap.Logger, sample int) Observer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sample <= 0 {
		sample = DefaultLogSample
	}
	return ObserverFunc(func(step Step, w Weights) {
		logger.Info("epoch weight update",
			zap.Int("epoch", step.Epoch),
			zap.Float64s("sample_weights", Weights(w.Head(sample)).Clone()),
			zap.Float64("estimator_error", step.EstimatorError),
			zap.Float64("estimator_weight", step.EstimatorWeight),
			zap.Int("boosted", step.Boosted),
		)
		if step.EstimatorWeight <= 0 {
			logger.Warn("estimator weight is not positive",
				zap.Int("epoch", step.Epoch),
				zap.Float64("estimator_weight", step.EstimatorWeight))
		}
	})
}

package trainer

import "github.com/pkg/errors"
import "go.uber.org/zap"

import "github.com/asclab/contraweight/reweight"

// TrainFunc trains one epoch with the given example weights. It must not keep
// or modify w.
type TrainFunc func(epoch int, w reweight.Weights) error

// NewUpdateFunc returns the end of epoch weight update: evaluate on the
// training set, then update the reweighter with the predictions.
func NewUpdateFunc(rw *reweight.Reweighter, evaluate func() ([]uint16, int), logger *zap.Logger) func() (reweight.Step, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func() (reweight.Step, error) {
		predictions, success := evaluate()
		logger.Debug("evaluated on train", zap.Int("epoch", rw.Epoch()+1), zap.Int("success", success))
		return rw.Update(predictions)
	}
}

// Loop runs epochs rounds of train followed by exactly one weight update and
// returns the update diagnostics. It stops at the first error.
func Loop(rw *reweight.Reweighter, epochs int, train TrainFunc, update func() (reweight.Step, error)) ([]reweight.Step, error) {
	var steps []reweight.Step
	for epoch := 1; epoch <= epochs; epoch++ {
		if err := train(epoch, rw.Weights()); err != nil {
			return steps, errors.Wrapf(err, "training epoch %d", epoch)
		}
		step, err := update()
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

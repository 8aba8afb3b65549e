package trainer

import "go.uber.org/zap"

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/datasets/contrasynth"
import "github.com/asclab/contraweight/inference"
import "github.com/asclab/contraweight/learning"
import "github.com/asclab/contraweight/reweight"

// TruthSalt labels the regular examples of the simulated dataset
const TruthSalt = 3

// Result is the outcome of a simulated run
type Result struct {
	Steps   []reweight.Step  `json:"steps"`
	Success []int            `json:"success"`
	Salts   []uint32         `json:"salts"`
	Weights reweight.Weights `json:"-"`
}

// SimulationData builds the synthetic dataset described by the hyperparameters
func SimulationData(h *learning.HyperParameters) datasets.Features {
	return contrasynth.Generator{
		Size:        h.Size,
		ContraEvery: h.ContraEvery,
		Classes:     h.Classes,
		TruthSalt:   TruthSalt,
	}.Dataset()
}

// Simulate runs the full reweighted training loop on synthetic data, using the
// salted hash learner as the model. opts are passed to the reweighter.
func Simulate(h *learning.HyperParameters, data datasets.Slice, opts ...reweight.Option) (*Result, error) {
	policy, err := h.Validate()
	if err != nil {
		return nil, err
	}
	logger := h.Logger()

	rw, err := reweight.New(policy, data, h.Factor, opts...)
	if err != nil {
		return nil, err
	}

	var result Result
	var model inference.HashModel
	train := func(epoch int, w reweight.Weights) error {
		model = inference.FitHashModel(data, w, h.Candidates, h.Classes, contrasynth.Width, h.Threads)
		result.Salts = append(result.Salts, model.Salt)
		logger.Info("trained epoch", zap.Int("epoch", epoch), zap.Uint32("salt", model.Salt))
		return nil
	}
	evaluate := NewEvaluateFunc(func() inference.Model { return model }, data, h.Threads)
	update := NewUpdateFunc(rw, func() ([]uint16, int) {
		predictions, success := evaluate()
		result.Success = append(result.Success, success)
		return predictions, success
	}, logger)

	result.Steps, err = Loop(rw, h.Epochs, train, update)
	result.Weights = rw.Weights()
	return &result, err
}

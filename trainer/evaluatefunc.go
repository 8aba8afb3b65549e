package trainer

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/inference"

// NewEvaluateFunc returns the evaluation pass over the training set. The model
// getter is called once per evaluation so the caller can swap the model between
// epochs. success is the integer accuracy percentage.
func NewEvaluateFunc(model func() inference.Model, data datasets.Slice, threads int) func() (predictions []uint16, success int) {
	var labels = datasets.Labels(data)
	return func() ([]uint16, int) {
		predictions := inference.PredictAll(model(), data, threads)
		return predictions, inference.Accuracy(predictions, labels)
	}
}

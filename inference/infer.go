// Package inference implements the evaluation pass over the training set that feeds the reweighter
package inference

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/parallel"

// BatchSize is the number of examples evaluated by one goroutine at a time
const BatchSize = 64

// Model predicts a class index. Infer must not mutate the model, it is called
// concurrently from several goroutines.
type Model interface {
	Infer(s datasets.Sample) uint16
}

// PredictAll evaluates every example of data. The result is complete and in
// dataset order regardless of how the batches were scheduled.
func PredictAll(m Model, data datasets.Slice, threads int) []uint16 {
	var out = make([]uint16, data.Len())
	parallel.ForEachBatch(len(out), BatchSize, threads, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = m.Infer(data.Get(i))
		}
	})
	return out
}

// Accuracy returns the integer percentage of predictions equal to labels
func Accuracy(predictions, labels []uint16) int {
	if len(labels) == 0 || len(predictions) != len(labels) {
		return 0
	}
	var good int
	for i := range labels {
		if predictions[i] == labels[i] {
			good++
		}
	}
	return 100 * good / len(labels)
}

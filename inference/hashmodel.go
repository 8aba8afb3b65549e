package inference

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/hash"
import "github.com/asclab/contraweight/parallel"

// HashModel is a stand-in classifier: it folds the first Width features of a
// sample through the salted hash and reduces the result to Classes.
type HashModel struct {
	Salt    uint32
	Classes uint16
	Width   int
}

func (h HashModel) Infer(s datasets.Sample) uint16 {
	var values = make([]uint32, h.Width)
	for i := range values {
		values[i] = s.Feature(i)
	}
	return uint16(hash.Fold(values, h.Salt, uint32(h.Classes)))
}

// FitHashModel trains the stand-in classifier: among salts [0, candidates) it
// picks the one with the lowest weighted training error, lowest salt on ties.
// Example weights act like a per-example loss scale.
func FitHashModel(data datasets.Slice, weights []float64, candidates int, classes uint16, width int, threads int) HashModel {
	if candidates <= 0 {
		candidates = 1
	}
	var losses = make([]float64, candidates)
	parallel.ForEach(candidates, threads, func(salt int) {
		m := HashModel{Salt: uint32(salt), Classes: classes, Width: width}
		var loss float64
		for i := 0; i < data.Len(); i++ {
			s := data.Get(i)
			if m.Infer(s) != s.Output() {
				loss += weights[i]
			}
		}
		losses[salt] = loss
	})
	var best int
	for salt := 1; salt < candidates; salt++ {
		if losses[salt] < losses[best] {
			best = salt
		}
	}
	return HashModel{Salt: uint32(best), Classes: classes, Width: width}
}

// Package contrasynth implements a deterministic synthetic contrastive dataset
package contrasynth

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/hash"

// Width is the number of features per example
const Width = 4

// Generator describes the synthetic dataset. Regular examples are labelled by
// a salted hash of their features using TruthSalt; contrastive examples get the
// next class instead, so a model that fits the regular examples gets them wrong.
type Generator struct {
	Size        int
	ContraEvery int // every n-th example is contrastive, 0 disables
	Classes     uint16
	TruthSalt   uint32
}

func (g Generator) inputs(i int) []uint32 {
	var in = make([]uint32, Width)
	for j := range in {
		in[j] = hash.Hash(uint32(i), uint32(j)+1, 0xFFFFFFFF)
	}
	return in
}

// Dataset materializes the generator into features
func (g Generator) Dataset() datasets.Features {
	var classes = g.Classes
	if classes < 2 {
		classes = 2
	}
	var out = make(datasets.Features, g.Size)
	for i := range out {
		in := g.inputs(i)
		label := uint16(hash.Fold(in, g.TruthSalt, uint32(classes)))
		contra := g.ContraEvery > 0 && i%g.ContraEvery == 0
		if contra {
			label = (label + 1) % classes
		}
		out[i] = datasets.Feature{Label: label, IsContra: contra, Inputs: in}
	}
	return out
}

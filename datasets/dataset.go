// Package datasets implements the training example types consumed by the reweighter
package datasets

// Sample is a single training example
type Sample interface {
	Feature(n int) uint32
	// Output is the true class index
	Output() uint16
	// Contra reports whether the example drives the boosting signal
	Contra() bool
}

// Slice is an index addressable, fixed order training set
type Slice interface {
	Get(n int) Sample
	Len() int
}

type SplittedDataset [2]map[int]struct{}

// SplitContra splits dataset indices into a non-contrastive set (0) and a contrastive set (1)
func SplitContra(d Slice) (o SplittedDataset) {
	o[0] = make(map[int]struct{})
	o[1] = make(map[int]struct{})
	for i := 0; i < d.Len(); i++ {
		if d.Get(i).Contra() {
			o[1][i] = struct{}{}
		} else {
			o[0][i] = struct{}{}
		}
	}
	return
}

// CountContra returns the number of contrastive examples in the dataset
func CountContra(d Slice) (n int) {
	for i := 0; i < d.Len(); i++ {
		if d.Get(i).Contra() {
			n++
		}
	}
	return
}

// Labels materializes the true labels in dataset order
func Labels(d Slice) []uint16 {
	var out = make([]uint16, d.Len())
	for i := range out {
		out[i] = d.Get(i).Output()
	}
	return out
}

// ContraFlags materializes the contrastive flags in dataset order
func ContraFlags(d Slice) []bool {
	var out = make([]bool, d.Len())
	for i := range out {
		out[i] = d.Get(i).Contra()
	}
	return out
}

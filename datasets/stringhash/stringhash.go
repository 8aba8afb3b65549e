package stringhash

import "strings"

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/hash"

// Sample is a sentence level text example, features are hashed whitespace tokens
type Sample struct {
	Str      string
	Out      uint16
	IsContra bool

	tokens []string
}

// NewSample tokenizes the string once
func NewSample(str string, out uint16, contra bool) Sample {
	return Sample{Str: str, Out: out, IsContra: contra, tokens: strings.Fields(str)}
}

func (s Sample) Feature(n int) uint32 {
	if len(s.tokens) == 0 {
		return hash.StringHash(uint32(n), s.Str)
	}
	return hash.StringHash(uint32(n/len(s.tokens)), s.tokens[n%len(s.tokens)])
}
func (s Sample) Output() uint16 {
	return s.Out
}
func (s Sample) Contra() bool {
	return s.IsContra
}

// Tokens reports the number of whitespace separated tokens
func (s Sample) Tokens() int {
	return len(s.tokens)
}

// Samples is a text dataset in training order
type Samples []Sample

func (s Samples) Get(n int) datasets.Sample {
	return s[n]
}
func (s Samples) Len() int {
	return len(s)
}

// Features converts the text samples into hashed features of fixed width
func (s Samples) Features(width int) datasets.Features {
	var out = make(datasets.Features, len(s))
	for i, sample := range s {
		out[i].Label = sample.Out
		out[i].IsContra = sample.IsContra
		out[i].Inputs = make([]uint32, width)
		for j := 0; j < width; j++ {
			out[i].Inputs[j] = sample.Feature(j)
		}
	}
	return out
}

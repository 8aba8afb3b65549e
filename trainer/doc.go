// Package trainer provides the outer training loop around the reweighter.
// Each epoch trains with the current example weights, evaluates the model on
// the whole training set and then boosts the weights of the contrastive
// examples the model still gets wrong.
package trainer

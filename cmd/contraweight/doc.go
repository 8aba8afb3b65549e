// Package main provides the contraweight command line tool. It computes the
// initial example weights of a contrastive training set, applies the end of
// epoch weight update from a file of predictions, runs a complete simulated
// training loop on synthetic data and prints the stored epoch history.
package main

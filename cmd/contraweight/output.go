package main

import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"

import "github.com/asclab/contraweight/reweight"
import "github.com/asclab/contraweight/trainer"

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONFile writes a value as compact JSON to path.
func writeJSONFile(path string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, append(data, '\n'), 0644), "writing %s", path)
}

// readJSONFile decodes the JSON document at path into v.
func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	return errors.Wrapf(json.Unmarshal(data, v), "decoding %s", path)
}

// UpdateResponse is printed by the update command.
type UpdateResponse struct {
	Step    reweight.Step `json:"step"`
	Weights []float64     `json:"weights,omitempty"`
}

// SimulateResponse is printed by the simulate command.
type SimulateResponse struct {
	RunID string `json:"run_id,omitempty"`
	*trainer.Result
	SampleWeights []float64 `json:"sample_weights"`
}

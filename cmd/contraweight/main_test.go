package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asclab/contraweight/datasets"
	"github.com/asclab/contraweight/history"
	"github.com/asclab/contraweight/learning"
	"github.com/asclab/contraweight/reweight"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "train.jsonl")
	var buf bytes.Buffer
	require.NoError(t, datasets.WriteJSONL(&buf, datasets.Features{
		{Label: 0, IsContra: true},
		{Label: 1, IsContra: true},
		{Label: 0},
		{Label: 1},
	}))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	features := writeScenario(t, dir)

	out, err := run(t, "init", "--features", features, "--policy", "uniform")
	require.NoError(t, err)
	var w []float64
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, w)

	path := filepath.Join(dir, "weights.json")
	_, err = run(t, "init", "--features", features, "-o", path)
	require.NoError(t, err)
	require.NoError(t, readJSONFile(path, &w))
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, w)

	_, err = run(t, "init", "--features", features, "--policy", "boosted")
	assert.Equal(t, ExitConfigError, exitCode(err))

	_, err = run(t, "init")
	assert.Error(t, err, "--features is required")
}

func TestUpdate(t *testing.T) {
	dir := t.TempDir()
	features := writeScenario(t, dir)
	weights := filepath.Join(dir, "weights.json")
	predictions := filepath.Join(dir, "predictions.json")
	require.NoError(t, writeJSONFile(weights, []float64{0.25, 0.25, 0.25, 0.25}))
	require.NoError(t, writeJSONFile(predictions, []uint16{1, 1, 0, 0}))

	out, err := run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions)
	require.NoError(t, err)
	var response UpdateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, 0.25, response.Step.EstimatorError)
	assert.InDelta(t, math.Log(3), response.Step.EstimatorWeight, 1e-12)
	assert.Equal(t, 1, response.Step.Boosted)
	require.Len(t, response.Weights, 4)
	assert.InDelta(t, 0.75, response.Weights[0], 1e-12)

	next := filepath.Join(dir, "next.json")
	out, err = run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions,
		"--factor", "0.1", "-o", next)
	require.NoError(t, err)
	response = UpdateResponse{}
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Nil(t, response.Weights)
	var w []float64
	require.NoError(t, readJSONFile(next, &w))
	assert.InDelta(t, 0.25*0.85/0.15, w[0], 1e-12)

	require.NoError(t, writeJSONFile(predictions, []uint16{1, 1}))
	_, err = run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions)
	assert.Equal(t, reweight.ErrLength, errors.Cause(err))
	assert.Equal(t, ExitError, exitCode(err))

	for _, factor := range []string{"-1", "NaN", "+Inf"} {
		_, err = run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions, "--factor", factor)
		assert.Equal(t, reweight.ErrFactor, errors.Cause(err), factor)
		assert.Equal(t, ExitConfigError, exitCode(err), factor)
	}

	require.NoError(t, writeJSONFile(predictions, []uint16{1, 1, 0, 0}))
	require.NoError(t, writeJSONFile(weights, []float64{0.25, -0.25, 0.25, 0.25}))
	_, err = run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions)
	assert.Equal(t, reweight.ErrWeights, errors.Cause(err))
	assert.Equal(t, ExitError, exitCode(err))
}

func TestSynthThenUpdate(t *testing.T) {
	dir := t.TempDir()
	features := filepath.Join(dir, "synth.jsonl")
	predictions := filepath.Join(dir, "predictions.json")
	weights := filepath.Join(dir, "weights.json")

	_, err := run(t, "synth", "--size", "40", "--contra-every", "4", "-o", features, "--predictions", predictions)
	require.NoError(t, err)

	data, err := datasets.LoadJSONL(features)
	require.NoError(t, err)
	require.Len(t, data, 40)
	assert.Equal(t, 10, datasets.CountContra(data))

	_, err = run(t, "init", "--features", features, "--policy", "uniform", "-o", weights)
	require.NoError(t, err)

	out, err := run(t, "update", "--features", features, "--weights", weights, "--predictions", predictions)
	require.NoError(t, err)
	var response UpdateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, 10, response.Step.Boosted, "the truth salt misses every contrastive example")
	assert.InDelta(t, 0.25, response.Step.EstimatorError, 1e-12)
}

func TestSimulateAndHistory(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "sim.yaml")
	db := filepath.Join(dir, "history.db")
	require.NoError(t, os.WriteFile(config, []byte(`
policy: uniform
epochs: 2
size: 120
contra_every: 4
candidates: 8
log_sample: 5
`), 0644))

	out, err := run(t, "simulate", "--config", config, "--history", db, "--log-file", filepath.Join(dir, "sim.log"))
	require.NoError(t, err)
	var response struct {
		RunID         string          `json:"run_id"`
		Steps         []reweight.Step `json:"steps"`
		SampleWeights []float64       `json:"sample_weights"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	require.NotEmpty(t, response.RunID)
	assert.Len(t, response.Steps, 2)
	assert.Len(t, response.SampleWeights, 5)

	logs, err := os.ReadFile(filepath.Join(dir, "sim.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logs), "estimator_weight")

	out, err = run(t, "history", "--db", db)
	require.NoError(t, err)
	var runs []history.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, response.RunID, runs[0].ID)
	assert.Equal(t, 120, runs[0].Size)

	out, err = run(t, "history", "--db", db, "--run", response.RunID)
	require.NoError(t, err)
	var steps []history.Record
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	require.Len(t, steps, 2)
	assert.Equal(t, response.Steps[1].EstimatorWeight, steps[1].EstimatorWeight)
	assert.Len(t, steps[0].Sample, 5)
}

func TestHistoryMissingDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "typo.db")
	_, err := run(t, "history", "--db", db)
	assert.Error(t, err)
	_, statErr := os.Stat(db)
	assert.True(t, os.IsNotExist(statErr), "a mistyped path must not create a database")
}

func TestSimulateInvalidConfig(t *testing.T) {
	config := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(config, []byte("epochs: 0\n"), 0644))
	_, err := run(t, "simulate", "--config", config)
	assert.Equal(t, learning.ErrConfig, errors.Cause(err))
	assert.Equal(t, ExitConfigError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCode(nil))
	assert.Equal(t, ExitError, exitCode(errors.New("disk full")))
	assert.Equal(t, ExitConfigError, exitCode(errors.Wrap(reweight.ErrPolicy, "x")))
}

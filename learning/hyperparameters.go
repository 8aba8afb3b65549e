// Package learning holds the hyperparameters of a reweighted training run
package learning

import "os"
import "runtime"
import "strconv"

import "github.com/joho/godotenv"
import "github.com/klauspost/cpuid/v2"
import "github.com/pkg/errors"
import "go.uber.org/zap"
import "go.uber.org/zap/zapcore"
import "gopkg.in/yaml.v3"

import "github.com/asclab/contraweight/reweight"

// EnvPrefix prefixes every environment override
const EnvPrefix = "CONTRAWEIGHT_"

// ErrConfig is returned for invalid hyperparameters
var ErrConfig = errors.New("invalid hyperparameters")

type HyperParameters struct {
	Policy string  `yaml:"policy"` // initial weight policy, balanced or uniform
	Factor float64 `yaml:"factor"` // margin added to both sides of the estimator weight ratio

	Epochs  int `yaml:"epochs"`  // number of train then reweight rounds
	Threads int `yaml:"threads"` // number of threads for inference

	LogSample int `yaml:"log_sample"` // number of leading weights logged per epoch

	Candidates  int    `yaml:"candidates"`   // salts tried by the stand-in learner
	Classes     uint16 `yaml:"classes"`      // number of classes of the stand-in dataset
	Size        int    `yaml:"size"`         // number of examples of the stand-in dataset
	ContraEvery int    `yaml:"contra_every"` // every n-th stand-in example is contrastive

	History string `yaml:"history"`  // sqlite epoch history, empty disables
	LogFile string `yaml:"log_file"` // empty logs to stderr

	l *zap.Logger
}

// Defaults returns the hyperparameters used when nothing is configured
func Defaults() HyperParameters {
	return HyperParameters{
		Policy:      reweight.Balanced.String(),
		Epochs:      3,
		Threads:     defaultThreads(),
		LogSample:   reweight.DefaultLogSample,
		Candidates:  16,
		Classes:     2,
		Size:        1024,
		ContraEvery: 4,
	}
}

func defaultThreads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Load reads YAML hyperparameters on top of Defaults. A missing file is not an error.
func Load(path string) (HyperParameters, error) {
	h := Defaults()
	if path == "" {
		return h, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return h, nil
	}
	if err != nil {
		return h, errors.Wrap(err, "reading hyperparameters")
	}
	if err := yaml.Unmarshal(data, &h); err != nil {
		return h, errors.Wrapf(err, "parsing %s", path)
	}
	return h, nil
}

// ApplyEnv loads the optional dotenv file and applies CONTRAWEIGHT_* overrides.
// Variables already set in the process environment win over the file.
func (h *HyperParameters) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return errors.Wrapf(err, "loading %s", envFile)
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "POLICY"); ok {
		h.Policy = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HISTORY"); ok {
		h.History = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "FACTOR"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrapf(ErrConfig, "%sFACTOR=%q", EnvPrefix, v)
		}
		h.Factor = f
	}
	for name, dst := range map[string]*int{"EPOCHS": &h.Epochs, "THREADS": &h.Threads} {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(ErrConfig, "%s%s=%q", EnvPrefix, name, v)
		}
		*dst = n
	}
	return nil
}

// Validate checks the hyperparameters and returns the parsed policy
func (h *HyperParameters) Validate() (reweight.Policy, error) {
	policy, err := reweight.ParsePolicy(h.Policy)
	if err != nil {
		return policy, errors.Wrap(ErrConfig, err.Error())
	}
	switch {
	case reweight.CheckFactor(h.Factor) != nil:
		return policy, errors.Wrapf(ErrConfig, "factor %v", h.Factor)
	case h.Epochs < 1:
		return policy, errors.Wrapf(ErrConfig, "epochs %d", h.Epochs)
	case h.Classes < 2:
		return policy, errors.Wrapf(ErrConfig, "classes %d", h.Classes)
	case h.Size < 1:
		return policy, errors.Wrapf(ErrConfig, "size %d", h.Size)
	}
	if h.Threads < 1 {
		h.Threads = 1
	}
	return policy, nil
}

// SetLogger builds a JSON logger writing to filename, or to stderr when filename is empty
func (h *HyperParameters) SetLogger(filename string) error {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if filename != "" {
		cfg.OutputPaths = []string{filename}
	}
	l, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	h.l = l
	return nil
}

// Logger returns the logger set by SetLogger, or a no-op logger
func (h *HyperParameters) Logger() *zap.Logger {
	if h.l == nil {
		return zap.NewNop()
	}
	return h.l
}

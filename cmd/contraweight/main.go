package main

import "fmt"
import "os"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/asclab/contraweight/learning"
import "github.com/asclab/contraweight/reweight"

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes
const (
	ExitSuccess     = 0
	ExitError       = 1 // invalid arguments, runtime failure
	ExitConfigError = 2 // invalid hyperparameters or policy
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch errors.Cause(err) {
	case nil:
		return ExitSuccess
	case learning.ErrConfig, reweight.ErrPolicy, reweight.ErrFactor:
		return ExitConfigError
	}
	return ExitError
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contraweight",
		Short: "AdaBoost style example reweighting for contrastive training sets",
		Long: `contraweight computes per-example training weights.

The initial weights come from the contrastive flags of the training
features. After every epoch the weights of contrastive examples that the
model still gets wrong are boosted by exp(estimator weight); all other
weights are left as they are.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	root.AddCommand(
		newInitCmd(),
		newUpdateCmd(),
		newSimulateCmd(),
		newSynthCmd(),
		newHistoryCmd(),
	)
	return root
}

package main

import "github.com/spf13/cobra"

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/reweight"

func newInitCmd() *cobra.Command {
	var features, policyName, output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Compute the initial weights of a training set",
		Long: `Compute the initial weights of a training set.

balanced: contrastive examples get noncontra/N, the others contra/N, so both
          groups carry the same total weight
uniform:  every example gets 1/N`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := reweight.ParsePolicy(policyName)
			if err != nil {
				return err
			}
			data, err := datasets.LoadJSONL(features)
			if err != nil {
				return err
			}
			w, err := reweight.Initialize(policy, datasets.ContraFlags(data))
			if err != nil {
				return err
			}
			if output != "" {
				return writeJSONFile(output, w)
			}
			return outputJSON(cmd.OutOrStdout(), w)
		},
	}
	cmd.Flags().StringVar(&features, "features", "", "training features, one JSON object per line")
	cmd.Flags().StringVar(&policyName, "policy", reweight.Balanced.String(), "initial weight policy: balanced or uniform")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the weights to this file instead of stdout")
	_ = cmd.MarkFlagRequired("features")
	return cmd
}

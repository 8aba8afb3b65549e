package main

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/reweight"

func newUpdateCmd() *cobra.Command {
	var features, weightsPath, predictionsPath, output string
	var factor float64
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Apply one end of epoch weight update",
		Long: `Apply one end of epoch weight update.

The predictions file holds a JSON array with the predicted class of every
training example, in the same order as the features file. The weights file
holds the JSON array produced by init or by a previous update.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := reweight.CheckFactor(factor); err != nil {
				return errors.Wrap(err, "--factor")
			}
			data, err := datasets.LoadJSONL(features)
			if err != nil {
				return err
			}
			var w reweight.Weights
			if err := readJSONFile(weightsPath, &w); err != nil {
				return err
			}
			if err := reweight.CheckWeights(w); err != nil {
				return errors.Wrap(err, weightsPath)
			}
			var predictions []uint16
			if err := readJSONFile(predictionsPath, &predictions); err != nil {
				return err
			}

			step, err := reweight.Update(w, predictions, datasets.Labels(data), datasets.ContraFlags(data), factor)
			if err != nil {
				return err
			}

			response := UpdateResponse{Step: step}
			if output != "" {
				if err := writeJSONFile(output, w); err != nil {
					return err
				}
			} else {
				response.Weights = w
			}
			return outputJSON(cmd.OutOrStdout(), response)
		},
	}
	cmd.Flags().StringVar(&features, "features", "", "training features, one JSON object per line")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "current weights (JSON array)")
	cmd.Flags().StringVar(&predictionsPath, "predictions", "", "predicted labels (JSON array)")
	cmd.Flags().Float64Var(&factor, "factor", 0, "margin added to both sides of the estimator weight ratio")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the new weights to this file")
	for _, name := range []string{"features", "weights", "predictions"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

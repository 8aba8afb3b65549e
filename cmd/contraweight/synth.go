package main

import "os"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/asclab/contraweight/datasets"
import "github.com/asclab/contraweight/datasets/contrasynth"
import "github.com/asclab/contraweight/inference"
import "github.com/asclab/contraweight/trainer"

func newSynthCmd() *cobra.Command {
	var g = contrasynth.Generator{Size: 1024, ContraEvery: 4, Classes: 2, TruthSalt: trainer.TruthSalt}
	var output, predictions string
	var salt uint32
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a synthetic contrastive training set",
		Long: `Write a synthetic contrastive training set as JSONL features.

With --predictions the predictions of the salted hash model are written too,
ready to be fed to the update command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if g.Size < 1 {
				return errors.New("size must be positive")
			}
			if g.Classes < 2 {
				return errors.New("classes must be at least 2")
			}
			data := g.Dataset()
			out := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return errors.Wrap(err, "creating features")
				}
				defer file.Close()
				out = file
			}
			if err := datasets.WriteJSONL(out, data); err != nil {
				return err
			}
			if predictions == "" {
				return nil
			}
			model := inference.HashModel{Salt: salt, Classes: g.Classes, Width: contrasynth.Width}
			return writeJSONFile(predictions, inference.PredictAll(model, data, 0))
		},
	}
	cmd.Flags().IntVar(&g.Size, "size", g.Size, "number of examples")
	cmd.Flags().IntVar(&g.ContraEvery, "contra-every", g.ContraEvery, "every n-th example is contrastive, 0 disables")
	cmd.Flags().Uint16Var(&g.Classes, "classes", g.Classes, "number of classes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the features to this file instead of stdout")
	cmd.Flags().StringVar(&predictions, "predictions", "", "also write hash model predictions to this file")
	cmd.Flags().Uint32Var(&salt, "salt", trainer.TruthSalt, "salt of the hash model used for --predictions")
	return cmd
}

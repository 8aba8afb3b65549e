package main

import "github.com/spf13/cobra"
import "go.uber.org/zap"

import "github.com/asclab/contraweight/history"
import "github.com/asclab/contraweight/learning"
import "github.com/asclab/contraweight/reweight"
import "github.com/asclab/contraweight/trainer"

func newSimulateCmd() *cobra.Command {
	var configPath, envFile, historyPath, logFile string
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a reweighted training loop on synthetic data",
		Long: `Run a reweighted training loop on synthetic data.

Hyperparameters come from the YAML config, then from the dotenv file and
CONTRAWEIGHT_* environment variables, then from the flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := learning.Load(configPath)
			if err != nil {
				return err
			}
			if err := h.ApplyEnv(envFile); err != nil {
				return err
			}
			if cmd.Flags().Changed("history") {
				h.History = historyPath
			}
			if cmd.Flags().Changed("log-file") {
				h.LogFile = logFile
			}
			policy, err := h.Validate()
			if err != nil {
				return err
			}
			if err := h.SetLogger(h.LogFile); err != nil {
				return err
			}
			logger := h.Logger()
			defer logger.Sync()

			data := trainer.SimulationData(&h)
			opts := []reweight.Option{reweight.WithObserver(reweight.LogObserver(logger, h.LogSample))}

			var response SimulateResponse
			if h.History != "" {
				db, err := history.OpenDB(h.History)
				if err != nil {
					return err
				}
				defer db.Close()
				response.RunID, err = db.CreateRun(policy, h.Factor, data.Len())
				if err != nil {
					return err
				}
				opts = append(opts, reweight.WithObserver(history.Observer(db, response.RunID, h.LogSample, func(err error) {
					logger.Error("recording epoch", zap.Error(err))
				})))
			}

			logger.Info("simulation start",
				zap.String("run_id", response.RunID),
				zap.Stringer("policy", policy),
				zap.Float64("factor", h.Factor),
				zap.Int("size", data.Len()),
				zap.Int("epochs", h.Epochs))

			response.Result, err = trainer.Simulate(&h, data, opts...)
			if err != nil {
				return err
			}
			response.SampleWeights = response.Weights.Head(h.LogSample)
			return outputJSON(cmd.OutOrStdout(), response)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML hyperparameters")
	cmd.Flags().StringVar(&envFile, "env", "", "dotenv file with CONTRAWEIGHT_* overrides")
	cmd.Flags().StringVar(&historyPath, "history", "", "SQLite file to record every epoch in")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write JSON logs to this file instead of stderr")
	return cmd
}

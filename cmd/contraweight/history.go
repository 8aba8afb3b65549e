package main

import "os"

import "github.com/pkg/errors"
import "github.com/spf13/cobra"

import "github.com/asclab/contraweight/history"

func newHistoryCmd() *cobra.Command {
	var dbPath, runID string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs or the epochs of one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(dbPath); err != nil {
				return errors.Wrap(err, "opening history")
			}
			db, err := history.OpenDB(dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			if runID == "" {
				runs, err := db.Runs()
				if err != nil {
					return err
				}
				if runs == nil {
					runs = []history.Run{}
				}
				return outputJSON(cmd.OutOrStdout(), runs)
			}
			steps, err := db.Steps(runID)
			if err != nil {
				return err
			}
			if steps == nil {
				steps = []history.Record{}
			}
			return outputJSON(cmd.OutOrStdout(), steps)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite history file")
	cmd.Flags().StringVar(&runID, "run", "", "run id, lists all runs when empty")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

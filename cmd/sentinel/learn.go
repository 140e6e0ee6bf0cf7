package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Evaluate past predictions and refit parameters",
	Long: `Scores every recorded prediction against realized prices, refits the
probability calibration, re-optimizes the scoring weights on the
configured proxy symbol, and prints the run summary as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := a.Learner.Run(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	rootCmd.AddCommand(learnCmd)
}

package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Status string `json:"status"`
			}
			if err := store.Client().Get(cmd.Context(), "/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Status: " + result.Status)
			return nil
		},
	}
}

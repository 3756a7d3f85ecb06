// Package cli is the terminal front end. Every command goes through the
// shared state store so the output always reflects what a GUI bound to the
// same store would show.
package cli

import (
	"fmt"
	"os"

	"github.com/dom/league-improvement-tracker/internal/client"
	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

var (
	cfg   *Config
	store *state.Store
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "CLI for the improvement tracker API",
		Long: `tracker talks to the improvement tracker server: game sessions,
goals, the video library, champion pools and creators.

Log in once with 'tracker auth login'; the token is stored on disk and
reused until the server rejects it.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			creds := client.NewFileCredentials(cfg.TokenFile)
			c := client.New(cfg.ServerURL, creds, client.WithUnauthorizedHook(func() {
				fmt.Fprintln(os.Stderr, "Session expired, please log in again with 'tracker auth login'")
			}))
			store = state.NewStore(c)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: TRACKER_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path (env: TRACKER_TOKEN_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newGoalCmd())
	rootCmd.AddCommand(newVideoCmd())
	rootCmd.AddCommand(newCreatorCmd())
	rootCmd.AddCommand(newPoolCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

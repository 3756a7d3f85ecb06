package cli

import (
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authentication commands",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthRegisterCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthWhoamiCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and store the session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Login(cmd.Context(), args[0], password); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Auth.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Auth.User)
			return nil
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAuthRegisterCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := state.RegisterInput{
				Username: args[0],
				Email:    email,
				Password: password,
			}
			if err := store.Register(cmd.Context(), input); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Auth.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Auth.User)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email address (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Logout(); err != nil {
				return err
			}
			NewOutput(cfg.Output).PrintMessage("Logged out")
			return nil
		},
	}
}

func newAuthWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Restore(cmd.Context()); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Auth.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Auth.User)
			return nil
		},
	}
}

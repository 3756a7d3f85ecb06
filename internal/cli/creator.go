package cli

import (
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newCreatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creator",
		Short: "Content creator commands",
	}

	cmd.AddCommand(newCreatorListCmd())
	cmd.AddCommand(newCreatorAddCmd())
	cmd.AddCommand(newCreatorDeleteCmd())

	return cmd
}

func newCreatorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List creators",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.FetchCreators(cmd.Context()); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Creators.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Creators.Items)
			return nil
		},
	}
}

func newCreatorAddCmd() *cobra.Command {
	var platform, website, description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			creator, err := store.CreateCreator(cmd.Context(), state.CreatorInput{
				Name:        args[0],
				Platform:    platform,
				Website:     website,
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().Creators.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(creator)
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Platform, e.g. youtube")
	cmd.Flags().StringVar(&website, "website", "", "Website URL")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")

	return cmd
}

func newCreatorDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a creator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteCreator(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Creators.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted creator %d", id))
			return nil
		},
	}
}

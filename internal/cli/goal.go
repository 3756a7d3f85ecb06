package cli

import (
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Improvement goal commands",
	}

	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalStatusCmd())
	cmd.AddCommand(newGoalDeleteCmd())

	return cmd
}

func newGoalListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.FetchGoals(cmd.Context(), domain.GoalStatus(status)); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Goals.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Goals.Items)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: active, completed, archived")

	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := store.CreateGoal(cmd.Context(), state.GoalInput{
				Title:       args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().Goals.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(goal)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Goal description")

	return cmd
}

func newGoalStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <active|completed|archived>",
		Short: "Change a goal's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			goal, err := store.UpdateGoalStatus(cmd.Context(), id, domain.GoalStatus(args[1]))
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().Goals.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(goal)
			return nil
		},
	}
}

func newGoalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteGoal(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Goals.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted goal %d", id))
			return nil
		},
	}
}

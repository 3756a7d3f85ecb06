package cli

import (
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/domain"
	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newPoolCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Champion pool commands",
	}

	cmd.AddCommand(newPoolListCmd())
	cmd.AddCommand(newPoolCreateCmd())
	cmd.AddCommand(newPoolAddChampionCmd())
	cmd.AddCommand(newPoolRemoveChampionCmd())
	cmd.AddCommand(newPoolDeleteCmd())

	return cmd
}

func newPoolListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your champion pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.FetchChampionPools(cmd.Context()); err != nil {
				return fmt.Errorf("%s", store.Snapshot().ChampionPools.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().ChampionPools.Items)
			return nil
		},
	}
}

func newPoolCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a champion pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := store.CreateChampionPool(cmd.Context(), state.ChampionPoolInput{
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().ChampionPools.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(pool)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Pool description")

	return cmd
}

func newPoolAddChampionCmd() *cobra.Command {
	var category, notes string

	cmd := &cobra.Command{
		Use:   "add <pool-id> <champion>",
		Short: "Add a champion to a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			input := state.ChampionEntryInput{
				ChampionID: args[1],
				Category:   domain.PoolCategory(category),
				Notes:      notes,
			}
			if err := store.AddChampion(cmd.Context(), id, input); err != nil {
				return fmt.Errorf("%s", store.Snapshot().ChampionPools.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().ChampionPools.Current)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "blind", "Pool category: blind, situational, test")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes on the pick")

	return cmd
}

func newPoolRemoveChampionCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "remove <pool-id> <champion>",
		Short: "Remove a champion from a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.RemoveChampion(cmd.Context(), id, args[1], domain.PoolCategory(category)); err != nil {
				return fmt.Errorf("%s", store.Snapshot().ChampionPools.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Removed %s from pool %d", args[1], id))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only remove from this category")

	return cmd
}

func newPoolDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a champion pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteChampionPool(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().ChampionPools.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted pool %d", id))
			return nil
		},
	}
}

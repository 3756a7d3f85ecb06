package cli

import (
	"fmt"
	"time"

	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Game session commands",
	}

	cmd.AddCommand(newSessionListCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionLogCmd())
	cmd.AddCommand(newSessionDeleteCmd())

	return cmd
}

func newSessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your game sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.FetchGameSessions(cmd.Context()); err != nil {
				return fmt.Errorf("%s", store.Snapshot().GameSessions.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().GameSessions.Items)
			return nil
		},
	}
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one game session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.FetchGameSession(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().GameSessions.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().GameSessions.Current)
			return nil
		},
	}
}

func newSessionLogCmd() *cobra.Command {
	var (
		player string
		enemy  string
		result string
		mood   int
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a game session",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			input := state.GameSessionInput{
				Date:            &now,
				PlayerCharacter: player,
				EnemyCharacter:  enemy,
				Result:          result,
				MoodRating:      mood,
				Notes:           notes,
			}

			session, err := store.CreateGameSession(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().GameSessions.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&player, "champion", "", "Champion you played (required)")
	cmd.Flags().StringVar(&enemy, "enemy", "", "Enemy laner")
	cmd.Flags().StringVar(&result, "result", "", "Game result: win, loss (required)")
	cmd.Flags().IntVar(&mood, "mood", 3, "Mood rating 1-5")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("champion")
	_ = cmd.MarkFlagRequired("result")

	return cmd
}

func newSessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a game session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteGameSession(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().GameSessions.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted session %d", id))
			return nil
		},
	}
}

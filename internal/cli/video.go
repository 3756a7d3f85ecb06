package cli

import (
	"fmt"

	"github.com/dom/league-improvement-tracker/internal/service"
	"github.com/dom/league-improvement-tracker/internal/state"
	"github.com/spf13/cobra"
)

func newVideoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "video",
		Short: "Video library commands",
	}

	cmd.AddCommand(newVideoListCmd())
	cmd.AddCommand(newVideoSearchCmd())
	cmd.AddCommand(newVideoAddCmd())
	cmd.AddCommand(newVideoWatchedCmd())
	cmd.AddCommand(newVideoDeleteCmd())
	cmd.AddCommand(newVideoImportCmd())

	return cmd
}

func newVideoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the video library",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.FetchVideos(cmd.Context()); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Videos.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Videos.Items)
			return nil
		},
	}
}

func newVideoSearchCmd() *cobra.Command {
	var (
		tags      []string
		sortBy    string
		sortOrder string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the video library",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := state.VideoSearchQuery{
				Tags:      tags,
				SortBy:    sortBy,
				SortOrder: sortOrder,
				Limit:     limit,
			}
			if len(args) > 0 {
				query.Query = args[0]
			}

			if err := store.SearchVideos(cmd.Context(), query); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Videos.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(store.Snapshot().Videos.Items)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Filter by tag (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort column: published_date, added_date, title")
	cmd.Flags().StringVar(&sortOrder, "order", "", "Sort order: asc, desc")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results")

	return cmd
}

func newVideoAddCmd() *cobra.Command {
	var (
		url     string
		creator string
		tags    []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a video to the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			video, err := store.CreateVideo(cmd.Context(), state.VideoInput{
				Title:   args[0],
				URL:     url,
				Creator: creator,
				Tags:    tags,
			})
			if err != nil {
				return fmt.Errorf("%s", store.Snapshot().Videos.Error)
			}

			out := NewOutput(cfg.Output)
			out.Print(video)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Video URL (required)")
	cmd.Flags().StringVar(&creator, "creator", "", "Creator name")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newVideoWatchedCmd() *cobra.Command {
	var progress float64

	cmd := &cobra.Command{
		Use:   "watched <id>",
		Short: "Mark a video as watched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			watched := true
			input := state.VideoProgressInput{
				IsWatched:     &watched,
				WatchProgress: &progress,
			}
			if _, err := store.SaveVideoProgress(cmd.Context(), id, input); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Videos.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Marked video %d as watched", id))
			return nil
		},
	}

	cmd.Flags().Float64Var(&progress, "progress", 1.0, "Watch progress from 0 to 1")

	return cmd
}

func newVideoDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteVideo(cmd.Context(), id); err != nil {
				return fmt.Errorf("%s", store.Snapshot().Videos.Error)
			}

			NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Deleted video %d", id))
			return nil
		},
	}
}

func newVideoImportCmd() *cobra.Command {
	var svc string

	cmd := &cobra.Command{
		Use:   "import <creator-id>",
		Short: "Import a creator's feed from kemono",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"service":    svc,
				"creator_id": args[0],
			}

			var result service.ImportResult
			if err := store.Client().Post(cmd.Context(), "/videos/kemono/import", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Imported %d of %d videos (%d skipped)",
				result.ImportedVideos, result.TotalVideos, result.SkippedVideos))
			return nil
		},
	}

	cmd.Flags().StringVar(&svc, "service", "patreon", "Kemono service name")

	return cmd
}

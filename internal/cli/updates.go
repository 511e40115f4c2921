package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// UpdatesCmd returns the updates command
func UpdatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Read and post to a project's updates feed",
		Long: `The updates feed mixes human posts with system records of board
activity. Posts can be edited or deleted by their author; system records
are immutable.`,
	}

	cmd.AddCommand(updatesListCmd())
	cmd.AddCommand(updatesPostCmd())
	cmd.AddCommand(updatesEditCmd())
	cmd.AddCommand(updatesDeleteCmd())

	return cmd
}

func updatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [project-id]",
		Short: "Show a project's feed, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			updates, err := wire.UpdateService().ListUpdates(ctx, args[0], limit)
			if err != nil {
				return fmt.Errorf("failed to list updates: %w", err)
			}

			if len(updates) == 0 {
				fmt.Println("No updates yet.")
				return nil
			}

			for _, u := range updates {
				author := u.AuthorName
				if author == "" {
					author = u.AuthorID
				}
				if u.UpdateType == "post" {
					fmt.Printf("%s  %s  %s\n", u.ID, color.New(color.FgHiBlue).Sprint(author), u.CreatedAt)
					fmt.Printf("    %s\n", u.Content)
				} else {
					system := color.New(color.Faint).Sprintf("%s %s", author, u.Content)
					fmt.Printf("%s  %s  %s\n", u.ID, system, u.CreatedAt)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "Maximum entries to show (0 for all)")
	return cmd
}

func updatesPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post [project-id] [content]",
		Short: "Post an update to the feed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			post, err := wire.UpdateService().CreatePost(ctx, args[0], args[1])
			if errors.Is(err, primary.ErrBlankContent) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to post update: %w", err)
			}

			fmt.Printf("✓ Posted %s\n", post.ID)
			return nil
		},
	}
}

func updatesEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [update-id] [content]",
		Short: "Edit one of your posts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			err = wire.UpdateService().EditUpdate(ctx, args[0], args[1])
			if errors.Is(err, primary.ErrBlankContent) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to edit update: %w", err)
			}

			fmt.Printf("✓ Edited %s\n", args[0])
			return nil
		},
	}
}

func updatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [update-id]",
		Short: "Delete one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.UpdateService().DeleteUpdate(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete update: %w", err)
			}

			fmt.Printf("✓ Deleted %s\n", args[0])
			return nil
		},
	}
}

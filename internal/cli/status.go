package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your space at a glance",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := actorContext()
			if err != nil {
				return err
			}

			fmt.Printf("Acting as %s in %s\n", color.New(color.FgHiBlue).Sprint(cfg.UserID), cfg.SpaceID)

			projects, err := wire.ProjectService().ListProjects(ctx, primary.ProjectFilters{
				SpaceID: cfg.SpaceID,
			})
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("\nNo projects yet. Create one with 'hearth project create'.")
				return nil
			}

			fmt.Println()
			for _, p := range projects {
				board, err := wire.ProjectService().GetBoard(ctx, p.ID)
				if err != nil {
					return err
				}

				open := 0
				done := 0
				for _, phase := range board.Active {
					for _, item := range phase.Items {
						if item.Completed {
							done++
						} else {
							open++
						}
					}
				}
				fmt.Printf("  %s %s: %d active phase(s), %d completed, %d open item(s), %d done\n",
					p.ID, p.Name, len(board.Active), len(board.Completed), open, done)
			}
			return nil
		},
	}
}

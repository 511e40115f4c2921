package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// PhaseCmd returns the phase command
func PhaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Manage project phases",
		Long:  `Create, rename, assign, restore, and delete phases on a project board.`,
	}

	cmd.AddCommand(phaseCreateCmd())
	cmd.AddCommand(phaseRenameCmd())
	cmd.AddCommand(phaseDeleteCmd())
	cmd.AddCommand(phaseAssignCmd())
	cmd.AddCommand(phaseRestoreCmd())
	cmd.AddCommand(phaseMembersCmd())

	return cmd
}

func phaseCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new phase at the end of the board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			resp, err := wire.PhaseService().CreatePhase(ctx, primary.CreatePhaseRequest{
				ProjectID: args[0],
				Title:     args[1],
			})
			if errors.Is(err, primary.ErrBlankTitle) {
				// Blank titles are a silent skip, mirroring an empty
				// inline-create being dismissed.
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to create phase: %w", err)
			}

			fmt.Printf("✓ Created phase %s: %s\n", resp.PhaseID, resp.Phase.Title)
			return nil
		},
	}
}

func phaseRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [phase-id] [title]",
		Short: "Rename a phase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			err = wire.PhaseService().RenamePhase(ctx, args[0], args[1])
			if errors.Is(err, primary.ErrBlankTitle) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to rename phase: %w", err)
			}

			fmt.Printf("✓ Renamed phase %s\n", args[0])
			return nil
		},
	}
}

func phaseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [phase-id]",
		Short: "Delete a phase and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.PhaseService().DeletePhase(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete phase: %w", err)
			}

			fmt.Printf("✓ Deleted phase %s\n", args[0])
			return nil
		},
	}
}

func phaseAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign [phase-id] [user-id]",
		Short: "Assign a phase to a space member",
		Long:  `Assign a phase to a space member. Use --clear to remove the assignment.`,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}
			clear, _ := cmd.Flags().GetBool("clear")

			userID := ""
			if !clear {
				if len(args) < 2 {
					return fmt.Errorf("user-id required unless --clear is set")
				}
				userID = args[1]
			}

			if err := wire.PhaseService().AssignPhase(ctx, args[0], userID); err != nil {
				return fmt.Errorf("failed to assign phase: %w", err)
			}

			if userID == "" {
				fmt.Printf("✓ Cleared assignment on phase %s\n", args[0])
			} else {
				fmt.Printf("✓ Assigned phase %s to %s\n", args[0], userID)
			}
			return nil
		},
	}

	cmd.Flags().Bool("clear", false, "Clear the assignment")
	return cmd
}

func phaseRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [phase-id]",
		Short: "Return a completed phase to the active board",
		Long: `Return a completed phase to the active board. The phase is appended
after the existing active phases; its items keep their completion state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.PhaseService().RestorePhase(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to restore phase: %w", err)
			}

			fmt.Printf("✓ Restored phase %s to the active board\n", args[0])
			return nil
		},
	}
}

func phaseMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List assignable space members",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := actorContext()
			if err != nil {
				return err
			}

			members, err := wire.PhaseService().ListMembers(ctx, cfg.SpaceID)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			if len(members) == 0 {
				fmt.Println("No members found.")
				return nil
			}

			for _, m := range members {
				marker := ""
				if m.ID == cfg.UserID {
					marker = " (you)"
				}
				fmt.Printf("  %s  %s%s\n", m.ID, m.Name, marker)
			}
			return nil
		},
	}
}

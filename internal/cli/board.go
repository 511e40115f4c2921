package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board [project-id]",
		Short: "Show a project's board",
		Long:  `Render the full board for a project: active phases in order with their items, plus the completed set.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			board, err := wire.ProjectService().GetBoard(ctx, args[0])
			if err != nil {
				return err
			}

			printBoard(board)
			return nil
		},
	}

	cmd.AddCommand(boardMovePhaseCmd())
	cmd.AddCommand(boardMoveItemCmd())

	return cmd
}

func printBoard(board *primary.Board) {
	header := color.New(color.FgHiBlue, color.Bold)
	done := color.New(color.FgHiGreen)

	fmt.Printf("\n%s: %s\n", board.Project.ID, header.Sprint(board.Project.Name))

	if len(board.Active) == 0 && len(board.Completed) == 0 {
		fmt.Println("\nNo phases yet. Add one with 'hearth phase create'.")
		return
	}

	for _, phase := range board.Active {
		assigned := ""
		if phase.AssignedTo != "" {
			assigned = color.New(color.FgCyan).Sprintf(" [%s]", phase.AssignedTo)
		}
		fmt.Printf("\n  %s %s%s\n", phase.ID, phase.Title, assigned)
		for _, item := range phase.Items {
			printItem(item)
		}
		if len(phase.Items) == 0 {
			fmt.Println("      (no items)")
		}
	}

	if len(board.Completed) > 0 {
		fmt.Printf("\n%s\n", done.Sprintf("Completed (%d)", len(board.Completed)))
		for _, phase := range board.Completed {
			fmt.Printf("  %s %s (completed %s)\n", phase.ID, phase.Title, phase.CompletedAt)
		}
	}
	fmt.Println()
}

func printItem(item *primary.Item) {
	mark := "[ ]"
	if item.Completed {
		mark = color.New(color.FgHiGreen).Sprint("[x]")
	}
	due := ""
	if item.DueDate != "" {
		due = color.New(color.FgYellow).Sprintf(" (due %s)", item.DueDate)
	}
	fmt.Printf("    %s %s %s%s\n", mark, item.ID, item.Title, due)

	for _, sub := range item.SubItems {
		subMark := "[ ]"
		if sub.Completed {
			subMark = "[x]"
		}
		fmt.Printf("        %s %s\n", subMark, sub.Text)
	}
}

func boardMovePhaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move-phase [project-id] [phase-id] [over-phase-id]",
		Short: "Move a phase onto another phase's slot",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			resp, moveErr := wire.BoardService().MovePhase(ctx, primary.MovePhaseRequest{
				ProjectID: args[0],
				ActiveID:  args[1],
				OverID:    args[2],
			})
			return reportMove(resp, moveErr)
		},
	}
}

func boardMoveItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move-item [phase-id] [item-id] [over-item-id]",
		Short: "Move an item onto another item's slot within a phase",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			resp, moveErr := wire.BoardService().MoveItem(ctx, primary.MoveItemRequest{
				PhaseID:  args[0],
				ActiveID: args[1],
				OverID:   args[2],
			})
			return reportMove(resp, moveErr)
		},
	}
}

// reportMove prints the resulting order. A failed move that came back with a
// reloaded working set prints the reconciled order before surfacing the
// error.
func reportMove(resp *primary.MoveResponse, moveErr error) error {
	if resp == nil {
		return moveErr
	}

	if moveErr != nil && resp.Reloaded {
		fmt.Println("Move failed; current order:")
	} else if !resp.Moved {
		fmt.Println("Nothing to move; current order:")
	}

	for _, entry := range resp.Order {
		fmt.Printf("  %d. %s %s\n", entry.Position+1, entry.ID, entry.Title)
	}

	if moveErr != nil {
		return errors.New("the move could not be saved")
	}
	return nil
}

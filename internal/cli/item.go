package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// ItemCmd returns the item command
func ItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage phase items",
		Long:  `Create, toggle, edit, and delete items within a phase, including their sub-item checklists.`,
	}

	cmd.AddCommand(itemCreateCmd())
	cmd.AddCommand(itemShowCmd())
	cmd.AddCommand(itemToggleCmd())
	cmd.AddCommand(itemEditCmd())
	cmd.AddCommand(itemDeleteCmd())
	cmd.AddCommand(itemSubCmd())

	return cmd
}

func itemCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [phase-id] [title]",
		Short: "Create a new item at the end of a phase",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			resp, err := wire.ItemService().CreateItem(ctx, primary.CreateItemRequest{
				PhaseID: args[0],
				Title:   args[1],
			})
			if errors.Is(err, primary.ErrBlankTitle) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to create item: %w", err)
			}

			fmt.Printf("✓ Created item %s: %s\n", resp.ItemID, resp.Item.Title)
			return nil
		},
	}
}

func itemShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [item-id]",
		Short: "Show item details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			item, err := wire.ItemService().GetItem(ctx, args[0])
			if err != nil {
				return err
			}

			printItem(item)
			if item.Notes != "" {
				fmt.Printf("      Notes: %s\n", item.Notes)
			}
			if item.AssignedTo != "" {
				fmt.Printf("      Assigned to: %s\n", item.AssignedTo)
			}
			return nil
		},
	}
}

func itemToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [item-id]",
		Short: "Flip an item's completion state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			resp, err := wire.ItemService().ToggleItem(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to toggle item: %w", err)
			}

			if resp.Item.Completed {
				fmt.Printf("✓ Completed %s: %s\n", resp.Item.ID, resp.Item.Title)
			} else {
				fmt.Printf("✓ Reopened %s: %s\n", resp.Item.ID, resp.Item.Title)
			}
			if resp.CascadeErr != nil {
				fmt.Printf("  Note: the phase could not be marked complete: %v\n", resp.CascadeErr)
			}
			return nil
		},
	}
}

func itemEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit [item-id]",
		Short: "Edit an item's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			req := primary.UpdateItemRequest{ItemID: args[0]}
			if cmd.Flags().Changed("title") {
				title, _ := cmd.Flags().GetString("title")
				req.Title = &title
			}
			if cmd.Flags().Changed("notes") {
				notes, _ := cmd.Flags().GetString("notes")
				req.Notes = &notes
			}
			if cmd.Flags().Changed("due") {
				due, _ := cmd.Flags().GetString("due")
				req.DueDate = &due
			}
			if cmd.Flags().Changed("assign") {
				assign, _ := cmd.Flags().GetString("assign")
				req.AssignedTo = &assign
			}

			err = wire.ItemService().UpdateItem(ctx, req)
			if errors.Is(err, primary.ErrBlankTitle) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to update item: %w", err)
			}

			fmt.Printf("✓ Updated item %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("notes", "", "New notes")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("assign", "", "Assignee user ID (empty clears)")
	return cmd
}

func itemDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [item-id]",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.ItemService().DeleteItem(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete item: %w", err)
			}

			fmt.Printf("✓ Deleted item %s\n", args[0])
			return nil
		},
	}
}

func itemSubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage an item's sub-item checklist",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add [item-id] [text]",
		Short: "Append a checklist entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			err = wire.ItemService().AddSubItem(ctx, args[0], args[1])
			if errors.Is(err, primary.ErrBlankTitle) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to add sub-item: %w", err)
			}

			fmt.Printf("✓ Added sub-item to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle [item-id] [sub-item-id]",
		Short: "Flip a checklist entry's completed flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.ItemService().ToggleSubItem(ctx, args[0], args[1]); err != nil {
				return fmt.Errorf("failed to toggle sub-item: %w", err)
			}

			fmt.Printf("✓ Toggled sub-item on %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "move [item-id] [old-index] [new-index]",
		Short: "Move a checklist entry to a new position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			oldIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid old index %q", args[1])
			}
			newIndex, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid new index %q", args[2])
			}

			if err := wire.BoardService().ReorderSubItems(ctx, args[0], oldIndex, newIndex); err != nil {
				return fmt.Errorf("failed to move sub-item: %w", err)
			}

			fmt.Printf("✓ Moved sub-item on %s\n", args[0])
			return nil
		},
	})

	return cmd
}

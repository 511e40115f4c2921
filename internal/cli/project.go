package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/wire"
)

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  `Create, list, show, and delete projects in your space.`,
	}

	cmd.AddCommand(projectCreateCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectDeleteCmd())

	return cmd
}

func projectCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := actorContext()
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")

			resp, err := wire.ProjectService().CreateProject(ctx, primary.CreateProjectRequest{
				SpaceID:     cfg.SpaceID,
				Name:        args[0],
				Description: description,
			})
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			fmt.Printf("✓ Created project %s: %s\n", resp.ProjectID, resp.Project.Name)
			return nil
		},
	}

	cmd.Flags().String("description", "", "Project description")
	return cmd
}

func projectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := actorContext()
			if err != nil {
				return err
			}
			status, _ := cmd.Flags().GetString("status")

			projects, err := wire.ProjectService().ListProjects(ctx, primary.ProjectFilters{
				SpaceID: cfg.SpaceID,
				Status:  status,
			})
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			if len(projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}

			fmt.Printf("\n%-12s %-10s %s\n", "ID", "STATUS", "NAME")
			fmt.Println("────────────────────────────────────────────────")
			for _, p := range projects {
				fmt.Printf("%-12s %-10s %s\n", p.ID, p.Status, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().String("status", "", "Filter by status")
	return cmd
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			project, err := wire.ProjectService().GetProject(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", project.ID, project.Name)
			fmt.Printf("  Status: %s\n", project.Status)
			if project.Description != "" {
				fmt.Printf("  Description: %s\n", project.Description)
			}
			fmt.Printf("  Created: %s\n", project.CreatedAt)
			return nil
		},
	}
}

func projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project and everything under it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _, err := actorContext()
			if err != nil {
				return err
			}

			if err := wire.ProjectService().DeleteProject(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			fmt.Printf("✓ Deleted project %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/config"
	"github.com/example/hearth/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the hearth database and config",
		Long:  `Initialize the hearth database at ~/.hearth/hearth.db and write the user config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			spaceID, _ := cmd.Flags().GetString("space")
			seed, _ := cmd.Flags().GetBool("seed")

			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing hearth database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}
			fmt.Println("✓ Database initialized successfully")

			if seed {
				database, err := db.GetDB()
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Demo fixtures loaded")
			}

			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			if err := config.SaveConfig(home, &config.Config{
				Version: "1",
				UserID:  userID,
				SpaceID: spaceID,
			}); err != nil {
				return err
			}
			fmt.Printf("✓ Config written for %s in %s\n", userID, spaceID)
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  hearth project create \"My First Project\"")
			fmt.Println("  hearth status")

			return nil
		},
	}

	cmd.Flags().String("user", "USER-001", "Acting user ID")
	cmd.Flags().String("space", "SPACE-001", "Space ID")
	cmd.Flags().Bool("seed", false, "Load demo fixtures")
	return cmd
}

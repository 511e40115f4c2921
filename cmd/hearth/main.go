package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/hearth/internal/cli"
	"github.com/example/hearth/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hearth",
		Short:   "hearth - shared project boards for your household",
		Version: version.String(),
		Long: `hearth manages shared projects as phase boards: ordered phases holding
ordered items with checklists, plus an activity feed per project.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.ProjectCmd())
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.PhaseCmd())
	rootCmd.AddCommand(cli.ItemCmd())
	rootCmd.AddCommand(cli.UpdatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:   "gitdeck",
		Short: "Menu-driven TUI dashboard for git repositories",
		Long:  "Gitdeck: branches, remotes, changes and commits in one keyboard-driven dashboard.",
	}

	root.PersistentFlags().StringP("repo", "r", ".", "Path to repository root (default: current dir)")

	root.AddCommand(newDashCmd())

	if err := root.Execute(); err != nil {
		return fmt.Errorf("execute: %w", err)
	}
	return nil
}

func mustGetStringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "flag error:", err)
		os.Exit(2)
	}
	return v
}

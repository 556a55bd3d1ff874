package cli

import (
	"fmt"

	"github.com/interpretive-systems/gitdeck/internal/config"
	"github.com/interpretive-systems/gitdeck/internal/gitcmd"
	"github.com/interpretive-systems/gitdeck/internal/logging"
	"github.com/interpretive-systems/gitdeck/internal/tui"
	"github.com/spf13/cobra"
)

func newDashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the dashboard for a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := mustGetStringFlag(cmd.Root(), "repo")
			root, err := gitcmd.RepoRoot(repoPath)
			if err != nil {
				return fmt.Errorf("not a git repo: %w", err)
			}

			settings := config.Load(root)
			if v, _ := cmd.Flags().GetString("editor"); v != "" {
				settings.Editor = v
			}
			if v, _ := cmd.Flags().GetString("log-file"); v != "" {
				settings.LogFile = v
			}
			if v, _ := cmd.Flags().GetBool("trace"); v {
				settings.Trace = true
			}

			logging.Configure(settings.LogFile)
			logging.SetTraceEnabled(settings.Trace)

			return tui.Run(root, settings)
		},
	}
	cmd.Flags().String("editor", "", "External editor command (overrides saved setting)")
	cmd.Flags().String("log-file", "", "Trace log destination (overrides saved setting)")
	cmd.Flags().Bool("trace", false, "Enable trace logging")
	return cmd
}

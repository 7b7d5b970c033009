package cli

import (
	"github.com/spf13/cobra"

	"github.com/calegray/modship/internal/command"
	"github.com/calegray/modship/internal/config"
	"github.com/calegray/modship/internal/prompt"
	"github.com/calegray/modship/internal/workflow"
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Interactively build and publish a mod release",
	Long: `Walk through the release sequence: destination, build method, next
version, changelog entry, then the build command.

The current version defaults to the repository's highest semver tag.
Cancelling any prompt (ctrl+c / esc) aborts the whole run; nothing is
written until every step is confirmed.

Examples:
  modship release            # Full interactive workflow
  modship release --yes      # Take confirmation defaults without asking`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRelease,
}

func init() {
	releaseCmd.GroupID = GroupRelease
	rootCmd.AddCommand(releaseCmd)
}

func runRelease(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	if yesFlag {
		cfg.SkipConfirmations = true
	}

	w := workflow.New(prompt.NewTerminal(), command.NewRealExecutor(), cfg, cmd.OutOrStdout())
	return w.Run(cmd.Context())
}

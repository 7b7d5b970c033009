package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/calegray/modship/internal/config"
	clierrors "github.com/calegray/modship/internal/errors"
	"github.com/calegray/modship/internal/prompt"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented starter config",
	Long: `Create the modship configuration file with commented defaults.

Examples:
  modship init               # Project config (.modship/config.yml)
  modship init --global      # User config (~/.config/modship/config.yml)
  modship init --force       # Overwrite an existing config without asking`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	initCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("global", "g", false, "Write the user-level config instead of the project one")
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	path := config.ProjectConfigPath()
	if global {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return clierrors.WrapWithMessage(err, clierrors.External, "resolving user config path")
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !force {
		overwrite, err := initPrompter().Confirm(prompt.ConfirmSpec{
			Message: fmt.Sprintf("Config exists at %s. Overwrite?", path),
			Default: false,
		})
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintf(cmd.OutOrStdout(), "Config unchanged at %s\n", path)
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.External, "creating config directory")
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.WrapWithMessage(err, clierrors.External, "writing config")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}

func initPrompter() prompt.Prompter {
	var p prompt.Prompter = prompt.NewTerminal()
	if yesFlag {
		p = prompt.WithAutoConfirm(p)
	}
	return p
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/modship/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print modship version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "modship %s\n", build.Version)
		fmt.Fprintf(out, "  commit: %s\n", build.Commit)
		fmt.Fprintf(out, "  built:  %s\n", build.BuildDate)
	},
}

func init() {
	versionCmd.GroupID = GroupConfiguration
	rootCmd.AddCommand(versionCmd)
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/modship/internal/changelog"
	"github.com/calegray/modship/internal/config"
	clierrors "github.com/calegray/modship/internal/errors"
)

var changelogFileFlag string

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Inspect the changelog entry format",
	Long:  `Commands for validating and viewing changelog entries without running a release.`,
}

var changelogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every entry in the changelog",
	Long: `Scan the changelog and report entries that fail the format: the 99-dash
separator, the Version and Date headers, body lines, and the terminator.

Examples:
  modship changelog check
  modship changelog check --file notes/CHANGELOG.txt`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runChangelogCheck,
}

var changelogShowCmd = &cobra.Command{
	Use:   "show <version>",
	Short: "Print the changelog entry for a version",
	Long: `Print the entry whose Version header matches the given version.

Examples:
  modship changelog show 1.2.0
  modship changelog show 2.0.0 --file notes/CHANGELOG.txt`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runChangelogShow,
}

func init() {
	changelogCmd.GroupID = GroupRelease
	rootCmd.AddCommand(changelogCmd)
	changelogCmd.AddCommand(changelogCheckCmd, changelogShowCmd)

	changelogCmd.PersistentFlags().StringVar(&changelogFileFlag, "file", "", "Changelog file (default from config)")
}

// changelogDocument reads the changelog named by --file or the config.
func changelogDocument() (string, string, error) {
	path := changelogFileFlag
	if path == "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return "", "", err
		}
		path = cfg.ChangelogPath
	}

	doc, err := readFile(path)
	if err != nil {
		return "", "", clierrors.ChangelogNotReadable(path, err)
	}
	return doc, path, nil
}

func runChangelogCheck(cmd *cobra.Command, args []string) error {
	doc, path, err := changelogDocument()
	if err != nil {
		return err
	}

	entries, problems := changelog.Scan(doc)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s: %d entries\n", path, len(entries))
	for _, e := range entries {
		fmt.Fprintf(out, "  %s (%s)\n", e.Version, e.Date)
	}

	if len(problems) > 0 {
		fmt.Fprintf(out, "\n%d malformed block(s):\n", len(problems))
		for _, p := range problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return clierrors.NewInvalidInputError(
			fmt.Sprintf("%s has %d malformed changelog block(s)", path, len(problems)),
			"Fix the blocks listed above to match the entry format",
		)
	}
	return nil
}

func runChangelogShow(cmd *cobra.Command, args []string) error {
	doc, _, err := changelogDocument()
	if err != nil {
		return err
	}

	entry, err := changelog.Find(doc, args[0])
	if err != nil {
		var notFound *changelog.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n", args[0])
			if len(notFound.Available) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "\nAvailable versions:\n")
				for _, v := range notFound.Available {
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", v)
				}
			}
			return clierrors.EntryNotFound(args[0])
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), entry.Raw)
	return nil
}

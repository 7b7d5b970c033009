// Package git provides repository helpers for modship. It uses the
// go-git library so tag inspection works without a git CLI install.
package git

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// LatestReleaseTag returns the highest semantic-version tag of the
// repository containing path, searching parent directories for the .git
// directory. Returns "" (no error) when there is no repository or no
// semver-shaped tag; the caller elicits a version instead.
func LatestReleaseTag(path string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", nil
		}
		return "", fmt.Errorf("opening repository at %s: %w", path, err)
	}

	iter, err := repo.Tags()
	if err != nil {
		return "", fmt.Errorf("listing tags: %w", err)
	}

	var latest *semver.Version
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		v, perr := semver.NewVersion(ref.Name().Short())
		if perr != nil {
			// Not a release tag.
			return nil
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("iterating tags: %w", err)
	}

	if latest == nil {
		return "", nil
	}
	return latest.String(), nil
}

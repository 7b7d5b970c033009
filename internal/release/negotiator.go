// Package release implements next-version negotiation: resolving an
// authoritative release version from the current one through a bounded
// sequence of prompts.
package release

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/calegray/modship/internal/prompt"
)

// Negotiator resolves release versions through interactive prompts. All
// validation is delegated to the prompt's validate hook; Negotiator never
// loops on invalid input itself.
type Negotiator struct {
	prompter prompt.Prompter
}

// NewNegotiator returns a Negotiator asking through p.
func NewNegotiator(p prompt.Prompter) *Negotiator {
	return &Negotiator{prompter: p}
}

// CheckVersion is the validate hook for free-form version input.
func CheckVersion(s string) error {
	if _, err := semver.NewVersion(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("not a semantic version (expected MAJOR.MINOR.PATCH)")
	}
	return nil
}

// ValidateVersion returns an accepted semantic version for candidate.
//
// An empty or unparseable candidate is elicited from the user, defaulting
// to "1.0.0", with semver validation in the prompt hook. If the canonical
// form differs from the raw input (v prefix, leading zeros, whitespace),
// the user confirms adopting it; declining keeps the raw-but-valid string.
func (n *Negotiator) ValidateVersion(candidate string) (string, error) {
	candidate = strings.TrimSpace(candidate)

	if _, err := semver.NewVersion(candidate); err != nil {
		answer, err := n.prompter.Input(prompt.InputSpec{
			Message:  "Release version",
			Default:  "1.0.0",
			Validate: CheckVersion,
		})
		if err != nil {
			return "", err
		}
		candidate = strings.TrimSpace(answer)
	}

	parsed, err := semver.NewVersion(candidate)
	if err != nil {
		// The validate hook admits only parseable versions, so this is
		// a prompter contract violation.
		return "", fmt.Errorf("validated version %q does not parse: %w", candidate, err)
	}

	cleaned := parsed.String()
	if cleaned != candidate {
		adopt, err := n.prompter.Confirm(prompt.ConfirmSpec{
			Message: fmt.Sprintf("Use cleaned version %q instead of %q?", cleaned, candidate),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if adopt {
			return cleaned, nil
		}
	}
	return candidate, nil
}

// NextVersion determines the next release version from current.
//
// An invalid or absent current version short-circuits the menu: the
// freshly validated version is returned immediately. Otherwise the user
// chooses among keeping the current version, the patch, minor, and major
// increments (standard semver rules, prerelease and build metadata
// cleared), or a custom version elicited free-form. A choice that does
// not exceed the current version requires explicit confirmation
// (default yes); declining aborts.
func (n *Negotiator) NextVersion(current string) (string, error) {
	validated, err := n.ValidateVersion(current)
	if err != nil {
		return "", err
	}
	if _, perr := semver.NewVersion(strings.TrimSpace(current)); perr != nil {
		// current was absent or invalid; the elicited version stands.
		return validated, nil
	}

	cur, err := semver.NewVersion(validated)
	if err != nil {
		return "", fmt.Errorf("validated version %q does not parse: %w", validated, err)
	}
	patch := cur.IncPatch()
	minor := cur.IncMinor()
	major := cur.IncMajor()

	choice, err := n.prompter.Select(prompt.SelectSpec{
		Message: fmt.Sprintf("Next version (current %s)", validated),
		Options: []prompt.Option{
			{Label: fmt.Sprintf("Current (%s)", validated), Value: validated},
			{Label: fmt.Sprintf("Patch (%s)", patch.String()), Value: patch.String()},
			{Label: fmt.Sprintf("Minor (%s)", minor.String()), Value: minor.String()},
			{Label: fmt.Sprintf("Major (%s)", major.String()), Value: major.String()},
			{Label: "Custom", Value: ""},
		},
	})
	if err != nil {
		return "", err
	}

	next, err := n.ValidateVersion(choice)
	if err != nil {
		return "", err
	}

	nextParsed, err := semver.NewVersion(next)
	if err != nil {
		return "", fmt.Errorf("validated version %q does not parse: %w", next, err)
	}
	if !nextParsed.GreaterThan(cur) {
		keep, err := n.prompter.Confirm(prompt.ConfirmSpec{
			Message: fmt.Sprintf("Version %s does not exceed current %s. Continue anyway?", next, validated),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if !keep {
			return "", prompt.ErrAborted
		}
	}

	return next, nil
}

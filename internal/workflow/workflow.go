// Package workflow drives the interactive release sequence end to end:
// destination, build method, version negotiation, changelog resolution,
// and the build invocation. Execution is strictly sequential; every step
// either completes synchronously or waits on exactly one prompt, and a
// cancellation at any prompt aborts the whole run before anything is
// written.
package workflow

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/calegray/modship/internal/changelog"
	"github.com/calegray/modship/internal/command"
	"github.com/calegray/modship/internal/config"
	clierrors "github.com/calegray/modship/internal/errors"
	"github.com/calegray/modship/internal/git"
	"github.com/calegray/modship/internal/progress"
	"github.com/calegray/modship/internal/prompt"
	"github.com/calegray/modship/internal/release"
)

// Workflow wires the release steps to their collaborators.
type Workflow struct {
	Prompter prompt.Prompter
	Executor command.Executor
	Config   *config.Configuration
	Out      io.Writer

	// CurrentVersion supplies the version the negotiation starts from.
	// Defaults to the repository's highest semver tag; "" elicits one.
	CurrentVersion func() (string, error)

	// Now stamps freshly authored changelog entries.
	Now func() time.Time

	// ShowSpinner controls the in-progress indicator around the build.
	ShowSpinner bool
}

// ReleasePlan is the fully negotiated input to the build step.
type ReleasePlan struct {
	Destination string
	Method      config.BuildMethod
	Version     string
	Notes       *changelog.Entry
}

// New builds a Workflow with the default collaborators.
func New(p prompt.Prompter, e command.Executor, cfg *config.Configuration, out io.Writer) *Workflow {
	if cfg.SkipConfirmations {
		p = prompt.WithAutoConfirm(p)
	}
	return &Workflow{
		Prompter: p,
		Executor: e,
		Config:   cfg,
		Out:      out,
		CurrentVersion: func() (string, error) {
			return git.LatestReleaseTag(".")
		},
		Now:         time.Now,
		ShowSpinner: true,
	}
}

// Run negotiates a release plan and executes the build.
func (w *Workflow) Run(ctx context.Context) error {
	plan, err := w.Plan()
	if err != nil {
		return err
	}
	return w.Build(ctx, plan)
}

// Plan walks the prompt sequence and returns the negotiated plan.
// No state is persisted; a cancellation anywhere surfaces as
// prompt.ErrAborted with nothing to roll back.
func (w *Workflow) Plan() (*ReleasePlan, error) {
	dest, err := w.chooseDestination()
	if err != nil {
		return nil, err
	}

	method, err := w.chooseMethod()
	if err != nil {
		return nil, err
	}

	current, err := w.CurrentVersion()
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.External)
	}

	negotiator := release.NewNegotiator(w.Prompter)
	version, err := negotiator.NextVersion(current)
	if err != nil {
		return nil, err
	}

	doc, err := w.readChangelog()
	if err != nil {
		return nil, err
	}

	resolver := changelog.NewResolverWithClock(w.Prompter, w.Now)
	entry, err := resolver.ResolvePatchNotes(doc, version)
	if err != nil {
		return nil, err
	}

	return &ReleasePlan{
		Destination: dest,
		Method:      method,
		Version:     version,
		Notes:       entry,
	}, nil
}

// Build runs the plan's build command with the release details in its
// environment.
func (w *Workflow) Build(ctx context.Context, plan *ReleasePlan) error {
	notesFile, err := w.writeNotesFile(plan)
	if err != nil {
		return err
	}
	defer os.Remove(notesFile)

	if w.ShowSpinner {
		sp := progress.NewSpinner(fmt.Sprintf("Building %s (%s)", plan.Version, plan.Method.Name))
		sp.Start()
		defer sp.Stop()
	}

	cmd := command.Shell(plan.Method.Command)
	cmd.Env = []string{
		"MODSHIP_VERSION=" + plan.Version,
		"MODSHIP_DEST=" + plan.Destination,
		"MODSHIP_NOTES_FILE=" + notesFile,
	}

	result, err := w.Executor.Execute(ctx, cmd)
	if err != nil {
		return clierrors.WrapWithMessage(err, clierrors.External,
			fmt.Sprintf("build method %q could not run", plan.Method.Name))
	}
	if result.ExitCode != 0 {
		return clierrors.BuildFailed(plan.Method.Name, result.ExitCode)
	}

	symbols := progress.SelectSymbols(progress.DetectTerminalCapabilities())
	fmt.Fprintf(w.Out, "%s Release %s built to %s\n", symbols.Checkmark, plan.Version, plan.Destination)
	return nil
}

func (w *Workflow) chooseDestination() (string, error) {
	if len(w.Config.Destinations) > 0 {
		options := make([]prompt.Option, len(w.Config.Destinations))
		for i, d := range w.Config.Destinations {
			options[i] = prompt.Option{Label: d, Value: d}
		}
		return w.Prompter.Select(prompt.SelectSpec{
			Message: "Destination",
			Options: options,
		})
	}

	return w.Prompter.Input(prompt.InputSpec{
		Message: "Destination directory",
		Default: w.Config.Destination,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("destination must not be empty")
			}
			return nil
		},
	})
}

func (w *Workflow) chooseMethod() (config.BuildMethod, error) {
	methods := w.Config.BuildMethods
	if len(methods) == 0 {
		return config.BuildMethod{}, clierrors.NoBuildMethods()
	}
	if len(methods) == 1 {
		return methods[0], nil
	}

	// Put the default method first so it is the initial selection.
	options := make([]prompt.Option, 0, len(methods))
	for _, m := range methods {
		opt := prompt.Option{
			Label: fmt.Sprintf("%s (%s)", m.Name, m.Command),
			Value: m.Name,
		}
		if m.Name == w.Config.DefaultMethod {
			options = append([]prompt.Option{opt}, options...)
		} else {
			options = append(options, opt)
		}
	}

	chosen, err := w.Prompter.Select(prompt.SelectSpec{
		Message: "Build method",
		Options: options,
	})
	if err != nil {
		return config.BuildMethod{}, err
	}

	method, ok := w.Config.Method(chosen)
	if !ok {
		return config.BuildMethod{}, clierrors.NewInvalidInputError(
			fmt.Sprintf("unknown build method %q", chosen))
	}
	return method, nil
}

// readChangelog loads the changelog document. A missing file is not an
// error: the resolver elicits a fresh entry against an empty document.
func (w *Workflow) readChangelog() (string, error) {
	data, err := os.ReadFile(w.Config.ChangelogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", clierrors.ChangelogNotReadable(w.Config.ChangelogPath, err)
	}
	return string(data), nil
}

// writeNotesFile persists the resolved entry to a temp file for the
// build command to consume via MODSHIP_NOTES_FILE.
func (w *Workflow) writeNotesFile(plan *ReleasePlan) (string, error) {
	f, err := os.CreateTemp("", "modship-notes-*.txt")
	if err != nil {
		return "", clierrors.WrapWithMessage(err, clierrors.External, "creating notes file")
	}
	defer f.Close()

	if _, err := f.WriteString(plan.Notes.Raw + "\n"); err != nil {
		os.Remove(f.Name())
		return "", clierrors.WrapWithMessage(err, clierrors.External, "writing notes file")
	}
	return f.Name(), nil
}

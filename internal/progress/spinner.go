package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows an in-progress indicator around a long-running step.
// Outside a TTY it is a no-op.
type Spinner struct {
	s       *spinner.Spinner
	enabled bool
}

// NewSpinner builds a spinner with the given suffix message, using the
// symbol set matched to the terminal.
func NewSpinner(message string) *Spinner {
	caps := DetectTerminalCapabilities()
	symbols := SelectSymbols(caps)

	sp := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond)
	sp.Suffix = " " + message

	return &Spinner{s: sp, enabled: caps.IsTTY}
}

func (p *Spinner) Start() {
	if p.enabled {
		p.s.Start()
	}
}

func (p *Spinner) Stop() {
	if p.enabled {
		p.s.Stop()
	}
}

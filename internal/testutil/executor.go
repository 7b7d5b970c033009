package testutil

import (
	"context"

	"github.com/calegray/modship/internal/command"
)

// MockExecutor records every command it is asked to run and returns a
// canned result.
type MockExecutor struct {
	// Commands accumulates the executed commands in order.
	Commands []command.Command
	// Result is returned for every execution; nil means success with
	// exit code 0.
	Result *command.Result
	// Err, when set, is returned instead of a result.
	Err error
}

func (m *MockExecutor) Execute(ctx context.Context, c command.Command) (*command.Result, error) {
	m.Commands = append(m.Commands, c)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &command.Result{ExitCode: 0}, nil
}

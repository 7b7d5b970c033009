// Package command wraps external process execution behind an interface so
// the release workflow can be tested without spawning shells.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means inherit.
	Dir string
	// Env holds KEY=VALUE pairs appended to the parent environment.
	Env []string
}

// Result captures the outcome of a completed process.
type Result struct {
	// Output is the combined stdout and stderr.
	Output string
	// ExitCode is the process exit status; 0 on success.
	ExitCode int
}

// Executor runs commands. The error return covers failures to run at all
// (binary missing, context cancelled); a process that starts and exits
// non-zero is reported through Result.ExitCode with a nil error.
type Executor interface {
	Execute(ctx context.Context, cmd Command) (*Result, error)
}

// RealExecutor runs commands with os/exec. When Stdout or Stderr are set,
// output is streamed there in addition to being captured in the Result.
type RealExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewRealExecutor returns an Executor writing through to the process
// streams.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e *RealExecutor) Execute(ctx context.Context, c Command) (*Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.Env...)

	var buf bytes.Buffer
	cmd.Stdout = e.tee(e.Stdout, &buf)
	cmd.Stderr = e.tee(e.Stderr, &buf)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{Output: buf.String(), ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("running %s: %w", c.Name, err)
	}

	return &Result{Output: buf.String(), ExitCode: 0}, nil
}

func (e *RealExecutor) tee(w io.Writer, buf *bytes.Buffer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(w, buf)
}

// Shell builds a Command that runs line through the system shell.
func Shell(line string) Command {
	return Command{Name: "sh", Args: []string{"-c", line}}
}

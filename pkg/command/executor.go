//go:generate mockgen -destination=./mocks/executor.go . Executor

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Executor starts an external process and returns its combined stdout and stderr.
// A process that ran and exited non-zero is not an error: callers classify the output.
// The returned error is reserved for processes that could not be run at all or were
// killed by a signal.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ErrSignaled is returned when a process did not exit on its own.
var ErrSignaled = errors.New("process terminated by signal")

// LocalExecutor runs processes on the local machine with an argument vector, never
// through a shell.
type LocalExecutor struct {
	// Env is appended to the current process environment.
	Env []string
}

// NewLocalExecutor creates an executor that forces the C locale so the pulp tools
// print the English messages the success patterns expect.
func NewLocalExecutor() *LocalExecutor {
	return &LocalExecutor{Env: []string{"LC_ALL=C"}}
}

// Run executes name with args and waits for it to finish.
func (e *LocalExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			// ExitCode is -1 when the process was terminated by a signal.
			if exitErr.ExitCode() == -1 {
				return string(out), fmt.Errorf("%w: %s", ErrSignaled, exitErr)
			}
			return string(out), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return string(out), ctxErr
		}
		return string(out), err
	}
	return string(out), nil
}

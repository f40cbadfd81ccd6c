package command

import (
	"context"
	"time"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// Runner executes commands through an Executor and checks their output.
type Runner struct {
	Executor Executor
	// Timeout bounds each invocation when positive.
	Timeout time.Duration
}

// NewRunner creates a runner. A zero timeout leaves invocations unbounded.
func NewRunner(executor Executor, timeout time.Duration) *Runner {
	return &Runner{Executor: executor, Timeout: timeout}
}

// Run executes cmd and returns its raw combined output.
func (r *Runner) Run(ctx context.Context, cmd *Command) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	logger.Debug("Running command", logger.Fields{"command": cmd.String()})
	start := time.Now()

	out, err := r.Executor.Run(ctx, cmd.Binary, cmd.Argv()...)
	if err != nil {
		return out, &errors.ExecutionError{Command: cmd.String(), Err: err}
	}

	logger.Debug("Command finished", logger.Fields{
		"command":  cmd.Binary,
		"duration": time.Since(start).String(),
		"bytes":    len(out),
	})
	return out, nil
}

// Expect runs cmd and classifies its output as the given operation on id.
func (r *Runner) Expect(ctx context.Context, op Operation, id string, cmd *Command) (string, error) {
	out, err := r.Run(ctx, cmd)
	if err != nil {
		return out, err
	}
	if err := op.Classify(id, out); err != nil {
		logger.Debug("Unexpected command output", logger.Fields{"operation": op.String(), "output": out})
		return out, err
	}
	return out, nil
}

package hooks

import (
	"fmt"

	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// Common hook errors.
var (
	// ErrHookTypeEmpty is returned when a hook type is empty.
	ErrHookTypeEmpty = fmt.Errorf("hook type cannot be empty")

	// ErrHookExecution is returned when a hook fails to run.
	ErrHookExecution = errors.ErrHookExecution

	// ErrHookScript is returned when a hook script sets err.
	ErrHookScript = errors.ErrHookScript

	// ErrHookLoad is returned when a hook cannot be loaded.
	ErrHookLoad = fmt.Errorf("failed to load hook")
)

// ErrUnsupportedHookType is returned for a hook type other than pre-apply or post-apply.
func ErrUnsupportedHookType(hookType string) error {
	return errors.Wrapf(ErrHookLoad, "unsupported hook type: %s", hookType)
}

package hooks

//go:generate mockgen -destination=./mocks/manager.go . HookManager

// HookManager defines the interface for managing hooks.
type HookManager interface {
	// Execute runs the hook of the given type, if any.
	Execute(hookType HookType, ctx HookContext) error

	// AddHook adds or replaces a hook.
	AddHook(hook Hook) error

	// HasHook checks whether a hook of the given type exists.
	HasHook(hookType HookType) bool
}

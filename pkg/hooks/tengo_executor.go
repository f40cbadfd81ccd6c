package hooks

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// TengoExecutor handles the execution of Tengo scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

// Execute runs the script of the given type with the resource variables bound:
// runID, kind, resourceID, repoType, ensure, dryRun, changed and actions, plus Vars.
// err is predeclared; a script fails the hook by assigning it an error or a
// non-empty string.
func (e *TengoExecutor) Execute(hookType HookType, ctx HookContext) error {
	e.mutex.RLock()
	defer e.mutex.RUnlock()

	script, exists := e.scripts[hookType]
	if !exists {
		return nil
	}

	scriptInstance := tengo.NewScript([]byte(script))
	scriptInstance.SetImports(stdlib.GetModuleMap("fmt", "os", "strings", "text", "time"))

	actions := make([]interface{}, 0, len(ctx.Actions))
	for _, a := range ctx.Actions {
		actions = append(actions, a)
	}

	vars := []struct {
		name  string
		value interface{}
	}{
		{"runID", ctx.RunID},
		{"kind", ctx.Kind},
		{"resourceID", ctx.ResourceID},
		{"repoType", ctx.RepoType},
		{"ensure", ctx.Ensure},
		{"dryRun", ctx.DryRun},
		{"changed", ctx.Changed},
		{"actions", actions},
		{"err", ""},
	}
	for _, v := range vars {
		if err := scriptInstance.Add(v.name, v.value); err != nil {
			return fmt.Errorf("failed to add %s to script: %w", v.name, err)
		}
	}
	for k, v := range ctx.Vars {
		if err := scriptInstance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable '%s' to script: %w", k, err)
		}
	}

	compiled, err := scriptInstance.Run()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, ErrHookExecution, err)
	}

	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%s: %w: %w", hookType, ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%s: %w: %s", hookType, ErrHookScript, v)
			}
		}
	}

	return nil
}

// AddScript adds or updates a script for the specified hook type.
func (e *TengoExecutor) AddScript(hookType HookType, script string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
}

// HasScript checks if a script exists for the specified hook type.
func (e *TengoExecutor) HasScript(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}

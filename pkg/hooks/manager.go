package hooks

// hookManager keeps hooks in a TengoExecutor.
type hookManager struct {
	executor *TengoExecutor
}

// NewHookManager creates an empty hook manager.
func NewHookManager() HookManager {
	return &hookManager{executor: NewTengoExecutor()}
}

func (m *hookManager) Execute(hookType HookType, ctx HookContext) error {
	return m.executor.Execute(hookType, ctx)
}

func (m *hookManager) AddHook(hook Hook) error {
	if hook.Type == "" {
		return ErrHookTypeEmpty
	}
	if !hook.Type.Valid() {
		return ErrUnsupportedHookType(string(hook.Type))
	}
	m.executor.AddScript(hook.Type, hook.Content)
	return nil
}

func (m *hookManager) HasHook(hookType HookType) bool {
	return m.executor.HasScript(hookType)
}

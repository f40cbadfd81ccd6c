package hooks

// HookType is the point of an apply pass at which a hook runs.
type HookType string

// Supported hook types.
const (
	PreApply  HookType = "pre-apply"
	PostApply HookType = "post-apply"
)

// Types lists the supported hook types in execution order.
var Types = []HookType{PreApply, PostApply}

// Valid reports whether t is a supported hook type.
func (t HookType) Valid() bool {
	return t == PreApply || t == PostApply
}

// Hook is a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext describes the resource a hook runs for. Changed and Actions are only
// meaningful for post-apply hooks.
type HookContext struct {
	RunID      string
	Kind       string
	ResourceID string
	RepoType   string
	Ensure     string
	DryRun     bool
	Changed    bool
	Actions    []string
	Vars       map[string]interface{}
}

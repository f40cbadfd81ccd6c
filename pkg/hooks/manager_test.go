package hooks_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHookManager(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NotNil(t, manager, "NewHookManager should return a non-nil manager")
}

func TestAddAndExecuteHook(t *testing.T) {
	manager := hooks.NewHookManager()
	ctx := hooks.HookContext{
		Kind:       "repository",
		ResourceID: "repo1",
		Vars: map[string]interface{}{
			"testVar": "testValue",
		},
	}

	tests := []struct {
		name          string
		hook          hooks.Hook
		expectedError string
	}{
		{
			name: "valid hook",
			hook: hooks.Hook{
				Type:    hooks.PreApply,
				Content: `// Simple hook that doesn't return anything`,
			},
		},
		{
			name: "empty hook type",
			hook: hooks.Hook{
				Type:    "",
				Content: "test content",
			},
			expectedError: hooks.ErrHookTypeEmpty.Error(),
		},
		{
			name: "unsupported hook type",
			hook: hooks.Hook{
				Type:    "pre-install",
				Content: "test content",
			},
			expectedError: "unsupported hook type: pre-install",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := manager.AddHook(testCase.hook)
			if testCase.expectedError != "" {
				require.Error(t, err)
				assert.True(t, strings.Contains(err.Error(), testCase.expectedError), "got %v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}

	err := manager.Execute(hooks.PreApply, ctx)
	require.NoError(t, err, "Execute should not return an error for valid hook")
}

func TestHasHook(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.False(t, manager.HasHook(hooks.PostApply))

	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostApply, Content: `// Test hook`}))
	assert.True(t, manager.HasHook(hooks.PostApply))
	assert.False(t, manager.HasHook(hooks.PreApply))
}

func TestLoadHooksFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-apply.tengo"), []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-install.tengo"), []byte(`x := 1`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(`docs`), 0o644))

	manager := hooks.NewHookManager()
	require.NoError(t, hooks.LoadHooksFromDir(manager, dir))

	assert.True(t, manager.HasHook(hooks.PreApply))
	assert.False(t, manager.HasHook(hooks.PostApply))

	require.NoError(t, hooks.LoadHooksFromDir(manager, filepath.Join(dir, "missing")))
}

func TestLoadHook(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "guard.tengo"), []byte(`err = "from file"`), 0o644))

	t.Run("relative file", func(t *testing.T) {
		manager := hooks.NewHookManager()
		require.NoError(t, hooks.LoadHook(manager, hooks.PreApply, "guard.tengo", dir))

		err := manager.Execute(hooks.PreApply, hooks.HookContext{})
		assert.ErrorIs(t, err, errors.ErrHookScript)
		assert.Contains(t, err.Error(), "from file")
	})

	t.Run("inline script", func(t *testing.T) {
		manager := hooks.NewHookManager()
		require.NoError(t, hooks.LoadHook(manager, hooks.PostApply, "x := 1\ny := x + 1", dir))
		assert.True(t, manager.HasHook(hooks.PostApply))
	})

	t.Run("empty source", func(t *testing.T) {
		manager := hooks.NewHookManager()
		require.NoError(t, hooks.LoadHook(manager, hooks.PostApply, "  ", dir))
		assert.False(t, manager.HasHook(hooks.PostApply))
	})

	t.Run("missing file", func(t *testing.T) {
		manager := hooks.NewHookManager()
		err := hooks.LoadHook(manager, hooks.PreApply, "missing.tengo", dir)
		assert.ErrorIs(t, err, hooks.ErrHookLoad)
	})
}

func TestHookTemplate(t *testing.T) {
	tests := []struct {
		name     string
		hookType hooks.HookType
		expected string
	}{
		{"PreApply", hooks.PreApply, "Pre-apply hook"},
		{"PostApply", hooks.PostApply, "Post-apply hook"},
		{"Unknown", hooks.HookType("unknown"), "Unknown hook type"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Contains(t, hooks.HookTemplate(tc.hookType), tc.expected)
		})
	}
}

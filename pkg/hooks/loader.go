package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// HookFileExtension is the extension of hook script files.
const HookFileExtension = ".tengo"

// LoadHooksFromDir adds every <hook-type>.tengo file found in dir. Other files are
// ignored. A missing directory is not an error.
func LoadHooksFromDir(manager HookManager, dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read hooks directory %s", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != HookFileExtension {
			continue
		}

		hookType := HookType(strings.TrimSuffix(entry.Name(), HookFileExtension))
		if !hookType.Valid() {
			continue
		}

		hookPath := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(hookPath)
		if err != nil {
			return errors.Wrapf(err, "error reading hook file %s", hookPath)
		}

		if err := manager.AddHook(Hook{Type: hookType, Content: string(content)}); err != nil {
			return errors.Wrapf(err, "error adding hook %s", hookType)
		}
	}

	return nil
}

// LoadHook adds a hook from source: a path to a .tengo file, resolved against baseDir
// when relative, or an inline script. An empty source adds nothing.
func LoadHook(manager HookManager, hookType HookType, source, baseDir string) error {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil
	}

	content := source
	if !strings.Contains(source, "\n") && filepath.Ext(source) == HookFileExtension {
		path := source
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(ErrHookLoad, "%s: %v", path, err)
		}
		content = string(data)
	}

	return manager.AddHook(Hook{Type: hookType, Content: content})
}

// HookTemplate generates a template for a hook script.
func HookTemplate(hookType HookType) string {
	switch hookType {
	case PreApply:
		return `// Pre-apply hook
// This script runs before a resource is reconciled.
// Available variables:
// - runID: string - id of the apply pass
// - kind: string - "repository" or "consumer"
// - resourceID: string - id of the resource
// - repoType: string - rpm or puppet, empty for consumers
// - ensure: string - present or absent
// - dryRun: bool - true when nothing will be changed
// Set err to a string or error to abort the pass.

// Example: refuse to remove production repositories
/*
text := import("text")
if ensure == "absent" && text.has_prefix(resourceID, "prod-") {
    err = "refusing to remove " + resourceID
}
*/`

	case PostApply:
		return `// Post-apply hook
// This script runs after a resource was reconciled.
// Available variables: same as pre-apply, plus
// - changed: bool - whether anything was changed
// - actions: array - the actions taken, e.g. "create" or "set feed"

// Example: print what happened
/*
fmt := import("fmt")
if changed {
    fmt.println(resourceID, actions)
}
*/`

	default:
		return "// Unknown hook type: " + string(hookType)
	}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/fsutil"
	"github.com/glorpus-work/pulpctl/pkg/hooks"
	"github.com/spf13/cobra"
)

// NewHookCmd creates the hook command with subcommands.
func NewHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Work with apply hook scripts",
	}

	cmd.AddCommand(newHookTemplateCmd())
	return cmd
}

func newHookTemplateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "template TYPE",
		Short:     "Print a starting point for a hook script",
		Long:      "Print a tengo hook template for pre-apply or post-apply, or write it into a hooks directory",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(hooks.PreApply), string(hooks.PostApply)},
		RunE: func(cmd *cobra.Command, args []string) error {
			hookType := hooks.HookType(args[0])
			if !hookType.Valid() {
				return hooks.ErrUnsupportedHookType(args[0])
			}

			content := hooks.HookTemplate(hookType) + "\n"
			if dir == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := filepath.Join(dir, string(hookType)+".tengo")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("hook already exists: %s", path)
			}
			if err := fsutil.EnsureDir(dir); err != nil {
				return fmt.Errorf("failed to create hooks directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(content), fsutil.FileModeDefault); err != nil {
				return fmt.Errorf("failed to write hook: %w", err)
			}
			logger.Success("Hook template written", logger.Fields{"path": path})
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Write <TYPE>.tengo into this hooks directory instead of printing")
	return cmd
}

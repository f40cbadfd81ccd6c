package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/manifest"
	"github.com/glorpus-work/pulpctl/pkg/orchestrator"
	"github.com/spf13/cobra"
)

// NewApplyCmd creates the apply command.
func NewApplyCmd() *cobra.Command {
	var (
		file   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "apply -f FILE",
		Short: "Converge repositories and consumers to a manifest",
		Long: `Read a manifest and make the pulp server match it in a single pass:
repositories first, then consumers. The first failure stops the pass.
With --dry-run nothing is changed and the planned actions are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runApply(cmd, file, dryRun)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Manifest file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report planned actions without changing anything")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runApply(cmd *cobra.Command, file string, dryRun bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m, err := manifest.Load(file)
	if err != nil {
		return err
	}
	m.ApplyDefaults(resourceDefaults(cfg))
	if err := m.Validate(); err != nil {
		return err
	}

	orch := &orchestrator.Orchestrator{
		Sessions: orchestrator.NewPulpSessions(newRunner(cfg), pulpOptions(cfg)),
		Hooks: orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
			logger.Debug("Apply event", logger.Fields{"phase": e.Phase, "resource": e.ID, "msg": e.Msg})
		}},
	}

	report, applyErr := orch.Apply(cmd.Context(), m, orchestrator.Options{DryRun: dryRun})
	if report != nil {
		if err := render(cmd.OutOrStdout(), cfg, report, func(w io.Writer) error {
			return writeSummary(w, report, newStyles(cfg.Settings.ColorOutput))
		}); err != nil {
			return err
		}
	}
	return applyErr
}

// writeSummary prints one line per resource and a closing count.
func writeSummary(w io.Writer, report *orchestrator.Report, st styles) error {
	for _, res := range report.Resources {
		name := res.Kind + " " + res.ID
		if res.RepoType != "" {
			name = fmt.Sprintf("%s %s/%s", res.Kind, res.RepoType, res.ID)
		}

		var status string
		switch {
		case res.Error != "":
			status = st.failed.Render("failed")
		case res.Changed && report.DryRun:
			status = st.changed.Render("would change")
		case res.Changed:
			status = st.changed.Render("changed")
		default:
			status = st.ok.Render("ok")
		}

		line := fmt.Sprintf("%s: %s", st.header.Render(name), status)
		if len(res.Actions) > 0 {
			line += " " + st.muted.Render("("+strings.Join(res.Actions, ", ")+")")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if res.Error != "" {
			_, _ = fmt.Fprintln(w, "  "+st.failed.Render(res.Error))
		}
	}

	verb := "changed"
	if report.DryRun {
		verb = "to change"
	}
	stopped := ""
	if report.Failed() {
		stopped = ", " + st.failed.Render("stopped on failure")
	}
	_, err := fmt.Fprintf(w, "%d resources, %d %s%s (run %s)\n", len(report.Resources), report.Changed(), verb, stopped, report.RunID)
	return err
}

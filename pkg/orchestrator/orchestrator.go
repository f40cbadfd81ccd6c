package orchestrator

import (
	"context"
	"fmt"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/hooks"
	"github.com/glorpus-work/pulpctl/pkg/manifest"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/google/uuid"
)

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// step is one resource of a pass, reduced to what the apply loop needs.
type step struct {
	result ResourceResult
	hooks  resource.Hooks
	run    func(ctx context.Context, dryRun bool) (changed bool, actions []string, err error)
}

// Apply reconciles every resource of m in order: repositories first, then consumers.
// The first failing resource or hook aborts the pass; the report covers every resource
// handled up to and including the failing one. m must already be validated.
func (o *Orchestrator) Apply(ctx context.Context, m *manifest.Manifest, opts Options) (*Report, error) {
	if o.Sessions == nil {
		return nil, fmt.Errorf("session factory is not configured")
	}

	report := &Report{RunID: uuid.NewString(), DryRun: opts.DryRun, Resources: []ResourceResult{}}
	runFields := logger.Fields{"run_id": report.RunID, "dry_run": opts.DryRun}
	logger.Info("Starting apply", runFields)

	for _, s := range o.steps(m) {
		res, err := o.applyStep(ctx, m, s, report.RunID, opts)
		report.Resources = append(report.Resources, res)
		if err != nil {
			emit(o.Hooks, Event{Phase: "error", ID: stepID(res), Msg: err.Error()})
			logger.Error("Apply aborted", logger.Fields{"run_id": report.RunID, "resource": stepID(res), "error": err.Error()})
			return report, err
		}
	}

	emit(o.Hooks, Event{Phase: "done", Msg: fmt.Sprintf("%d changed", report.Changed())})
	logger.Info("Apply finished", logger.Fields{"run_id": report.RunID, "resources": len(report.Resources), "changed": report.Changed()})
	return report, nil
}

func (o *Orchestrator) steps(m *manifest.Manifest) []step {
	steps := make([]step, 0, len(m.Repositories)+len(m.Consumers))

	for _, r := range m.Repositories {
		steps = append(steps, step{
			result: ResourceResult{Kind: resource.KindRepository, ID: r.ID, RepoType: r.RepoType, Ensure: r.Ensure},
			hooks:  r.Hooks,
			run: func(ctx context.Context, dryRun bool) (bool, []string, error) {
				rec := o.Sessions.Repositories(r.Credentials())
				if dryRun {
					res, err := rec.Plan(ctx, r.Desired())
					return res.Changed, res.Actions, err
				}
				res, err := rec.Ensure(ctx, r.Desired())
				return res.Changed, res.Actions, err
			},
		})
	}

	for _, c := range m.Consumers {
		steps = append(steps, step{
			result: ResourceResult{Kind: resource.KindConsumer, ID: c.ID, Ensure: c.Ensure},
			hooks:  c.Hooks,
			run: func(ctx context.Context, dryRun bool) (bool, []string, error) {
				rec := o.Sessions.Consumers(c.Credentials())
				if dryRun {
					res, err := rec.Plan(ctx, c.ID, c.Ensure)
					return res.Changed, res.Actions, err
				}
				res, err := rec.Ensure(ctx, c.ID, c.Ensure)
				return res.Changed, res.Actions, err
			},
		})
	}

	return steps
}

func (o *Orchestrator) applyStep(ctx context.Context, m *manifest.Manifest, s step, runID string, opts Options) (ResourceResult, error) {
	res := s.result
	id := stepID(res)

	manager, err := loadHooks(m, s.hooks)
	if err != nil {
		res.Error = err.Error()
		return res, err
	}

	hookCtx := hooks.HookContext{
		RunID:      runID,
		Kind:       res.Kind,
		ResourceID: res.ID,
		RepoType:   res.RepoType,
		Ensure:     string(res.Ensure),
		DryRun:     opts.DryRun,
	}

	if manager.HasHook(hooks.PreApply) {
		emit(o.Hooks, Event{Phase: "hook", ID: id, Msg: string(hooks.PreApply)})
		if err := manager.Execute(hooks.PreApply, hookCtx); err != nil {
			res.Error = err.Error()
			return res, err
		}
	}

	phase := "applying"
	if opts.DryRun {
		phase = "planning"
	}
	emit(o.Hooks, Event{Phase: phase, ID: id, Msg: string(res.Ensure)})

	changed, actions, err := s.run(ctx, opts.DryRun)
	res.Changed, res.Actions = changed, actions
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	logger.Debug("Resource reconciled", logger.Fields{"run_id": runID, "resource": id, "changed": changed, "actions": actions})

	if manager.HasHook(hooks.PostApply) {
		hookCtx.Changed, hookCtx.Actions = changed, actions
		emit(o.Hooks, Event{Phase: "hook", ID: id, Msg: string(hooks.PostApply)})
		if err := manager.Execute(hooks.PostApply, hookCtx); err != nil {
			res.Error = err.Error()
			return res, err
		}
	}

	return res, nil
}

// loadHooks collects the manifest-wide hooks and lets the resource's own hooks replace them.
func loadHooks(m *manifest.Manifest, own resource.Hooks) (hooks.HookManager, error) {
	manager := hooks.NewHookManager()
	if dir := m.HooksPath(); dir != "" {
		if err := hooks.LoadHooksFromDir(manager, dir); err != nil {
			return nil, err
		}
	}
	if err := hooks.LoadHook(manager, hooks.PreApply, own.PreApply, m.BaseDir); err != nil {
		return nil, err
	}
	if err := hooks.LoadHook(manager, hooks.PostApply, own.PostApply, m.BaseDir); err != nil {
		return nil, err
	}
	return manager, nil
}

func stepID(r ResourceResult) string {
	if r.RepoType != "" {
		return fmt.Sprintf("%s[%s/%s]", r.Kind, r.RepoType, r.ID)
	}
	return fmt.Sprintf("%s[%s]", r.Kind, r.ID)
}

//go:generate mockgen -destination=./mocks/orchestrator.go . RepositoryReconciler,ConsumerReconciler,SessionFactory

package orchestrator

import (
	"context"

	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/consumer"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/repository"
)

// RepositoryReconciler is the subset of the repository reconciler used by the orchestrator.
type RepositoryReconciler interface {
	Ensure(ctx context.Context, d repository.Desired) (repository.Result, error)
	Plan(ctx context.Context, d repository.Desired) (repository.Result, error)
}

// ConsumerReconciler is the subset of the consumer reconciler used by the orchestrator.
type ConsumerReconciler interface {
	Ensure(ctx context.Context, id string, ensure pulp.Ensure) (consumer.Result, error)
	Plan(ctx context.Context, id string, ensure pulp.Ensure) (consumer.Result, error)
}

// SessionFactory hands out reconcilers bound to a set of credentials.
type SessionFactory interface {
	Repositories(creds auth.Credentials) RepositoryReconciler
	Consumers(creds auth.Credentials) ConsumerReconciler
}

// Orchestrator applies manifests through the reconcilers.
type Orchestrator struct {
	Sessions SessionFactory
	Hooks    Hooks // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // planning|applying|hook|done|error
	ID    string // resource, e.g. "repository[rpm/base]"
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control orchestrator execution.
type Options struct {
	// DryRun plans every resource without changing anything.
	DryRun bool
}

// ResourceResult is the outcome for one resource.
type ResourceResult struct {
	Kind     string      `json:"kind" yaml:"kind"`
	ID       string      `json:"id" yaml:"id"`
	RepoType string      `json:"repo_type,omitempty" yaml:"repo_type,omitempty"`
	Ensure   pulp.Ensure `json:"ensure" yaml:"ensure"`
	Changed  bool        `json:"changed" yaml:"changed"`
	Actions  []string    `json:"actions,omitempty" yaml:"actions,omitempty"`
	Error    string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report summarises one apply pass.
type Report struct {
	RunID     string           `json:"run_id" yaml:"run_id"`
	DryRun    bool             `json:"dry_run" yaml:"dry_run"`
	Resources []ResourceResult `json:"resources" yaml:"resources"`
}

// Changed returns the number of resources that changed, or would change in a dry run.
func (r *Report) Changed() int {
	n := 0
	for _, res := range r.Resources {
		if res.Changed {
			n++
		}
	}
	return n
}

// Failed reports whether the pass stopped on an error.
func (r *Report) Failed() bool {
	for _, res := range r.Resources {
		if res.Error != "" {
			return true
		}
	}
	return false
}

// Package consumer reconciles the registration of this node as a Pulp consumer.
package consumer

import (
	"context"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
)

//go:generate mockgen -destination=./mocks/admin.go . Admin

// Admin is the consumer side of a pulp.Admin session.
type Admin interface {
	RegisterConsumer(ctx context.Context, id string) error
	UnregisterConsumer(ctx context.Context) error
	Consumer(ctx context.Context) (*pulp.ConsumerRecord, error)
}

// Result describes what a reconciliation did, or would do in a plan.
type Result struct {
	Changed bool     `json:"changed" yaml:"changed"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

// Reconciler manages the single consumer identity of this node.
type Reconciler struct {
	admin Admin
}

// NewReconciler creates a reconciler on top of admin.
func NewReconciler(admin Admin) *Reconciler {
	return &Reconciler{admin: admin}
}

// Register registers this node as id.
func (r *Reconciler) Register(ctx context.Context, id string) error {
	if err := r.admin.RegisterConsumer(ctx, id); err != nil {
		return err
	}
	logger.Info("Registered consumer", logger.Fields{"consumer_id": id})
	return nil
}

// Unregister removes the current registration.
func (r *Reconciler) Unregister(ctx context.Context) error {
	if err := r.admin.UnregisterConsumer(ctx); err != nil {
		return err
	}
	logger.Info("Unregistered consumer")
	return nil
}

// Current returns the registered consumer or nil.
func (r *Reconciler) Current(ctx context.Context) (*pulp.ConsumerRecord, error) {
	return r.admin.Consumer(ctx)
}

// Exists reports whether this node is registered as id. A registration under any
// other id does not count.
func (r *Reconciler) Exists(ctx context.Context, id string) (bool, error) {
	current, err := r.Current(ctx)
	if err != nil {
		return false, err
	}
	return current != nil && current.ID == id, nil
}

// Ensure registers or unregisters this node so that its registration matches ensure.
func (r *Reconciler) Ensure(ctx context.Context, id string, ensure pulp.Ensure) (Result, error) {
	return r.reconcile(ctx, id, ensure, true)
}

// Plan reports what Ensure would do without changing anything.
func (r *Reconciler) Plan(ctx context.Context, id string, ensure pulp.Ensure) (Result, error) {
	return r.reconcile(ctx, id, ensure, false)
}

func (r *Reconciler) reconcile(ctx context.Context, id string, ensure pulp.Ensure, apply bool) (Result, error) {
	var res Result

	exists, err := r.Exists(ctx, id)
	if err != nil {
		return res, err
	}

	switch {
	case ensure == pulp.EnsureAbsent && exists:
		res = Result{Changed: true, Actions: []string{"unregister"}}
		if apply {
			return res, r.Unregister(ctx)
		}
	case ensure != pulp.EnsureAbsent && !exists:
		res = Result{Changed: true, Actions: []string{"register"}}
		if apply {
			return res, r.Register(ctx, id)
		}
	default:
		logger.Debug("Consumer in sync", logger.Fields{"consumer_id": id, "ensure": string(ensure)})
	}
	return res, nil
}

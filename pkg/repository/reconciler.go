// Package repository reconciles Pulp repositories towards a desired state.
//
// Every operation reads fresh state from the server; nothing is cached between calls.
// Multi-step operations (create with schedules, schedule replacement) are not atomic:
// the first failing step aborts and earlier steps stay applied.
package repository

import (
	"context"
	"maps"
	"slices"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
)

// Reconciler drives one Admin session.
type Reconciler struct {
	admin Admin
}

// NewReconciler creates a reconciler on top of admin.
func NewReconciler(admin Admin) *Reconciler {
	return &Reconciler{admin: admin}
}

// Exists reports whether a repository with id exists in the repoType namespace.
func (r *Reconciler) Exists(ctx context.Context, id, repoType string) (bool, error) {
	repos, err := r.admin.Repos(ctx, repoType)
	if err != nil {
		return false, err
	}
	_, ok := repos[id]
	return ok, nil
}

// Read returns the current state of a repository.
func (r *Reconciler) Read(ctx context.Context, id, repoType string) (*pulp.RepositoryRecord, error) {
	repos, err := r.admin.Repos(ctx, repoType)
	if err != nil {
		return nil, err
	}
	rec, ok := repos[id]
	if !ok {
		return nil, errors.ErrRepositoryNotFoundWithID(id, repoType)
	}
	return rec, nil
}

// Create creates the repository with every set field, then adds its schedules in order.
// A failing schedule leaves the repository created.
func (r *Reconciler) Create(ctx context.Context, d Desired) error {
	if err := r.admin.CreateRepo(ctx, d.ID, d.RepoType, d.Fields()); err != nil {
		return err
	}
	logger.Info("Created repository", logger.Fields{"repo_id": d.ID, "repo_type": d.RepoType})

	for _, schedule := range d.Schedules {
		if err := r.admin.CreateSchedule(ctx, d.ID, d.RepoType, schedule); err != nil {
			return err
		}
	}
	return nil
}

// Destroy deletes a repository.
func (r *Reconciler) Destroy(ctx context.Context, id, repoType string) error {
	if err := r.admin.DeleteRepo(ctx, id, repoType); err != nil {
		return err
	}
	logger.Info("Deleted repository", logger.Fields{"repo_id": id, "repo_type": repoType})
	return nil
}

// SetDisplayName updates the display name.
func (r *Reconciler) SetDisplayName(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{DisplayName: &value})
}

// SetDescription updates the description.
func (r *Reconciler) SetDescription(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{Description: &value})
}

// SetFeed updates the feed URL.
func (r *Reconciler) SetFeed(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{Feed: &value})
}

// SetServeHTTP toggles publishing over http.
func (r *Reconciler) SetServeHTTP(ctx context.Context, id, repoType string, value bool) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{ServeHTTP: &value})
}

// SetServeHTTPS toggles publishing over https.
func (r *Reconciler) SetServeHTTPS(ctx context.Context, id, repoType string, value bool) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{ServeHTTPS: &value})
}

// SetRelativeURL updates the path the repository is published under.
func (r *Reconciler) SetRelativeURL(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{RelativeURL: &value})
}

// SetFeedCert updates the client certificate used against the feed.
func (r *Reconciler) SetFeedCert(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{FeedCert: &value})
}

// SetFeedKey updates the client key used against the feed.
func (r *Reconciler) SetFeedKey(ctx context.Context, id, repoType, value string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{FeedKey: &value})
}

// SetQueries replaces the feed queries.
func (r *Reconciler) SetQueries(ctx context.Context, id, repoType string, queries []string) error {
	if queries == nil {
		queries = []string{}
	}
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{Queries: queries})
}

// SetNotes replaces the notes as a whole.
func (r *Reconciler) SetNotes(ctx context.Context, id, repoType string, notes map[string]string) error {
	return r.admin.UpdateRepo(ctx, id, repoType, pulp.RepoFields{Notes: notes})
}

// SetSchedules deletes every existing sync schedule and creates the given ones.
func (r *Reconciler) SetSchedules(ctx context.Context, id, repoType string, schedules []string) error {
	existing, err := r.admin.Schedules(ctx, id, repoType)
	if err != nil {
		return err
	}
	for _, scheduleID := range existing {
		if err := r.admin.DeleteSchedule(ctx, id, repoType, scheduleID); err != nil {
			return err
		}
	}
	for _, schedule := range schedules {
		if err := r.admin.CreateSchedule(ctx, id, repoType, schedule); err != nil {
			return err
		}
	}
	return nil
}

// Ensure converges the repository towards d.
func (r *Reconciler) Ensure(ctx context.Context, d Desired) (Result, error) {
	return r.reconcile(ctx, d, true)
}

// Plan reports what Ensure would do without changing anything.
func (r *Reconciler) Plan(ctx context.Context, d Desired) (Result, error) {
	return r.reconcile(ctx, d, false)
}

type propertyChange struct {
	name  string
	apply func(ctx context.Context) error
}

func (r *Reconciler) reconcile(ctx context.Context, d Desired, apply bool) (Result, error) {
	var res Result
	fields := logger.Fields{"repo_id": d.ID, "repo_type": d.RepoType}

	current, err := r.Read(ctx, d.ID, d.RepoType)
	if err != nil && !errors.Is(err, errors.ErrRepositoryNotFound) {
		return res, err
	}

	if d.Ensure == pulp.EnsureAbsent {
		if current == nil {
			logger.Debug("Repository already absent", fields)
			return res, nil
		}
		res.add("destroy")
		if apply {
			return res, r.Destroy(ctx, d.ID, d.RepoType)
		}
		return res, nil
	}

	if current == nil {
		res.add("create")
		if apply {
			return res, r.Create(ctx, d)
		}
		return res, nil
	}

	for _, change := range r.changes(d, current) {
		res.add("set " + change.name)
		if !apply {
			continue
		}
		logger.Debug("Updating repository property", logger.Fields{"repo_id": d.ID, "property": change.name})
		if err := change.apply(ctx); err != nil {
			return res, err
		}
	}

	if !res.Changed {
		logger.Debug("Repository in sync", fields)
	}
	return res, nil
}

// changes lists the managed properties whose current value differs from d, in a fixed order.
func (r *Reconciler) changes(d Desired, cur *pulp.RepositoryRecord) []propertyChange {
	id, repoType := d.ID, d.RepoType
	var out []propertyChange

	if d.DisplayName != nil && *d.DisplayName != cur.DisplayName {
		out = append(out, propertyChange{"display_name", func(ctx context.Context) error {
			return r.SetDisplayName(ctx, id, repoType, *d.DisplayName)
		}})
	}
	if d.Description != nil && *d.Description != cur.Description {
		out = append(out, propertyChange{"description", func(ctx context.Context) error {
			return r.SetDescription(ctx, id, repoType, *d.Description)
		}})
	}
	if d.Feed != nil && *d.Feed != cur.Feed {
		out = append(out, propertyChange{"feed", func(ctx context.Context) error {
			return r.SetFeed(ctx, id, repoType, *d.Feed)
		}})
	}
	if d.Notes != nil && !maps.Equal(d.Notes, cur.Notes) {
		out = append(out, propertyChange{"notes", func(ctx context.Context) error {
			return r.SetNotes(ctx, id, repoType, d.Notes)
		}})
	}
	if d.Queries != nil && !slices.Equal(d.Queries, cur.Queries) {
		out = append(out, propertyChange{"queries", func(ctx context.Context) error {
			return r.SetQueries(ctx, id, repoType, d.Queries)
		}})
	}
	if d.Schedules != nil && !sameSet(d.Schedules, cur.Schedules) {
		out = append(out, propertyChange{"schedules", func(ctx context.Context) error {
			return r.SetSchedules(ctx, id, repoType, d.Schedules)
		}})
	}
	if d.ServeHTTP != nil && *d.ServeHTTP != cur.ServeHTTP {
		out = append(out, propertyChange{"serve_http", func(ctx context.Context) error {
			return r.SetServeHTTP(ctx, id, repoType, *d.ServeHTTP)
		}})
	}
	if d.ServeHTTPS != nil && *d.ServeHTTPS != cur.ServeHTTPS {
		out = append(out, propertyChange{"serve_https", func(ctx context.Context) error {
			return r.SetServeHTTPS(ctx, id, repoType, *d.ServeHTTPS)
		}})
	}
	if d.RelativeURL != nil && *d.RelativeURL != cur.RelativeURL {
		out = append(out, propertyChange{"relative_url", func(ctx context.Context) error {
			return r.SetRelativeURL(ctx, id, repoType, *d.RelativeURL)
		}})
	}
	return out
}

// sameSet compares schedules ignoring order; the server does not preserve it.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := slices.Clone(a), slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}

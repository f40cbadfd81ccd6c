package repository

import (
	"context"

	"github.com/glorpus-work/pulpctl/pkg/pulp"
)

//go:generate mockgen -destination=./mocks/admin.go . Admin

// Admin is the subset of a pulp.Admin session the reconciler needs.
type Admin interface {
	Repos(ctx context.Context, repoType string) (map[string]*pulp.RepositoryRecord, error)
	CreateRepo(ctx context.Context, id, repoType string, fields pulp.RepoFields) error
	DeleteRepo(ctx context.Context, id, repoType string) error
	UpdateRepo(ctx context.Context, id, repoType string, fields pulp.RepoFields) error
	Schedules(ctx context.Context, id, repoType string) ([]string, error)
	CreateSchedule(ctx context.Context, id, repoType, schedule string) error
	DeleteSchedule(ctx context.Context, id, repoType, scheduleID string) error
}

// Desired is the wanted state of one repository. Nil fields are not managed.
type Desired struct {
	ID       string
	RepoType string
	Ensure   pulp.Ensure

	DisplayName *string
	Description *string
	Feed        *string
	ServeHTTP   *bool
	ServeHTTPS  *bool
	RelativeURL *string
	// Feed TLS material is only sent on create; the server never reports it back.
	FeedCACert *string
	FeedCert   *string
	FeedKey    *string

	Queries   []string
	Notes     map[string]string
	Schedules []string
}

// Fields returns the create/update fields carried by d. Schedules are not included.
func (d Desired) Fields() pulp.RepoFields {
	return pulp.RepoFields{
		DisplayName: d.DisplayName,
		Description: d.Description,
		Feed:        d.Feed,
		ServeHTTP:   d.ServeHTTP,
		ServeHTTPS:  d.ServeHTTPS,
		RelativeURL: d.RelativeURL,
		FeedCACert:  d.FeedCACert,
		FeedCert:    d.FeedCert,
		FeedKey:     d.FeedKey,
		Queries:     d.Queries,
		Notes:       d.Notes,
	}
}

// Result describes what a reconciliation did, or would do in a plan.
type Result struct {
	Changed bool     `json:"changed" yaml:"changed"`
	Actions []string `json:"actions,omitempty" yaml:"actions,omitempty"`
}

func (r *Result) add(action string) {
	r.Changed = true
	r.Actions = append(r.Actions, action)
}

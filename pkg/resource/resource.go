// Package resource defines the declarative repository and consumer resources read from
// manifests and the command line, with their defaults and validation.
package resource

import (
	"net/url"
	"regexp"

	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/repository"
)

// Resource kinds.
const (
	KindRepository = "repository"
	KindConsumer   = "consumer"
)

// DefaultPassword is used when neither the resource nor the defaults name a password.
const DefaultPassword = "admin"

// Defaults are the values a resource falls back to, typically taken from configuration.
type Defaults struct {
	RepoType    string
	Credentials auth.Credentials
}

func (d Defaults) login() string {
	if d.Credentials.Login != "" {
		return d.Credentials.Login
	}
	return auth.DefaultLogin
}

func (d Defaults) password() string {
	if d.Credentials.Password != "" {
		return d.Credentials.Password
	}
	return DefaultPassword
}

// Resolved returns the credentials used by a resource that names none of its own.
func (d Defaults) Resolved() auth.Credentials {
	return auth.Credentials{Login: d.login(), Password: d.password()}
}

var (
	idPattern          = regexp.MustCompile(`^[A-Za-z0-9.\-_]+$`)
	relativeURLPattern = regexp.MustCompile(`^[A-Za-z0-9.\-_/]+$`)
)

// Hooks are tengo scripts run around the reconciliation of one resource. Each value is
// either a path to a .tengo file or an inline script.
type Hooks struct {
	PreApply  string `yaml:"pre_apply,omitempty" json:"pre_apply,omitempty"`
	PostApply string `yaml:"post_apply,omitempty" json:"post_apply,omitempty"`
}

// Repo is a desired repository.
type Repo struct {
	ID       string      `yaml:"id" json:"id"`
	RepoType string      `yaml:"repo_type,omitempty" json:"repo_type,omitempty"`
	Ensure   pulp.Ensure `yaml:"ensure,omitempty" json:"ensure,omitempty"`

	DisplayName *string           `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	Description *string           `yaml:"description,omitempty" json:"description,omitempty"`
	Feed        *string           `yaml:"feed,omitempty" json:"feed,omitempty"`
	Notes       map[string]string `yaml:"notes,omitempty" json:"notes,omitempty"`
	Queries     []string          `yaml:"queries,omitempty" json:"queries,omitempty"`
	Schedules   []string          `yaml:"schedules,omitempty" json:"schedules,omitempty"`
	ServeHTTP   *bool             `yaml:"serve_http,omitempty" json:"serve_http,omitempty"`
	ServeHTTPS  *bool             `yaml:"serve_https,omitempty" json:"serve_https,omitempty"`
	RelativeURL *string           `yaml:"relative_url,omitempty" json:"relative_url,omitempty"`
	FeedCACert  *string           `yaml:"feed_ca_cert,omitempty" json:"feed_ca_cert,omitempty"`
	FeedCert    *string           `yaml:"feed_cert,omitempty" json:"feed_cert,omitempty"`
	FeedKey     *string           `yaml:"feed_key,omitempty" json:"feed_key,omitempty"`

	// Accepted for compatibility; pulp-admin is never passed these.
	ValidateContent *bool `yaml:"validate,omitempty" json:"validate,omitempty"`
	VerifySSL       *bool `yaml:"verify_ssl,omitempty" json:"verify_ssl,omitempty"`

	Login    string `yaml:"login,omitempty" json:"login,omitempty"`
	Password string `yaml:"password,omitempty" json:"-"`
	Hooks    Hooks  `yaml:"hooks,omitempty" json:"hooks,omitempty"`
}

// Consumer is the desired registration of this node.
type Consumer struct {
	ID       string      `yaml:"id" json:"id"`
	Ensure   pulp.Ensure `yaml:"ensure,omitempty" json:"ensure,omitempty"`
	Login    string      `yaml:"login,omitempty" json:"login,omitempty"`
	Password string      `yaml:"password,omitempty" json:"-"`
	Hooks    Hooks       `yaml:"hooks,omitempty" json:"hooks,omitempty"`
}

// ApplyDefaults fills unset repo type, ensure and credentials. Without a default repo
// type rpm is used.
func (r *Repo) ApplyDefaults(d Defaults) {
	if r.RepoType == "" {
		r.RepoType = d.RepoType
	}
	if r.RepoType == "" {
		r.RepoType = pulp.RepoTypeRPM
	}
	if r.Ensure == "" {
		r.Ensure = pulp.EnsurePresent
	}
	if r.Login == "" {
		r.Login = d.login()
	}
	if r.Password == "" {
		r.Password = d.password()
	}
}

// Validate checks the repository parameters. Call ApplyDefaults first.
func (r *Repo) Validate() error {
	if !idPattern.MatchString(r.ID) {
		return errors.ErrInvalidResourceWithDetails(KindRepository, r.ID, "invalid id")
	}
	if r.RepoType != pulp.RepoTypeRPM && r.RepoType != pulp.RepoTypePuppet {
		return errors.ErrInvalidResourceWithDetails(KindRepository, r.ID, "repo_type must be rpm or puppet, got "+r.RepoType)
	}
	if !r.Ensure.Valid() {
		return errors.ErrInvalidResourceWithDetails(KindRepository, r.ID, "ensure must be present or absent, got "+string(r.Ensure))
	}
	if r.Feed != nil {
		if u, err := url.Parse(*r.Feed); err != nil || !u.IsAbs() {
			return errors.ErrInvalidResourceWithDetails(KindRepository, r.ID, "feed must be an absolute URL")
		}
	}
	if r.RelativeURL != nil && !relativeURLPattern.MatchString(*r.RelativeURL) {
		return errors.ErrInvalidResourceWithDetails(KindRepository, r.ID, "invalid relative_url")
	}
	return errors.Wrapf(r.Credentials().Validate(), "repository[%s]", r.ID)
}

// Desired converts r into reconciler input.
func (r *Repo) Desired() repository.Desired {
	return repository.Desired{
		ID:          r.ID,
		RepoType:    r.RepoType,
		Ensure:      r.Ensure,
		DisplayName: r.DisplayName,
		Description: r.Description,
		Feed:        r.Feed,
		ServeHTTP:   r.ServeHTTP,
		ServeHTTPS:  r.ServeHTTPS,
		RelativeURL: r.RelativeURL,
		FeedCACert:  r.FeedCACert,
		FeedCert:    r.FeedCert,
		FeedKey:     r.FeedKey,
		Queries:     r.Queries,
		Notes:       r.Notes,
		Schedules:   r.Schedules,
	}
}

// Credentials returns the login and password the resource is managed with.
func (r *Repo) Credentials() auth.Credentials {
	return auth.Credentials{Login: r.Login, Password: r.Password}
}

// ApplyDefaults fills unset ensure and credentials.
func (c *Consumer) ApplyDefaults(d Defaults) {
	if c.Ensure == "" {
		c.Ensure = pulp.EnsurePresent
	}
	if c.Login == "" {
		c.Login = d.login()
	}
	if c.Password == "" {
		c.Password = d.password()
	}
}

// Validate checks the consumer parameters. Call ApplyDefaults first.
func (c *Consumer) Validate() error {
	if !idPattern.MatchString(c.ID) {
		return errors.ErrInvalidResourceWithDetails(KindConsumer, c.ID, "invalid id")
	}
	if !c.Ensure.Valid() {
		return errors.ErrInvalidResourceWithDetails(KindConsumer, c.ID, "ensure must be present or absent, got "+string(c.Ensure))
	}
	return errors.Wrapf(c.Credentials().Validate(), "consumer[%s]", c.ID)
}

// Credentials returns the login and password the consumer registers with.
func (c *Consumer) Credentials() auth.Credentials {
	return auth.Credentials{Login: c.Login, Password: c.Password}
}

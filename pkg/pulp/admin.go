// Package pulp drives the pulp-admin and pulp-consumer command-line tools.
//
// An Admin is one session: it logs in at most once, then issues repository and
// consumer commands and turns their text output into records. It holds no other
// state and is not safe for concurrent use.
package pulp

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/glorpus-work/pulpctl/internal/logger"
	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/command"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/parser"
)

// Default tool names, looked up on PATH.
const (
	DefaultAdminBinary    = "pulp-admin"
	DefaultConsumerBinary = "pulp-consumer"
)

// Options selects the tool binaries.
type Options struct {
	AdminBinary    string
	ConsumerBinary string
}

// RepoFields are the repository settings accepted by create and update. A nil field
// is not sent at all.
type RepoFields struct {
	DisplayName *string
	Description *string
	Feed        *string
	ServeHTTP   *bool
	ServeHTTPS  *bool
	RelativeURL *string
	FeedCACert  *string
	FeedCert    *string
	FeedKey     *string
	// Queries only apply to puppet repositories.
	Queries []string
	// Notes replace the repository notes as a whole.
	Notes map[string]string
}

// Admin is a session against the pulp tools.
type Admin struct {
	runner         *command.Runner
	creds          auth.Credentials
	adminBinary    string
	consumerBinary string
	loggedIn       bool
}

// NewAdmin creates a session. Nothing is executed until the first operation.
func NewAdmin(runner *command.Runner, creds auth.Credentials, opts Options) *Admin {
	if opts.AdminBinary == "" {
		opts.AdminBinary = DefaultAdminBinary
	}
	if opts.ConsumerBinary == "" {
		opts.ConsumerBinary = DefaultConsumerBinary
	}
	return &Admin{
		runner:         runner,
		creds:          creds,
		adminBinary:    opts.AdminBinary,
		consumerBinary: opts.ConsumerBinary,
	}
}

// LoggedIn reports whether this session already authenticated.
func (a *Admin) LoggedIn() bool { return a.loggedIn }

// Login authenticates with pulp-admin once per session.
func (a *Admin) Login(ctx context.Context) error {
	if a.loggedIn {
		return nil
	}

	cmd := command.New(a.adminBinary, "login").
		SeparateFlag("-u", a.creds.Login).
		SecretFlag("-p", a.creds.Password)
	if _, err := a.runner.Expect(ctx, command.OpLogin, "", cmd); err != nil {
		return err
	}

	logger.Debug("Logged in to pulp", logger.Fields{"login": a.creds.Login})
	a.loggedIn = true
	return nil
}

// ListRepos returns every repository of repoType in the order the tool printed them.
func (a *Admin) ListRepos(ctx context.Context, repoType string) ([]*RepositoryRecord, error) {
	if err := a.Login(ctx); err != nil {
		return nil, err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "list", "--details")

	out, err := a.runner.Expect(ctx, command.OpListRepos, "", cmd)
	if err != nil {
		return nil, err
	}

	var repos []*RepositoryRecord
	for i, block := range parser.Parse(out) {
		rec := projectRepository(block, repoType)
		if rec == nil {
			logger.Debug("Skipping repository block without an id", logger.Fields{"index": i, "repo_type": repoType})
			continue
		}
		repos = append(repos, rec)
	}
	return repos, nil
}

// Repos returns the repositories of repoType keyed by id.
func (a *Admin) Repos(ctx context.Context, repoType string) (map[string]*RepositoryRecord, error) {
	list, err := a.ListRepos(ctx, repoType)
	if err != nil {
		return nil, err
	}
	repos := make(map[string]*RepositoryRecord, len(list))
	for _, r := range list {
		repos[r.ID] = r
	}
	return repos, nil
}

// CreateRepo issues "repo create" with the given fields. Schedules are separate calls.
func (a *Admin) CreateRepo(ctx context.Context, id, repoType string, fields RepoFields) error {
	if err := a.Login(ctx); err != nil {
		return err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "create").Flag("--repo-id", id)
	fields.appendFlags(cmd)

	_, err := a.runner.Expect(ctx, command.OpCreateRepo, id, cmd)
	return err
}

// DeleteRepo issues "repo delete". An empty repoType omits the type word.
func (a *Admin) DeleteRepo(ctx context.Context, id, repoType string) error {
	if err := a.Login(ctx); err != nil {
		return err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "delete").Flag("--repo-id", id)
	_, err := a.runner.Expect(ctx, command.OpDeleteRepo, id, cmd)
	return err
}

// UpdateRepo issues one "repo update" carrying every non-nil field. The tool's output
// is not checked.
func (a *Admin) UpdateRepo(ctx context.Context, id, repoType string, fields RepoFields) error {
	if err := a.Login(ctx); err != nil {
		return err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "update").Flag("--repo-id", id)
	fields.appendFlags(cmd)

	out, err := a.runner.Expect(ctx, command.OpUpdateRepo, id, cmd)
	if err != nil {
		return err
	}
	logger.Debug("Repository update issued", logger.Fields{"repo_id": id, "output": strings.TrimSpace(out)})
	return nil
}

// Schedules returns the ids of the sync schedules of a repository.
func (a *Admin) Schedules(ctx context.Context, id, repoType string) ([]string, error) {
	if err := a.Login(ctx); err != nil {
		return nil, err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "sync", "schedules", "list").Flag("--repo-id", id)
	out, err := a.runner.Expect(ctx, command.OpListSchedules, id, cmd)
	if err != nil {
		return nil, err
	}
	return parser.ScheduleIDs(out), nil
}

// CreateSchedule adds a sync schedule to a repository.
func (a *Admin) CreateSchedule(ctx context.Context, id, repoType, schedule string) error {
	if err := a.Login(ctx); err != nil {
		return err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "sync", "schedules", "create").
		Flag("--repo-id", id).
		SeparateFlag("-s", schedule)
	_, err := a.runner.Expect(ctx, command.OpCreateSchedule, id, cmd)
	return err
}

// DeleteSchedule removes a sync schedule by its id.
func (a *Admin) DeleteSchedule(ctx context.Context, id, repoType, scheduleID string) error {
	if err := a.Login(ctx); err != nil {
		return err
	}

	cmd := command.New(a.adminBinary, repoType, "repo", "sync", "schedules", "delete").
		Flag("--repo-id", id).
		Flag("--schedule-id", scheduleID)
	_, err := a.runner.Expect(ctx, command.OpDeleteSchedule, id, cmd)
	return err
}

// RegisterConsumer registers this node under id.
func (a *Admin) RegisterConsumer(ctx context.Context, id string) error {
	cmd := command.New(a.consumerBinary, "register").
		Global("-u", a.creds.Login, false).
		Global("-p", a.creds.Password, true).
		Flag("--consumer-id", id)
	_, err := a.runner.Expect(ctx, command.OpRegisterConsumer, id, cmd)
	return err
}

// UnregisterConsumer removes whatever consumer this node is registered as.
func (a *Admin) UnregisterConsumer(ctx context.Context) error {
	cmd := command.New(a.consumerBinary, "unregister")
	_, err := a.runner.Expect(ctx, command.OpUnregisterConsumer, "", cmd)
	return err
}

// Consumer returns the consumer this node is registered as, or nil when it is not
// registered.
func (a *Admin) Consumer(ctx context.Context) (*ConsumerRecord, error) {
	cmd := command.New(a.consumerBinary, "status")
	out, err := a.runner.Expect(ctx, command.OpConsumerStatus, "", cmd)
	if err != nil {
		return nil, err
	}

	if m := command.StatusRegisteredPattern.FindStringSubmatch(strings.ReplaceAll(out, "\n", " ")); m != nil {
		return &ConsumerRecord{ID: m[1]}, nil
	}
	if command.StatusUnregisteredPattern.MatchString(out) {
		return nil, nil
	}
	return nil, &errors.OperationFailedError{Operation: command.OpConsumerStatus.String(), Output: out}
}

func (f RepoFields) appendFlags(cmd *command.Command) {
	cmd.OptionalFlag("--display-name", f.DisplayName).
		OptionalFlag("--description", f.Description).
		OptionalFlag("--feed", f.Feed).
		OptionalFlag("--serve-http", formatBool(f.ServeHTTP)).
		OptionalFlag("--serve-https", formatBool(f.ServeHTTPS)).
		OptionalFlag("--relative-url", f.RelativeURL).
		OptionalFlag("--feed-ca-cert", f.FeedCACert).
		OptionalFlag("--feed-cert", f.FeedCert).
		OptionalFlag("--feed-key", f.FeedKey)

	if f.Queries != nil {
		cmd.Flag("--queries", strings.Join(f.Queries, ","))
	}
	for _, note := range sortedNotes(f.Notes) {
		cmd.SeparateFlag("--note", note)
	}
}

// sortedNotes renders notes as "k=v" in key order.
func sortedNotes(notes map[string]string) []string {
	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+notes[k])
	}
	return out
}

func formatBool(b *bool) *string {
	if b == nil {
		return nil
	}
	s := strconv.FormatBool(*b)
	return &s
}

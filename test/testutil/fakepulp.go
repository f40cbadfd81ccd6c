// Package testutil provides test doubles shared by the pulpctl test suites.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// FakeRepo is the server-side state of a repository held by FakePulp.
type FakeRepo struct {
	ID          string
	DisplayName string
	Description string
	Feed        string
	ServeHTTP   *bool
	ServeHTTPS  *bool
	RelativeURL string
	Notes       map[string]string
	Queries     []string
	Schedules   []FakeSchedule
}

// FakeSchedule is a sync schedule with its server-assigned id.
type FakeSchedule struct {
	ID       string
	Schedule string
}

// FakePulp simulates pulp-admin and pulp-consumer well enough to exercise the
// reconcilers. It implements command.Executor.
type FakePulp struct {
	mu sync.Mutex

	// Password is the password login accepts. Empty accepts anything.
	Password string
	// Repos holds repositories by repo type, then id.
	Repos map[string]map[string]*FakeRepo
	// ConsumerID is the registered consumer, empty when unregistered.
	ConsumerID string
	// Responses overrides the simulated output for a command key such as
	// "repo sync schedules create" or "register".
	Responses map[string]string
	// Calls records every invocation as binary followed by its arguments.
	Calls [][]string

	nextSchedule int
}

// NewFakePulp returns an empty server.
func NewFakePulp() *FakePulp {
	return &FakePulp{
		Repos:     map[string]map[string]*FakeRepo{},
		Responses: map[string]string{},
	}
}

// AddRepo seeds a repository.
func (f *FakePulp) AddRepo(repoType string, repo *FakeRepo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Repos[repoType] == nil {
		f.Repos[repoType] = map[string]*FakeRepo{}
	}
	if repo.Notes == nil {
		repo.Notes = map[string]string{}
	}
	f.Repos[repoType][repo.ID] = repo
}

// Repo returns a repository or nil.
func (f *FakePulp) Repo(repoType, id string) *FakeRepo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Repos[repoType][id]
}

// CallLines renders the recorded calls one per string, arguments joined by spaces.
func (f *FakePulp) CallLines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, 0, len(f.Calls))
	for _, c := range f.Calls {
		lines = append(lines, strings.Join(c, " "))
	}
	return lines
}

// CountCalls returns how many calls had the given command key.
func (f *FakePulp) CountCalls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if commandKey(c[1:]) == key {
			n++
		}
	}
	return n
}

// Run implements command.Executor.
func (f *FakePulp) Run(_ context.Context, name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, append([]string{name}, args...))

	key := commandKey(args)
	if out, ok := f.Responses[key]; ok {
		return out, nil
	}

	flags, words := splitArgs(args)
	if strings.Contains(name, "consumer") {
		return f.consumer(key, flags), nil
	}
	if key == "login" {
		if f.Password != "" && flags.get("-p") != f.Password {
			return "Invalid Username or Password\n", nil
		}
		return "Successfully logged in. Session certificate will expire at Sep 19 14:00:00 2026 GMT.\n", nil
	}

	repoType := ""
	if len(words) > 0 && words[0] != "repo" {
		repoType = words[0]
	}
	return f.repo(key, repoType, flags), nil
}

func (f *FakePulp) consumer(key string, flags argFlags) string {
	switch key {
	case "register":
		if f.ConsumerID != "" {
			return "This system has already been registered as a consumer. Please use the unregister command to remove the consumer before attempting to re-register.\n"
		}
		f.ConsumerID = flags.get("--consumer-id")
		return fmt.Sprintf("Consumer [%s] successfully registered\n", f.ConsumerID)
	case "unregister":
		if f.ConsumerID == "" {
			return "This consumer is not currently registered.\n"
		}
		id := f.ConsumerID
		f.ConsumerID = ""
		return fmt.Sprintf("Consumer [%s] successfully unregistered\n", id)
	case "status":
		if f.ConsumerID == "" {
			return "This consumer is not currently registered.\n"
		}
		return fmt.Sprintf("This consumer is registered to the server\n[pulp.example.com] with the ID [%s].\n", f.ConsumerID)
	}
	return "Unknown command\n"
}

func (f *FakePulp) repo(key, repoType string, flags argFlags) string {
	id := flags.get("--repo-id")
	repos := f.Repos[repoType]

	switch key {
	case "repo list":
		return f.renderList(repoType)
	case "repo create":
		if repos[id] != nil {
			return fmt.Sprintf("A resource with the ID \"%s\" already exists.\n", id)
		}
		repo := &FakeRepo{ID: id, Notes: map[string]string{}}
		applyFlags(repo, flags)
		if f.Repos[repoType] == nil {
			f.Repos[repoType] = map[string]*FakeRepo{}
		}
		f.Repos[repoType][id] = repo
		return fmt.Sprintf("Successfully created repository [%s]\n", id)
	case "repo delete":
		if repos[id] == nil {
			return fmt.Sprintf("The following resource(s) could not be found:\n  repository [%s]\n", id)
		}
		delete(repos, id)
		return fmt.Sprintf("This command may be exited via ctrl+c without affecting the request.\n\nRepository [%s] successfully deleted\n", id)
	case "repo update":
		repo := repos[id]
		if repo == nil {
			return fmt.Sprintf("The following resource(s) could not be found:\n  repository [%s]\n", id)
		}
		applyFlags(repo, flags)
		return fmt.Sprintf("Repository [%s] successfully updated\n", id)
	case "repo sync schedules list":
		return f.renderSchedules(repos[id])
	case "repo sync schedules create":
		repo := repos[id]
		if repo == nil {
			return "The following resource(s) could not be found\n"
		}
		f.nextSchedule++
		repo.Schedules = append(repo.Schedules, FakeSchedule{
			ID:       fmt.Sprintf("5059c8a5ab2d1d0b4200%04d", f.nextSchedule),
			Schedule: flags.get("-s"),
		})
		return "Schedule successfully created\n"
	case "repo sync schedules delete":
		repo := repos[id]
		if repo == nil {
			return "The following resource(s) could not be found\n"
		}
		scheduleID := flags.get("--schedule-id")
		for i, s := range repo.Schedules {
			if s.ID == scheduleID {
				repo.Schedules = append(repo.Schedules[:i], repo.Schedules[i+1:]...)
				return "Schedule successfully deleted\n"
			}
		}
		return "The following resource(s) could not be found\n"
	}
	return "Unknown command\n"
}

const fakeBanner = `+----------------------------------------------------------------------+
                            %s Repositories
+----------------------------------------------------------------------+
`

func (f *FakePulp) renderList(repoType string) string {
	var b strings.Builder
	fmt.Fprintf(&b, fakeBanner, strings.ToUpper(repoType))

	ids := make([]string, 0, len(f.Repos[repoType]))
	for id := range f.Repos[repoType] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		r := f.Repos[repoType][id]
		b.WriteString("\n")
		fmt.Fprintf(&b, "Id:                  %s\n", r.ID)
		fmt.Fprintf(&b, "Display Name:        %s\n", orNone(r.DisplayName))
		fmt.Fprintf(&b, "Description:         %s\n", orNone(r.Description))
		b.WriteString("Content Unit Counts:\n")
		b.WriteString("Notes:\n")
		noteKeys := make([]string, 0, len(r.Notes))
		for k := range r.Notes {
			noteKeys = append(noteKeys, k)
		}
		sort.Strings(noteKeys)
		for _, k := range noteKeys {
			fmt.Fprintf(&b, "  %s:  %s\n", k, r.Notes[k])
		}
		if r.RelativeURL != "" {
			fmt.Fprintf(&b, "Relative URL:        %s\n", r.RelativeURL)
		}
		b.WriteString("Importers:\n")
		b.WriteString("  Config:\n")
		if r.Feed != "" {
			fmt.Fprintf(&b, "    Feed:     %s\n", r.Feed)
		}
		if len(r.Queries) > 0 {
			fmt.Fprintf(&b, "    Queries:  %s\n", strings.Join(r.Queries, ", "))
		}
		b.WriteString("  Id:                yum_importer\n")
		b.WriteString("  Last Sync:         None\n")
		if len(r.Schedules) > 0 {
			schedules := make([]string, 0, len(r.Schedules))
			for _, s := range r.Schedules {
				schedules = append(schedules, s.Schedule)
			}
			fmt.Fprintf(&b, "  Scheduled Syncs:   %s\n", strings.Join(schedules, ", "))
		}
		b.WriteString("Distributors:\n")
		b.WriteString("  Auto Publish:        True\n")
		if r.ServeHTTP != nil || r.ServeHTTPS != nil {
			b.WriteString("  Config:\n")
			if r.ServeHTTP != nil {
				fmt.Fprintf(&b, "    Serve Http:   %s\n", pyBool(*r.ServeHTTP))
			}
			if r.ServeHTTPS != nil {
				fmt.Fprintf(&b, "    Serve Https:  %s\n", pyBool(*r.ServeHTTPS))
			}
		}
		b.WriteString("  Id:                  yum_distributor\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (f *FakePulp) renderSchedules(repo *FakeRepo) string {
	var b strings.Builder
	b.WriteString("+----------------------------------------------------------------------+\n")
	b.WriteString("                              Schedules\n")
	b.WriteString("+----------------------------------------------------------------------+\n")
	if repo == nil || len(repo.Schedules) == 0 {
		b.WriteString("\nThere are no schedules defined for this operation.\n")
		return b.String()
	}
	for _, s := range repo.Schedules {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Id:                   %s\n", s.ID)
		fmt.Fprintf(&b, "Schedule:             %s\n", s.Schedule)
		b.WriteString("Enabled:              True\n")
	}
	return b.String()
}

func applyFlags(repo *FakeRepo, flags argFlags) {
	if v, ok := flags.lookup("--display-name"); ok {
		repo.DisplayName = v
	}
	if v, ok := flags.lookup("--description"); ok {
		repo.Description = v
	}
	if v, ok := flags.lookup("--feed"); ok {
		repo.Feed = v
	}
	if v, ok := flags.lookup("--serve-http"); ok {
		b := v == "true"
		repo.ServeHTTP = &b
	}
	if v, ok := flags.lookup("--serve-https"); ok {
		b := v == "true"
		repo.ServeHTTPS = &b
	}
	if v, ok := flags.lookup("--relative-url"); ok {
		repo.RelativeURL = v
	}
	if v, ok := flags.lookup("--queries"); ok {
		repo.Queries = nil
		for _, q := range strings.Split(v, ",") {
			if q != "" {
				repo.Queries = append(repo.Queries, q)
			}
		}
	}
	if notes := flags.all("--note"); len(notes) > 0 {
		repo.Notes = map[string]string{}
		for _, n := range notes {
			k, v, _ := strings.Cut(n, "=")
			repo.Notes[k] = v
		}
	}
}

type argFlags map[string][]string

func (a argFlags) get(name string) string {
	v, _ := a.lookup(name)
	return v
}

func (a argFlags) lookup(name string) (string, bool) {
	vals, ok := a[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

func (a argFlags) all(name string) []string { return a[name] }

// separateValueFlags take their value as the following argument.
var separateValueFlags = map[string]bool{"-u": true, "-p": true, "-s": true, "--note": true}

func splitArgs(args []string) (argFlags, []string) {
	flags := argFlags{}
	var words []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case separateValueFlags[a] && i+1 < len(args):
			flags[a] = append(flags[a], args[i+1])
			i++
		case strings.HasPrefix(a, "-"):
			name, value, _ := strings.Cut(a, "=")
			flags[name] = append(flags[name], value)
		default:
			words = append(words, a)
		}
	}
	return flags, words
}

// commandKey is the subcommand words without the repo type and flags,
// e.g. "repo sync schedules create".
func commandKey(args []string) string {
	_, words := splitArgs(args)
	for len(words) > 0 && words[0] != "repo" && len(words) > 1 && words[1] == "repo" {
		words = words[1:]
	}
	return strings.Join(words, " ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

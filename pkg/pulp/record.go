package pulp

import (
	"sort"

	"github.com/glorpus-work/pulpctl/pkg/parser"
)

// Repo types. Each is its own id namespace on the server.
const (
	RepoTypeRPM    = "rpm"
	RepoTypePuppet = "puppet"
)

// RepositoryRecord is the projection of one repository as reported by
// "pulp-admin <type> repo list --details". It is read on demand and never cached.
type RepositoryRecord struct {
	ID          string            `json:"id" yaml:"id"`
	RepoType    string            `json:"repo_type" yaml:"repo_type"`
	DisplayName string            `json:"display_name" yaml:"display_name"`
	Description string            `json:"description" yaml:"description"`
	Feed        string            `json:"feed,omitempty" yaml:"feed,omitempty"`
	ServeHTTP   bool              `json:"serve_http" yaml:"serve_http"`
	ServeHTTPS  bool              `json:"serve_https" yaml:"serve_https"`
	RelativeURL string            `json:"relative_url,omitempty" yaml:"relative_url,omitempty"`
	Notes       map[string]string `json:"notes" yaml:"notes"`
	Queries     []string          `json:"queries" yaml:"queries"`
	Schedules   []string          `json:"schedules" yaml:"schedules"`

	// The list output never shows the feed TLS material; these stay empty on read.
	FeedCACert string `json:"-" yaml:"-"`
	FeedCert   string `json:"-" yaml:"-"`
	FeedKey    string `json:"-" yaml:"-"`
}

// NoteKeys returns the note keys in sorted order.
func (r *RepositoryRecord) NoteKeys() []string {
	keys := make([]string, 0, len(r.Notes))
	for k := range r.Notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConsumerRecord is the consumer identity registered on this node.
type ConsumerRecord struct {
	ID string `json:"id" yaml:"id"`
}

// projectRepository maps a parsed block onto a record. It returns nil for blocks that
// carry no Id.
func projectRepository(b parser.Block, repoType string) *RepositoryRecord {
	id, ok := b.String("Id")
	if !ok || id == "" {
		return nil
	}

	rec := &RepositoryRecord{
		ID:       id,
		RepoType: repoType,
		Notes:    map[string]string{},
	}

	rec.DisplayName, _ = b.String("Display Name")

	if desc, ok := b.String("Description"); ok && desc != "None" {
		rec.Description = desc
	}

	if notes := b.Block("Notes"); notes != nil {
		rec.Notes = notes.StringMap()
	}

	importers := b.Block("Importers")
	importersConfig := importers.Block("Config")
	rec.Feed, _ = importersConfig.String("Feed")

	queries, _ := importersConfig.String("Queries")
	rec.Queries = parser.SplitList(queries)

	schedules, _ := importers.String("Scheduled Syncs")
	rec.Schedules = parser.SplitList(schedules)

	distributorsConfig := b.Block("Distributors").Block("Config")
	if serveHTTP, ok := distributorsConfig.String("Serve Http"); ok {
		rec.ServeHTTP = serveHTTP == "True"
	} else {
		rec.ServeHTTP = true
	}
	serveHTTPS, _ := distributorsConfig.String("Serve Https")
	rec.ServeHTTPS = serveHTTPS == "True"

	rec.RelativeURL, _ = b.String("Relative URL")

	return rec
}

// Ensure is the desired existence of a resource.
type Ensure string

// Ensure values.
const (
	EnsurePresent Ensure = "present"
	EnsureAbsent  Ensure = "absent"
)

// Valid reports whether e is a known value. The empty value is not valid; callers
// default it to EnsurePresent before validating.
func (e Ensure) Valid() bool {
	return e == EnsurePresent || e == EnsureAbsent
}

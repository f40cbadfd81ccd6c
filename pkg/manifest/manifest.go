// Package manifest loads the YAML documents that declare the repositories and consumer
// a node should have.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/hashicorp/go-version"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultVersion is assumed when a manifest does not declare one.
	DefaultVersion = "1.0"
	// SupportedVersions is the constraint a manifest version must satisfy.
	SupportedVersions = ">= 1.0, < 2.0"
)

// Manifest is a parsed manifest document.
type Manifest struct {
	Version string `yaml:"version,omitempty"`
	// HooksDir holds pre-apply.tengo and post-apply.tengo scripts run for every resource.
	HooksDir     string               `yaml:"hooks_dir,omitempty"`
	Repositories []*resource.Repo     `yaml:"repositories,omitempty"`
	Consumers    []*resource.Consumer `yaml:"consumers,omitempty"`

	// BaseDir is the directory relative paths in the manifest resolve against.
	BaseDir string `yaml:"-"`
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return nil, errors.Wrap(errors.ErrManifestParse, "empty manifest path")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid manifest path: %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open manifest: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file, filepath.Dir(absPath))
}

// LoadFromReader parses a manifest and checks its version. Unknown keys are rejected.
func LoadFromReader(reader io.Reader, baseDir string) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrManifestParse, err.Error())
	}

	if m.Version == "" {
		m.Version = DefaultVersion
	}
	if err := CheckVersion(m.Version); err != nil {
		return nil, err
	}

	m.BaseDir = baseDir
	return &m, nil
}

// CheckVersion returns ErrManifestVersion unless v satisfies SupportedVersions.
func CheckVersion(v string) error {
	parsed, err := version.NewVersion(v)
	if err != nil {
		return errors.Wrapf(errors.ErrManifestVersion, "%q: %v", v, err)
	}
	constraint := version.MustConstraints(version.NewConstraint(SupportedVersions))
	if !constraint.Check(parsed) {
		return errors.Wrapf(errors.ErrManifestVersion, "%s does not satisfy %s", v, SupportedVersions)
	}
	return nil
}

// ApplyDefaults fills every resource's unset fields from d.
func (m *Manifest) ApplyDefaults(d resource.Defaults) {
	for _, r := range m.Repositories {
		if r != nil {
			r.ApplyDefaults(d)
		}
	}
	for _, c := range m.Consumers {
		if c != nil {
			c.ApplyDefaults(d)
		}
	}
}

// Validate checks every resource, that repository ids are unique per repo type and
// that at most one consumer is ensured present.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Repositories))
	for i, r := range m.Repositories {
		if r == nil {
			return errors.Wrapf(errors.ErrManifestParse, "repositories[%d] is empty", i)
		}
		if err := r.Validate(); err != nil {
			return err
		}
		key := r.RepoType + "/" + r.ID
		if seen[key] {
			return errors.ErrInvalidResourceWithDetails(resource.KindRepository, r.ID, "declared twice for repo type "+r.RepoType)
		}
		seen[key] = true
	}

	present := 0
	consumerIDs := make(map[string]bool, len(m.Consumers))
	for i, c := range m.Consumers {
		if c == nil {
			return errors.Wrapf(errors.ErrManifestParse, "consumers[%d] is empty", i)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if consumerIDs[c.ID] {
			return errors.ErrInvalidResourceWithDetails(resource.KindConsumer, c.ID, "declared twice")
		}
		consumerIDs[c.ID] = true
		if c.Ensure == pulp.EnsurePresent {
			present++
		}
	}
	if present > 1 {
		return errors.Wrap(errors.ErrInvalidResource, fmt.Sprintf("%d consumers ensured present, a node registers at most one", present))
	}
	return nil
}

// HooksPath returns HooksDir resolved against BaseDir, or "" when unset.
func (m *Manifest) HooksPath() string {
	if m.HooksDir == "" {
		return ""
	}
	if filepath.IsAbs(m.HooksDir) {
		return m.HooksDir
	}
	return filepath.Join(m.BaseDir, m.HooksDir)
}

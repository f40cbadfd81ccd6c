package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/pulpctl/pkg/auth"
	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/glorpus-work/pulpctl/pkg/pulp"
	"github.com/glorpus-work/pulpctl/pkg/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteManifest = `
version: "1.2"
hooks_dir: hooks
repositories:
  - id: centos-base
    display_name: CentOS Base
    feed: http://mirror.centos.org/centos/7/os/x86_64/
    relative_url: centos/7/os
    serve_https: true
    notes:
      owner: ops
    schedules:
      - "0 2 * * *"
  - id: forge
    repo_type: puppet
    queries: [stdlib, concat]
    ensure: absent
    hooks:
      pre_apply: guard.tengo
consumers:
  - id: node-01
    login: registrar
`

func TestLoadFromReader(t *testing.T) {
	m, err := LoadFromReader(strings.NewReader(siteManifest), "/etc/pulpctl")
	require.NoError(t, err)

	assert.Equal(t, "1.2", m.Version)
	assert.Equal(t, "/etc/pulpctl/hooks", m.HooksPath())
	require.Len(t, m.Repositories, 2)
	require.Len(t, m.Consumers, 1)

	base := m.Repositories[0]
	assert.Equal(t, "centos-base", base.ID)
	assert.Equal(t, "CentOS Base", *base.DisplayName)
	assert.Nil(t, base.Description)
	assert.True(t, *base.ServeHTTPS)
	assert.Nil(t, base.ServeHTTP)
	assert.Equal(t, map[string]string{"owner": "ops"}, base.Notes)
	assert.Equal(t, []string{"0 2 * * *"}, base.Schedules)

	forge := m.Repositories[1]
	assert.Equal(t, pulp.EnsureAbsent, forge.Ensure)
	assert.Equal(t, []string{"stdlib", "concat"}, forge.Queries)
	assert.Equal(t, "guard.tengo", forge.Hooks.PreApply)

	m.ApplyDefaults(resource.Defaults{Credentials: auth.Credentials{Password: "pw"}})
	require.NoError(t, m.Validate())
	assert.Equal(t, pulp.RepoTypeRPM, base.RepoType)
	assert.Equal(t, auth.Credentials{Login: "registrar", Password: "pw"}, m.Consumers[0].Credentials())
}

func TestLoadFromReader_Versions(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    string
		wantErr bool
	}{
		{name: "missing version", doc: "repositories: []\n", want: DefaultVersion},
		{name: "empty document", doc: "", want: DefaultVersion},
		{name: "supported", doc: "version: \"1.9.3\"\n", want: "1.9.3"},
		{name: "too new", doc: "version: \"2.0\"\n", wantErr: true},
		{name: "too old", doc: "version: \"0.9\"\n", wantErr: true},
		{name: "not a version", doc: "version: latest\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadFromReader(strings.NewReader(tt.doc), ".")
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrManifestVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Version)
		})
	}
}

func TestLoadFromReader_RejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("repositories:\n  - id: a\n    dispaly_name: typo\n"), ".")
	assert.ErrorIs(t, err, errors.ErrManifestParse)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "duplicate repository",
			doc:  "repositories:\n  - id: a\n  - id: a\n",
			want: errors.ErrInvalidResource,
		},
		{
			name: "same id in different repo types",
			doc:  "repositories:\n  - id: a\n  - id: a\n    repo_type: puppet\n",
		},
		{
			name: "two present consumers",
			doc:  "consumers:\n  - id: a\n  - id: b\n",
			want: errors.ErrInvalidResource,
		},
		{
			name: "one present one absent consumer",
			doc:  "consumers:\n  - id: a\n  - id: b\n    ensure: absent\n",
		},
		{
			name: "invalid feed",
			doc:  "repositories:\n  - id: a\n    feed: not a url\n",
			want: errors.ErrInvalidResource,
		},
		{
			name: "null entry",
			doc:  "repositories:\n  -\n",
			want: errors.ErrManifestParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := LoadFromReader(strings.NewReader(tt.doc), ".")
			require.NoError(t, err)
			m.ApplyDefaults(resource.Defaults{})

			err = m.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteManifest), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, m.BaseDir)
	assert.Equal(t, filepath.Join(dir, "hooks"), m.HooksPath())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load("")
	assert.ErrorIs(t, err, errors.ErrManifestParse)
}

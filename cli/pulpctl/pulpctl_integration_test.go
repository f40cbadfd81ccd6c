//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminScript stands in for pulp-admin and pulp-consumer. Repositories and the
// consumer registration are files below $PULP_STATE.
const fakeAdminScript = `#!/bin/sh
state="${PULP_STATE:?}"
mkdir -p "$state/repos"
echo "$*" >> "$state/calls"

id=""
for arg in "$@"; do
  case "$arg" in
    --repo-id=*) id="${arg#--repo-id=}" ;;
    --consumer-id=*) id="${arg#--consumer-id=}" ;;
  esac
done

case "$*" in
  login*)
    echo "Successfully logged in. Session certificate will expire at Sep 19 14:00:00 2026 GMT." ;;
  *"repo list"*)
    echo "+----------------------------------------------------------------------+"
    echo "                            Rpm Repositories"
    echo "+----------------------------------------------------------------------+"
    for f in "$state"/repos/*; do
      [ -e "$f" ] || continue
      echo
      echo "Id:                  $(basename "$f")"
      echo "Display Name:        $(cat "$f")"
      echo "Description:         None"
    done ;;
  *"repo create"*)
    name="None"
    for arg in "$@"; do
      case "$arg" in --display-name=*) name="${arg#--display-name=}" ;; esac
    done
    echo "$name" > "$state/repos/$id"
    echo "Successfully created repository [$id]" ;;
  *"repo update"*)
    for arg in "$@"; do
      case "$arg" in --display-name=*) echo "${arg#--display-name=}" > "$state/repos/$id" ;; esac
    done
    echo "Repository [$id] successfully updated" ;;
  *"repo delete"*)
    rm -f "$state/repos/$id"
    echo "Repository [$id] successfully deleted" ;;
  *unregister*)
    id="$(cat "$state/consumer")"
    rm -f "$state/consumer"
    echo "Consumer [$id] successfully unregistered" ;;
  *register*)
    echo "$id" > "$state/consumer"
    echo "Consumer [$id] successfully registered" ;;
  status*)
    if [ -f "$state/consumer" ]; then
      echo "This consumer is registered to the server"
      echo "[pulp.example.com] with the ID [$(cat "$state/consumer")]."
    else
      echo "This consumer is not currently registered."
    fi ;;
  *)
    echo "Unknown command"; exit 2 ;;
esac
`

type integrationEnv struct {
	state      string
	configPath string
}

func setupIntegration(t *testing.T) *integrationEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the fake pulp tools are shell scripts")
	}

	root := t.TempDir()
	script := filepath.Join(root, "bin", "pulp-admin")
	require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
	require.NoError(t, os.WriteFile(script, []byte(fakeAdminScript), 0o755))

	env := &integrationEnv{
		state:      filepath.Join(root, "state"),
		configPath: filepath.Join(root, "config.yaml"),
	}
	t.Setenv("PULP_STATE", env.state)

	config := "settings:\n" +
		"  admin_binary: " + script + "\n" +
		"  consumer_binary: " + script + "\n" +
		"  command_timeout: 30s\n" +
		"  login: admin\n" +
		"  password: admin\n" +
		"  use_keyring: false\n"
	require.NoError(t, os.WriteFile(env.configPath, []byte(config), 0o600))
	return env
}

func (e *integrationEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", e.configPath, "--no-color"}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e *integrationEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.state, "calls"))
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestIntegration_RepoLifecycle(t *testing.T) {
	env := setupIntegration(t)

	_, err := env.run(t, "repo", "create", "base", "--display-name", "Base OS")
	require.NoError(t, err)

	out, err := env.run(t, "repo", "exists", "base")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = env.run(t, "repo", "update", "base", "--display-name", "Base")
	require.NoError(t, err)
	assert.Equal(t, "base: set display_name\n", out)

	out, err = env.run(t, "repo", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "base")
	assert.NotContains(t, out, "Base OS")

	_, err = env.run(t, "repo", "delete", "base")
	require.NoError(t, err)

	out, err = env.run(t, "repo", "exists", "base")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)

	assert.Contains(t, env.calls(t), "rpm repo create --repo-id=base --display-name=Base OS")
}

func TestIntegration_Apply(t *testing.T) {
	env := setupIntegration(t)

	manifest := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
repositories:
  - id: base
    display_name: Base
consumers:
  - id: node-01
`), 0o644))

	out, err := env.run(t, "apply", "-f", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "2 resources, 2 changed")

	out, err = env.run(t, "apply", "-f", manifest)
	require.NoError(t, err)
	assert.Contains(t, out, "2 resources, 0 changed")

	out, err = env.run(t, "consumer", "status")
	require.NoError(t, err)
	assert.Equal(t, "Registered as node-01\n", out)
}

func TestIntegration_MissingBinary(t *testing.T) {
	env := setupIntegration(t)
	t.Setenv("PULPCTL_ADMIN_BINARY", filepath.Join(t.TempDir(), "no-such-pulp-admin"))

	_, err := env.run(t, "repo", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-pulp-admin")
}

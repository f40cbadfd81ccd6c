package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCommandArgv(t *testing.T) {
	cmd := New("pulp-admin", "rpm", "repo", "create").
		Flag("--repo-id", "repo1").
		Flag("--display-name", "Repo One").
		SeparateFlag("--note", "a=1").
		SeparateFlag("-s", "0 2 * * *")

	assert.Equal(t, "pulp-admin", cmd.Binary)
	assert.Equal(t, []string{
		"rpm", "repo", "create",
		"--repo-id=repo1",
		"--display-name=Repo One",
		"--note", "a=1",
		"-s", "0 2 * * *",
	}, cmd.Argv())
}

func TestCommandString(t *testing.T) {
	cmd := New("pulp-admin", "rpm", "repo", "create").
		Flag("--repo-id", "repo1").
		Flag("--display-name", "Repo One").
		Flag("--feed", "http://example.com/feed").
		SeparateFlag("--note", "a=1").
		SeparateFlag("--note", "b=2")

	assert.Equal(t,
		`pulp-admin rpm repo create --repo-id="repo1" --display-name="Repo One" --feed="http://example.com/feed" --note "a=1" --note "b=2"`,
		cmd.String())
}

func TestCommandMasksSecrets(t *testing.T) {
	cmd := New("pulp-admin", "login").SeparateFlag("-u", "admin").SecretFlag("-p", "hunter2")

	assert.Equal(t, []string{"login", "-u", "admin", "-p", "hunter2"}, cmd.Argv())
	assert.Equal(t, `pulp-admin login -u "admin" -p "******"`, cmd.String())
	assert.NotContains(t, cmd.String(), "hunter2")
}

func TestOptionalFlagDistinguishesUnsetFromEmpty(t *testing.T) {
	cmd := New("pulp-admin", "rpm", "repo", "update").
		OptionalFlag("--description", strPtr("")).
		OptionalFlag("--feed", nil)

	assert.Equal(t, []string{"rpm", "repo", "update", "--description="}, cmd.Argv())
}

func TestNewDropsEmptyWords(t *testing.T) {
	cmd := New("pulp-admin", "", "repo", "delete")
	assert.Equal(t, []string{"repo", "delete"}, cmd.Argv())
}

func TestSpecialCharactersStayInOneArgument(t *testing.T) {
	value := `Repo "One"; rm -rf / $(whoami) && echo`
	cmd := New("pulp-admin", "rpm", "repo", "update").Flag("--description", value)

	argv := cmd.Argv()
	assert.Len(t, argv, 4)
	assert.Equal(t, "--description="+value, argv[3])
	assert.Contains(t, cmd.String(), `--description="Repo \"One\"; rm -rf / $(whoami) && echo"`)
}

func TestCommandGlobalsPrecedeSubcommand(t *testing.T) {
	cmd := New("pulp-consumer", "register").
		Global("-u", "admin", false).
		Global("-p", "secret", true).
		Flag("--consumer-id", "node1")

	assert.Equal(t, []string{"-u", "admin", "-p", "secret", "register", "--consumer-id=node1"}, cmd.Argv())
	assert.Equal(t, `pulp-consumer -u "admin" -p "******" register --consumer-id="node1"`, cmd.String())
}

// Package auth resolves the login and password used against the pulp tools.
//
//go:generate mockgen -destination=./mocks/auth.go . Source
package auth

import (
	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// DefaultLogin is the login used when nothing else is configured.
const DefaultLogin = "admin"

// Credentials is a pulp login/password pair.
type Credentials struct {
	Login    string
	Password string
}

// Validate checks that both parts are present.
func (c Credentials) Validate() error {
	if c.Login == "" {
		return errors.ErrMissingLogin
	}
	if c.Password == "" {
		return errors.ErrMissingPassword
	}
	return nil
}

// Source provides a password for a login. ok is false when the source has nothing for it.
type Source interface {
	Password(login string) (password string, ok bool, err error)
	Type() Type
}

// Type names where a password came from.
type Type string

// Source types.
const (
	// StaticType is a password given on the command line, in the environment or the config file.
	StaticType Type = "static"
	// KeyringType is a password stored in the operating system keyring.
	KeyringType Type = "keyring"
	// PromptType is a password typed interactively.
	PromptType Type = "prompt"
)

// StaticSource returns a fixed password for any login.
type StaticSource struct {
	Value string
}

// Password returns the static value when it is not empty.
func (s StaticSource) Password(string) (string, bool, error) {
	return s.Value, s.Value != "", nil
}

// Type returns StaticType.
func (s StaticSource) Type() Type { return StaticType }

// PromptSource asks the user for a password.
type PromptSource struct {
	Prompt func(login string) (string, error)
}

// Password runs the prompt. An empty answer counts as no password.
func (p PromptSource) Password(login string) (string, bool, error) {
	if p.Prompt == nil {
		return "", false, nil
	}
	pw, err := p.Prompt(login)
	if err != nil {
		return "", false, err
	}
	return pw, pw != "", nil
}

// Type returns PromptType.
func (p PromptSource) Type() Type { return PromptType }

// Resolve builds credentials for login from the first source that has a password.
// An empty login falls back to DefaultLogin.
func Resolve(login string, sources ...Source) (Credentials, Type, error) {
	if login == "" {
		login = DefaultLogin
	}
	for _, src := range sources {
		if src == nil {
			continue
		}
		pw, ok, err := src.Password(login)
		if err != nil {
			return Credentials{}, "", errors.Wrapf(err, "failed to read %s credentials", src.Type())
		}
		if ok {
			return Credentials{Login: login, Password: pw}, src.Type(), nil
		}
	}
	return Credentials{Login: login}, "", errors.ErrMissingPassword
}

package auth

import (
	stderrors "errors"

	"github.com/glorpus-work/pulpctl/pkg/errors"
	"github.com/zalando/go-keyring"
)

// KeyringService is the service name passwords are stored under.
const KeyringService = "pulpctl"

// KeyringStore keeps pulp passwords in the operating system keyring.
type KeyringStore struct {
	Service string
}

// NewKeyringStore returns a store using KeyringService.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{Service: KeyringService}
}

// Get returns the stored password for login or errors.ErrCredentialsNotFound.
func (k *KeyringStore) Get(login string) (string, error) {
	pw, err := keyring.Get(k.Service, login)
	if stderrors.Is(err, keyring.ErrNotFound) {
		return "", errors.ErrCredentialsNotFound
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to read keyring entry for %s", login)
	}
	return pw, nil
}

// Set stores password for login, replacing any previous value.
func (k *KeyringStore) Set(login, password string) error {
	if err := keyring.Set(k.Service, login, password); err != nil {
		return errors.Wrapf(err, "failed to store keyring entry for %s", login)
	}
	return nil
}

// Delete removes the password stored for login. Deleting a missing entry is not an error.
func (k *KeyringStore) Delete(login string) error {
	err := keyring.Delete(k.Service, login)
	if err != nil && !stderrors.Is(err, keyring.ErrNotFound) {
		return errors.Wrapf(err, "failed to delete keyring entry for %s", login)
	}
	return nil
}

// Password implements Source. A missing entry is reported as ok=false.
func (k *KeyringStore) Password(login string) (string, bool, error) {
	pw, err := k.Get(login)
	if errors.Is(err, errors.ErrCredentialsNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pw, true, nil
}

// Type returns KeyringType.
func (k *KeyringStore) Type() Type { return KeyringType }

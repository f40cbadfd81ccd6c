// Package errors defines the error values shared across pulpctl and small helpers
// for wrapping them with context.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")
	ErrInvalidBoolValue  = fmt.Errorf("invalid boolean value")

	// Settings validation errors.
	ErrInvalidOutputFormat   = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel       = fmt.Errorf("invalid log level")
	ErrInvalidLogFormat      = fmt.Errorf("invalid log format")
	ErrInvalidRepoType       = fmt.Errorf("invalid repo type")
	ErrCommandTimeoutInvalid = fmt.Errorf("command_timeout cannot be negative")
	ErrEmptyBinary           = fmt.Errorf("binary path cannot be empty")

	// Pulp tool errors.
	ErrOperationFailed      = fmt.Errorf("operation failed")
	ErrAuthenticationFailed = fmt.Errorf("could not login")
	ErrExecution            = fmt.Errorf("could not execute command")
	ErrRepositoryNotFound   = fmt.Errorf("repository not found")

	// Resource errors.
	ErrInvalidResource = fmt.Errorf("invalid resource")
	ErrMissingLogin    = fmt.Errorf("must specify login")
	ErrMissingPassword = fmt.Errorf("must specify password")

	// Manifest errors.
	ErrManifestParse   = fmt.Errorf("failed to parse manifest")
	ErrManifestVersion = fmt.Errorf("unsupported manifest version")

	// Credential errors.
	ErrCredentialsNotFound = fmt.Errorf("no stored credentials")

	// Hook errors.
	ErrHookExecution = fmt.Errorf("error executing hook")
	ErrHookScript    = fmt.Errorf("hook script error")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// New returns an error that formats as the given text.
func New(text string) error { return stderrors.New(text) }

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// OperationFailedError is returned when the output of a pulp tool invocation does not
// match the success message expected for the operation. Output carries the raw text so
// the operator can see what the tool said.
type OperationFailedError struct {
	Operation string
	Output    string
}

func (e *OperationFailedError) Error() string {
	return fmt.Sprintf("could not %s: %s", e.Operation, strings.TrimSpace(e.Output))
}

// Is makes errors.Is(err, ErrOperationFailed) hold for every OperationFailedError.
func (e *OperationFailedError) Is(target error) bool {
	return target == ErrOperationFailed
}

// ExecutionError is returned when the external binary could not be started at all.
type ExecutionError struct {
	Command string
	Err     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrExecution, e.Command, e.Err)
}

// Unwrap returns the underlying launch error.
func (e *ExecutionError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrExecution) hold for every ExecutionError.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecution
}

// ErrRepositoryNotFoundWithID creates an error for a repository missing from its repo-type namespace.
func ErrRepositoryNotFoundWithID(id, repoType string) error {
	return fmt.Errorf("%w: %s (type %s)", ErrRepositoryNotFound, id, repoType)
}

// ErrInvalidResourceWithDetails wraps ErrInvalidResource with the resource kind, id and reason.
func ErrInvalidResourceWithDetails(kind, id, reason string) error {
	return fmt.Errorf("%w: %s[%s]: %s", ErrInvalidResource, kind, id, reason)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json, yaml", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogFormatWithDetails wraps ErrInvalidLogFormat with the rejected format.
func ErrInvalidLogFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json", ErrInvalidLogFormat, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidRepoTypeWithDetails is a helper to create a wrapped error with the invalid repo type.
func ErrInvalidRepoTypeWithDetails(repoType string) error {
	return fmt.Errorf("%w: '%s', must be one of: rpm, puppet", ErrInvalidRepoType, repoType)
}

// ErrUnknownConfigKeyWithName is a helper to create a wrapped error with the unknown key.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
}

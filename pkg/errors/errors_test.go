package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap with empty message",
			err:      errors.New("original error"),
			msg:      "",
			expected: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			// Test that the original error is wrapped
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "wrapf nil error",
			err:      nil,
			format:   "formatted: %s",
			args:     []interface{}{"test"},
			expected: "",
		},
		{
			name:     "wrapf standard error",
			err:      errors.New("original error"),
			format:   "failed to process %s",
			args:     []interface{}{"file.txt"},
			expected: "failed to process file.txt: original error",
		},
		{
			name:     "wrapf with multiple args",
			err:      errors.New("original error"),
			format:   "failed to process %s in %d attempts",
			args:     []interface{}{"file.txt", 3},
			expected: "failed to process file.txt in 3 attempts: original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrapf(tt.err, tt.format, tt.args...)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			// Test that the original error is wrapped
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestOperationFailedError(t *testing.T) {
	err := error(&OperationFailedError{Operation: "create repo", Output: "Repository already exists\n"})

	if got := err.Error(); got != "could not create repo: Repository already exists" {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(err, ErrOperationFailed) {
		t.Errorf("expected error to match ErrOperationFailed")
	}
	if errors.Is(err, ErrExecution) {
		t.Errorf("operation failure must not match ErrExecution")
	}

	wrapped := Wrap(err, "repo1")
	var opErr *OperationFailedError
	if !errors.As(wrapped, &opErr) {
		t.Fatalf("expected wrapped error to unwrap to OperationFailedError")
	}
	if opErr.Output != "Repository already exists\n" {
		t.Errorf("raw output not preserved: %q", opErr.Output)
	}
}

func TestExecutionError(t *testing.T) {
	cause := errors.New("executable file not found in $PATH")
	err := error(&ExecutionError{Command: "pulp-admin rpm repo list --details", Err: cause})

	if !errors.Is(err, ErrExecution) {
		t.Errorf("expected error to match ErrExecution")
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected error to unwrap to its cause")
	}
	if errors.Is(err, ErrOperationFailed) {
		t.Errorf("execution failure must not match ErrOperationFailed")
	}
}

func TestDetailHelpers(t *testing.T) {
	if err := ErrRepositoryNotFoundWithID("repo1", "rpm"); !errors.Is(err, ErrRepositoryNotFound) {
		t.Errorf("expected ErrRepositoryNotFound, got %v", err)
	}
	if err := ErrInvalidRepoTypeWithDetails("deb"); !errors.Is(err, ErrInvalidRepoType) {
		t.Errorf("expected ErrInvalidRepoType, got %v", err)
	}
	err := ErrInvalidResourceWithDetails("pulp_repo", "bad id", "id may contain only alphanumeric, ., -, and _")
	if !errors.Is(err, ErrInvalidResource) {
		t.Errorf("expected ErrInvalidResource, got %v", err)
	}
	if err.Error() != "invalid resource: pulp_repo[bad id]: id may contain only alphanumeric, ., -, and _" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

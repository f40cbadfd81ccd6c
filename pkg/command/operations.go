package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/glorpus-work/pulpctl/pkg/errors"
)

// Operation identifies a pulp tool invocation whose output is checked for success.
type Operation int

// Known operations.
const (
	OpLogin Operation = iota
	OpCreateRepo
	OpDeleteRepo
	OpUpdateRepo
	OpListRepos
	OpCreateSchedule
	OpDeleteSchedule
	OpListSchedules
	OpRegisterConsumer
	OpUnregisterConsumer
	OpConsumerStatus
)

type operationSpec struct {
	name string
	// pattern is a regexp template; "%s" is replaced with the quoted resource id.
	// Empty means the output is not checked.
	pattern string
}

var operations = [...]operationSpec{
	OpLogin:              {name: "login", pattern: `Successfully logged in`},
	OpCreateRepo:         {name: "create repo", pattern: `Successfully created repository \[%s\]`},
	OpDeleteRepo:         {name: "remove repo", pattern: `Repository \[%s\] successfully deleted`},
	OpUpdateRepo:         {name: "update repo"},
	OpListRepos:          {name: "list repos"},
	OpCreateSchedule:     {name: "create schedule", pattern: `Schedule successfully created`},
	OpDeleteSchedule:     {name: "delete old schedule", pattern: `Schedule successfully deleted`},
	OpListSchedules:      {name: "list schedules"},
	OpRegisterConsumer:   {name: "register consumer", pattern: `Consumer \[%s\] successfully registered`},
	OpUnregisterConsumer: {name: "unregister consumer", pattern: `Consumer \[.+\] successfully unregistered`},
	OpConsumerStatus:     {name: "determine registration status"},
}

// Consumer status patterns. The registered form is matched against the output with
// newlines folded into spaces because the tool wraps the sentence.
var (
	StatusRegisteredPattern   = regexp.MustCompile(`This consumer is registered to the server \[.+?\] with the ID \[([^\]]+)\]`)
	StatusUnregisteredPattern = regexp.MustCompile(`This consumer is not currently registered`)
)

func init() {
	// Every pattern must compile with an arbitrary id substituted.
	for op := range operations {
		_ = Operation(op).SuccessPattern("id")
	}
}

// String returns the human readable name used in error messages.
func (o Operation) String() string {
	if int(o) < 0 || int(o) >= len(operations) {
		return fmt.Sprintf("operation(%d)", int(o))
	}
	return operations[o].name
}

// SuccessPattern returns the expression that must match somewhere in the output of the
// operation on id, or nil when the operation's output is not checked.
func (o Operation) SuccessPattern(id string) *regexp.Regexp {
	if int(o) < 0 || int(o) >= len(operations) {
		return nil
	}
	pattern := operations[o].pattern
	if pattern == "" {
		return nil
	}
	if strings.Contains(pattern, "%s") {
		pattern = fmt.Sprintf(pattern, regexp.QuoteMeta(id))
	}
	return regexp.MustCompile(pattern)
}

// Classify returns nil when output signals success for the operation on id and an
// *errors.OperationFailedError carrying the raw output otherwise. A failed login also
// matches errors.ErrAuthenticationFailed.
func (o Operation) Classify(id, output string) error {
	re := o.SuccessPattern(id)
	if re == nil || re.MatchString(output) {
		return nil
	}
	opErr := &errors.OperationFailedError{Operation: o.String(), Output: output}
	if o == OpLogin {
		return fmt.Errorf("%w: %w", errors.ErrAuthenticationFailed, opErr)
	}
	return opErr
}

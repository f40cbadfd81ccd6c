// Package command builds argument vectors for the pulp command-line tools, runs them
// as external processes and classifies their output.
package command

import (
	"strconv"
	"strings"
)

// Flag is a single command-line option. A flag that is not added to a Command is never
// emitted, so "unset" and "set to the empty string" stay distinguishable.
type Flag struct {
	// Name includes its dashes, e.g. "--display-name" or "-s".
	Name  string
	Value string
	// Separate emits the value as its own word ("--note a=1") instead of "--note=a=1".
	Separate bool
	// Secret masks the value in String().
	Secret bool
}

// Command is one invocation of an external tool:
// Binary Globals... Args... Flags...
type Command struct {
	Binary string
	// Globals are options that must precede the subcommand words.
	Globals []Flag
	Args    []string
	Flags   []Flag
}

// New creates a command for binary with the given positional words.
// Empty words are dropped so an unset repo type does not produce an empty argument.
func New(binary string, args ...string) *Command {
	c := &Command{Binary: binary}
	for _, a := range args {
		if a != "" {
			c.Args = append(c.Args, a)
		}
	}
	return c
}

// Flag appends "--name=value".
func (c *Command) Flag(name, value string) *Command {
	c.Flags = append(c.Flags, Flag{Name: name, Value: value})
	return c
}

// OptionalFlag appends "--name=value" only when value is non-nil.
func (c *Command) OptionalFlag(name string, value *string) *Command {
	if value == nil {
		return c
	}
	return c.Flag(name, *value)
}

// Global adds an option placed before the subcommand words, emitted as "name value".
func (c *Command) Global(name, value string, secret bool) *Command {
	c.Globals = append(c.Globals, Flag{Name: name, Value: value, Separate: true, Secret: secret})
	return c
}

// SeparateFlag appends "name value" as two words.
func (c *Command) SeparateFlag(name, value string) *Command {
	c.Flags = append(c.Flags, Flag{Name: name, Value: value, Separate: true})
	return c
}

// SecretFlag appends "name value" as two words and masks the value when rendered.
func (c *Command) SecretFlag(name, value string) *Command {
	c.Flags = append(c.Flags, Flag{Name: name, Value: value, Separate: true, Secret: true})
	return c
}

// Argv returns the argument vector passed to the process, without the binary.
func (c *Command) Argv() []string {
	argv := make([]string, 0, 2*len(c.Globals)+len(c.Args)+2*len(c.Flags))
	argv = appendFlags(argv, c.Globals)
	argv = append(argv, c.Args...)
	return appendFlags(argv, c.Flags)
}

func appendFlags(argv []string, flags []Flag) []string {
	for _, f := range flags {
		if f.Separate {
			argv = append(argv, f.Name, f.Value)
			continue
		}
		argv = append(argv, f.Name+"="+f.Value)
	}
	return argv
}

// String renders the command for logs and error messages, with every flag value
// Go-quoted and secrets masked. The result is not safe to paste into a shell;
// execution always goes through Argv.
func (c *Command) String() string {
	var b strings.Builder
	b.WriteString(c.Binary)
	writeFlags(&b, c.Globals)
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	writeFlags(&b, c.Flags)
	return b.String()
}

func writeFlags(b *strings.Builder, flags []Flag) {
	for _, f := range flags {
		value := f.Value
		if f.Secret {
			value = "******"
		}
		b.WriteByte(' ')
		b.WriteString(f.Name)
		if f.Separate {
			b.WriteByte(' ')
		} else {
			b.WriteByte('=')
		}
		b.WriteString(strconv.Quote(value))
	}
}

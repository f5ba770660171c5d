package executor

import (
	"context"
	"strings"
)

// Command is a single external program invocation
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one
	Dir string
	// Shell runs Name as a script through `sh -c` and ignores Args
	Shell bool
	// ReadOnly marks a command that only inspects the machine, such as a
	// version query
	ReadOnly bool
}

// Cmd is shorthand for a plain command
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// In returns a copy of c that runs inside dir
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// AsReadOnly returns a copy of c marked as read-only
func (c Command) AsReadOnly() Command {
	c.ReadOnly = true
	return c
}

// Argv returns the program and its arguments
func (c Command) Argv() []string {
	if c.Shell {
		return []string{"sh", "-c", c.Name}
	}
	return append([]string{c.Name}, c.Args...)
}

// String renders the command the way a user would type it
func (c Command) String() string {
	if c.Shell {
		return c.Name
	}
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, arg := range c.Args {
		if arg == "" || strings.ContainsAny(arg, " \t'\"") {
			parts = append(parts, "'"+strings.ReplaceAll(arg, "'", `'\''`)+"'")
			continue
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Program is the executable name used for allow-list checks
func (c Command) Program() string {
	if c.Shell {
		fields := strings.Fields(c.Name)
		if len(fields) == 0 {
			return ""
		}
		return fields[0]
	}
	return c.Name
}

// Result is what a runner reports back
type Result struct {
	Command  Command
	ExitCode int
	Output   string
	// Skipped is true when a stub recorded the command without running it
	Skipped bool
}

// Runner executes commands and resolves programs on PATH
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
	LookPath(name string) (string, error)
}

// Echoer is told about every command before it runs
type Echoer interface {
	Command(line string)
}

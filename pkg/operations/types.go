package operations

import (
	"fmt"

	"github.com/devboot/nvboot/pkg/executor"
)

// OperationType represents the fundamental actions an install step performs
type OperationType int

const (
	// RunCommand runs an external program
	RunCommand OperationType = iota

	// MakeDir creates a directory (mkdir -p)
	MakeDir

	// CopyFile copies Source to Target
	CopyFile

	// AppendBlock appends Marker and Content to Target, creating it if missing
	AppendBlock

	// WriteFile replaces Target with Content
	WriteFile
)

func (t OperationType) String() string {
	switch t {
	case RunCommand:
		return "run"
	case MakeDir:
		return "mkdir"
	case CopyFile:
		return "copy"
	case AppendBlock:
		return "append"
	case WriteFile:
		return "write"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Operation is a single unit of work declared by a step
type Operation struct {
	Type    OperationType
	Command executor.Command // RunCommand
	Source  string           // CopyFile
	Target  string           // MakeDir, CopyFile, AppendBlock, WriteFile
	Content string           // AppendBlock, WriteFile
	// Marker is the first line of an appended block and doubles as its
	// idempotency key
	Marker string
	// SkipIfExists turns the operation into a no-op when this path exists
	SkipIfExists string
}

// OperationResult captures the outcome of one operation
type OperationResult struct {
	Operation Operation
	Success   bool
	// Skipped is true when a guard or marker made the operation a no-op, or
	// when a stub runner recorded the command instead of running it
	Skipped bool
	// Warning is true for a failed command tolerated in non-strict mode.
	// Error still holds the failure.
	Warning bool
	Message string
	Output  string
	Error   error
}

// Run declares a command
func Run(cmd executor.Command) Operation {
	return Operation{Type: RunCommand, Command: cmd}
}

// Mkdir declares a directory
func Mkdir(dir string) Operation {
	return Operation{Type: MakeDir, Target: dir}
}

// Copy declares a file copy
func Copy(src, dst string) Operation {
	return Operation{Type: CopyFile, Source: src, Target: dst}
}

// Append declares a marked block appended to target
func Append(target, marker, content string) Operation {
	return Operation{Type: AppendBlock, Target: target, Marker: marker, Content: content}
}

// Write declares a whole-file write
func Write(target, content string) Operation {
	return Operation{Type: WriteFile, Target: target, Content: content}
}

// Unless returns a copy of op guarded by path
func (op Operation) Unless(path string) Operation {
	op.SkipIfExists = path
	return op
}

// Describe renders the operation for logs and dry listings
func (op Operation) Describe() string {
	switch op.Type {
	case RunCommand:
		return op.Command.String()
	case CopyFile:
		return fmt.Sprintf("copy %s → %s", op.Source, op.Target)
	case AppendBlock:
		return fmt.Sprintf("append %q to %s", op.Marker, op.Target)
	default:
		return fmt.Sprintf("%s %s", op.Type, op.Target)
	}
}

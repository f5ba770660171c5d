package operations

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/filesystem"
	"github.com/devboot/nvboot/pkg/logging"
)

// Executor performs operations against a runner and a filesystem.
// Steps declare what they want and the executor decides whether it still
// needs doing.
type Executor struct {
	runner executor.Runner
	fs     afero.Fs
	strict bool
}

// NewExecutor creates an operation executor. In strict mode a failing
// command aborts the step; otherwise it is reported as a warning.
func NewExecutor(runner executor.Runner, fs afero.Fs, strict bool) *Executor {
	return &Executor{runner: runner, fs: fs, strict: strict}
}

// FS is the filesystem operations are performed on
func (e *Executor) FS() afero.Fs { return e.fs }

// Runner is the command runner operations are performed with
func (e *Executor) Runner() executor.Runner { return e.runner }

// Execute runs ops in order and stops at the first error
func (e *Executor) Execute(ctx context.Context, step string, ops []Operation) ([]OperationResult, error) {
	logger := logging.GetLogger("operations.executor").With().
		Str("step", step).
		Int("operation_count", len(ops)).
		Bool("strict", e.strict).
		Logger()
	done := logging.LogOperationStart(logger, step)
	defer done()

	results := make([]OperationResult, 0, len(ops))
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return results, errors.Wrap(err, errors.ErrInternal, "installation interrupted")
		}

		logger.Debug().
			Str("type", op.Type.String()).
			Str("operation", op.Describe()).
			Msg("Executing operation")

		result := e.executeOne(ctx, op)
		results = append(results, result)

		if result.Warning {
			logger.Warn().Err(result.Error).Str("operation", op.Describe()).Msg("Command failed, continuing")
			continue
		}
		if result.Error != nil {
			logger.Error().Err(result.Error).Str("operation", op.Describe()).Msg("Operation failed")
			return results, result.Error
		}
	}
	return results, nil
}

func (e *Executor) executeOne(ctx context.Context, op Operation) OperationResult {
	if op.SkipIfExists != "" && filesystem.Exists(e.fs, op.SkipIfExists) {
		return OperationResult{
			Operation: op,
			Success:   true,
			Skipped:   true,
			Message:   fmt.Sprintf("%s already present", op.SkipIfExists),
		}
	}

	switch op.Type {
	case RunCommand:
		res, err := e.runner.Run(ctx, op.Command)
		result := OperationResult{
			Operation: op,
			Success:   err == nil,
			Skipped:   res.Skipped,
			Output:    res.Output,
			Error:     err,
		}
		switch {
		case err != nil && !e.strict:
			result.Warning = true
			result.Message = fmt.Sprintf("Command failed: %s", op.Command.String())
		case err != nil:
			result.Message = fmt.Sprintf("Command failed: %s", op.Command.String())
		case res.Skipped:
			result.Message = fmt.Sprintf("Recorded: %s", op.Command.String())
		default:
			result.Message = fmt.Sprintf("Executed: %s", op.Command.String())
		}
		return result

	case MakeDir:
		if filesystem.IsDir(e.fs, op.Target) {
			return skipped(op, fmt.Sprintf("%s already present", op.Target))
		}
		return finish(op, filesystem.MkdirAll(e.fs, op.Target), fmt.Sprintf("Created %s", op.Target))

	case CopyFile:
		return finish(op, filesystem.CopyFile(e.fs, op.Source, op.Target),
			fmt.Sprintf("Copied %s to %s", op.Source, op.Target))

	case AppendBlock:
		// Either the marker or the whole content counts as already applied
		for _, needle := range []string{op.Marker, strings.TrimSpace(op.Content)} {
			if needle == "" {
				continue
			}
			present, err := filesystem.Contains(e.fs, op.Target, []byte(needle))
			if err != nil {
				return finish(op, err, "")
			}
			if present {
				return skipped(op, fmt.Sprintf("%s already contains this block", op.Target))
			}
		}
		return finish(op, filesystem.AppendFile(e.fs, op.Target, []byte(e.block(op))),
			fmt.Sprintf("Appended to %s", op.Target))

	case WriteFile:
		return finish(op, filesystem.WriteFile(e.fs, op.Target, []byte(op.Content), 0644),
			fmt.Sprintf("Wrote %s", op.Target))

	default:
		return finish(op, errors.Newf(errors.ErrInternal, "unknown operation type %d", int(op.Type)), "")
	}
}

// block renders an appended block. It starts on a fresh line so that the
// marker never glues onto an unterminated last line of the target.
func (e *Executor) block(op Operation) string {
	var b strings.Builder
	if existing, err := afero.ReadFile(e.fs, op.Target); err == nil && len(existing) > 0 &&
		!strings.HasSuffix(string(existing), "\n") {
		b.WriteString("\n")
	}
	if op.Marker != "" {
		b.WriteString(op.Marker)
		b.WriteString("\n")
	}
	b.WriteString(op.Content)
	if !strings.HasSuffix(op.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

func skipped(op Operation, message string) OperationResult {
	return OperationResult{Operation: op, Success: true, Skipped: true, Message: message}
}

func finish(op Operation, err error, message string) OperationResult {
	if err != nil {
		return OperationResult{Operation: op, Error: err}
	}
	return OperationResult{Operation: op, Success: true, Message: message}
}

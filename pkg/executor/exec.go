package executor

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/logging"
)

// ExecRunner runs commands on the host
type ExecRunner struct {
	echo   Echoer
	stream io.Writer
}

// NewExecRunner creates a runner that executes for real. echo may be nil.
func NewExecRunner(echo Echoer) *ExecRunner {
	return &ExecRunner{echo: echo}
}

// WithOutput streams the output of every command to w while it runs. The
// output is still captured in the Result.
func (r *ExecRunner) WithOutput(w io.Writer) *ExecRunner {
	r.stream = w
	return r
}

// Run executes cmd and captures its combined output
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	logger := logging.GetLogger("executor.exec")

	if r.echo != nil {
		r.echo.Command(cmd.String())
	}
	argv := cmd.Argv()
	logging.LogCommand(argv[0], argv[1:])

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	c.Dir = cmd.Dir
	// Child processes that honor NO_COLOR keep the captured output readable
	c.Env = append(os.Environ(), "NO_COLOR=1")

	var captured bytes.Buffer
	var w io.Writer = &captured
	if r.stream != nil {
		w = io.MultiWriter(&captured, r.stream)
	}
	c.Stdout = w
	c.Stderr = w

	err := c.Run()
	result := Result{Command: cmd, Output: captured.String()}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}

	logger.Debug().
		Err(err).
		Str("command", cmd.String()).
		Int("exitCode", result.ExitCode).
		Str("output", strings.TrimSpace(result.Output)).
		Msg("Command failed")

	return result, errors.Wrapf(err, errors.ErrCommandFailed, "command failed: %s", cmd.String()).
		WithDetail("exitCode", result.ExitCode).
		WithDetail("output", result.Output)
}

// LookPath resolves name on PATH
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

package executor

import (
	"context"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/devboot/nvboot/pkg/logging"
)

// StubRunner records commands instead of running them. Programs on the safe
// list are delegated to a real runner.
type StubRunner struct {
	mu       sync.Mutex
	delegate Runner
	safe     map[string]bool
	echo     Echoer
	recorded []Command
}

// NewStubRunner creates a test-mode runner. delegate runs the safe commands
// and may be nil, in which case nothing ever executes.
func NewStubRunner(delegate Runner, safe []string, echo Echoer) *StubRunner {
	s := &StubRunner{
		delegate: delegate,
		safe:     make(map[string]bool, len(safe)),
		echo:     echo,
	}
	for _, name := range safe {
		s.safe[name] = true
	}
	return s
}

// Run records cmd and delegates it when it is a read-only command of a safe
// program. Everything else, including `brew install` or `git clone`, is only
// echoed.
func (s *StubRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	s.mu.Lock()
	s.recorded = append(s.recorded, cmd)
	s.mu.Unlock()

	if s.delegate != nil && s.Passes(cmd) {
		// the delegate echoes on its own
		return s.delegate.Run(ctx, cmd)
	}

	if s.echo != nil {
		s.echo.Command(cmd.String())
	}
	logger := logging.GetLogger("executor.stub")
	logger.Debug().
		Str("command", cmd.String()).
		Str("dir", cmd.Dir).
		Msg("Recorded command without running it")

	return Result{Command: cmd, Skipped: true}, nil
}

// LookPath resolves safe programs for real. Every other program reports as
// missing so that test mode walks through all install commands.
func (s *StubRunner) LookPath(name string) (string, error) {
	if s.delegate != nil && s.IsSafe(name) {
		return s.delegate.LookPath(name)
	}
	return "", exec.ErrNotFound
}

// IsSafe reports whether the program is on the safe list. Fallback locations
// such as <sandbox>/local/bin/node are judged by their base name.
func (s *StubRunner) IsSafe(program string) bool {
	return s.safe[filepath.Base(program)]
}

// Passes reports whether cmd runs for real in test mode
func (s *StubRunner) Passes(cmd Command) bool {
	return cmd.ReadOnly && !cmd.Shell && s.IsSafe(cmd.Program())
}

// Recorded returns every command seen so far, in order
func (s *StubRunner) Recorded() []Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Command, len(s.recorded))
	copy(out, s.recorded)
	return out
}

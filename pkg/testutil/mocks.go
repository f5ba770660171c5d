package testutil

import (
	"context"
	"os/exec"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/executor"
)

// MockRunner is a testify mock for executor.Runner
type MockRunner struct {
	mock.Mock
}

// Run records the call and returns the configured result
func (m *MockRunner) Run(ctx context.Context, cmd executor.Command) (executor.Result, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(executor.Result), args.Error(1)
}

// LookPath records the call and returns the configured path
func (m *MockRunner) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// MockConfirmer is a testify mock for platform.Confirmer
type MockConfirmer struct {
	mock.Mock
}

// Confirm records the question and returns the configured answer
func (m *MockConfirmer) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

// RecordingEchoer collects echoed command lines
type RecordingEchoer struct {
	mu    sync.Mutex
	Lines []string
}

// Command appends line
func (r *RecordingEchoer) Command(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, line)
}

// FakeRunner is a scripted runner for installer tests. Programs in Installed
// resolve through LookPath and programs in Fail exit non-zero.
type FakeRunner struct {
	mu        sync.Mutex
	Installed map[string]string
	Fail      map[string]bool
	Calls     []executor.Command
}

// NewFakeRunner creates a runner where the given programs are installed
func NewFakeRunner(installed ...string) *FakeRunner {
	f := &FakeRunner{Installed: map[string]string{}, Fail: map[string]bool{}}
	for _, name := range installed {
		f.Installed[name] = "/usr/bin/" + name
	}
	return f
}

// Run records cmd and fails it when its program is listed in Fail
func (f *FakeRunner) Run(_ context.Context, cmd executor.Command) (executor.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, cmd)
	if f.Fail[cmd.Program()] {
		return executor.Result{Command: cmd, ExitCode: 1},
			errors.Newf(errors.ErrCommandFailed, "command failed: %s", cmd.String())
	}
	return executor.Result{Command: cmd}, nil
}

// LookPath reports installed programs
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Installed[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Commands renders every recorded call
func (f *FakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.String()
	}
	return out
}

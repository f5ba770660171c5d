// Package status verifies an installation and renders the result as a table.
package status

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/devboot/nvboot/pkg/config"
	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/filesystem"
	"github.com/devboot/nvboot/pkg/logging"
	"github.com/devboot/nvboot/pkg/paths"
)

// State is the outcome of a single check
type State string

const (
	StatePresent State = "present"
	StateMissing State = "missing"
)

// Check is one verified item
type Check struct {
	Name   string
	State  State
	Detail string
}

// Report is the full verification result
type Report struct {
	Checks []Check
}

// Missing lists the checks that failed
func (r Report) Missing() []Check {
	var out []Check
	for _, c := range r.Checks {
		if c.State == StateMissing {
			out = append(out, c)
		}
	}
	return out
}

// Err returns an error naming every missing item, or nil
func (r Report) Err() error {
	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, c := range missing {
		names[i] = c.Name
	}
	return errors.Newf(errors.ErrPrerequisiteMissing, "installation incomplete: %s", strings.Join(names, ", ")).
		WithDetail("missing", names)
}

// Verify inspects the locations in table and the programs runner can find
func Verify(ctx context.Context, table *paths.Table, runner executor.Runner, fs afero.Fs, cfg *config.Config) Report {
	logger := logging.GetLogger("status")

	checks := []Check{
		checkEditor(table, runner, fs, cfg.Editor.Binary),
		checkFile("config file", fs, table.Get(paths.ConfigFile)),
		checkFile("plugin manager", fs, table.Get(paths.PluginFile)),
		checkNode(ctx, table, runner, fs),
		checkProgram("ctags", runner, "ctags"),
		checkColorscheme(fs, table.Get(paths.ConfigFile), cfg.Editor.Colorscheme),
	}

	for _, c := range checks {
		logger.Debug().Str("check", c.Name).Str("state", string(c.State)).Str("detail", c.Detail).Msg("Verified")
	}
	return Report{Checks: checks}
}

func checkEditor(table *paths.Table, runner executor.Runner, fs afero.Fs, binary string) Check {
	if path, err := runner.LookPath(binary); err == nil {
		return Check{Name: "editor", State: StatePresent, Detail: path}
	}
	// Lab installs keep the AppImage in the working directory
	appImage := filepath.Join(table.Get(paths.WorkDir), binary)
	if filesystem.Exists(fs, appImage) {
		return Check{Name: "editor", State: StatePresent, Detail: appImage}
	}
	return Check{Name: "editor", State: StateMissing, Detail: binary + " not found"}
}

func checkFile(name string, fs afero.Fs, path string) Check {
	if filesystem.Exists(fs, path) {
		return Check{Name: name, State: StatePresent, Detail: path}
	}
	return Check{Name: name, State: StateMissing, Detail: path}
}

func checkProgram(name string, runner executor.Runner, program string) Check {
	if path, err := runner.LookPath(program); err == nil {
		return Check{Name: name, State: StatePresent, Detail: path}
	}
	return Check{Name: name, State: StateMissing, Detail: program + " not found"}
}

func checkNode(ctx context.Context, table *paths.Table, runner executor.Runner, fs afero.Fs) Check {
	// Run by name when node is on PATH, by location for the fallback
	program := "node"
	location, err := runner.LookPath(program)
	if err != nil {
		location = table.Get(paths.NodeBinary)
		if !filesystem.Exists(fs, location) {
			return Check{Name: "node", State: StateMissing, Detail: "node not found"}
		}
		program = location
	}

	res, err := runner.Run(ctx, executor.Cmd(program, "-v").AsReadOnly())
	if err != nil {
		return Check{Name: "node", State: StateMissing, Detail: fmt.Sprintf("%s -v failed", program)}
	}
	if version := strings.TrimSpace(res.Output); version != "" {
		return Check{Name: "node", State: StatePresent, Detail: fmt.Sprintf("%s (%s)", location, version)}
	}
	return Check{Name: "node", State: StatePresent, Detail: location}
}

func checkColorscheme(fs afero.Fs, configFile, scheme string) Check {
	line := ":colorscheme " + scheme
	ok, err := filesystem.Contains(fs, configFile, []byte(line))
	if err != nil || !ok {
		return Check{Name: "colorscheme", State: StateMissing, Detail: line}
	}
	return Check{Name: "colorscheme", State: StatePresent, Detail: scheme}
}

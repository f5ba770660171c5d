package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/devboot/nvboot/pkg/errors"
	"github.com/devboot/nvboot/pkg/logging"
	"github.com/devboot/nvboot/pkg/platform"
)

// Name is a logical path table key
type Name string

// Logical names known to the table
const (
	ConfigFile   Name = "config_file"
	ConfigFolder Name = "config_folder"
	PluginFile   Name = "plugin_file"
	NodeBinary   Name = "node_binary"
	BrewBinary   Name = "brew_binary"
	ShellRC      Name = "shell_rc"
	WorkDir      Name = "work_dir"
	StateDir     Name = "state_dir"
	LogFile      Name = "log_file"
)

// Names lists every logical name in display order
var Names = []Name{
	ConfigFile,
	ConfigFolder,
	PluginFile,
	NodeBinary,
	BrewBinary,
	ShellRC,
	WorkDir,
	StateDir,
	LogFile,
}

// Fixed locations outside the XDG tree
const (
	DefaultNodeBinary = "/usr/local/bin/node"
	DefaultBrewBinary = "/opt/homebrew/bin/brew"
	DefaultSandboxDir = "./tests"
)

// Entry is a single resolved path
type Entry struct {
	Name Name
	Path string
}

// Options tune the real table
type Options struct {
	Family platform.Family
	// Home overrides the user's home directory
	Home string
	// WorkDir is where lab downloads and the ctags checkout go; defaults to
	// the current directory
	WorkDir string
}

// Table resolves logical names to paths
type Table struct {
	entries map[Name]string
	root    string
	sandbox bool
}

// New builds the real path table
func New(opts Options) (*Table, error) {
	logger := logging.GetLogger("paths")

	home := opts.Home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine home directory")
		}
	}

	workDir := opts.WorkDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to determine working directory")
		}
	}
	workDir, err := filepath.Abs(expandHome(workDir, home))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", workDir)
	}

	configFolder := filepath.Join(xdg.ConfigHome, "nvim")
	stateDir := filepath.Join(xdg.StateHome, logging.AppName)

	t := &Table{entries: map[Name]string{
		ConfigFolder: configFolder,
		ConfigFile:   filepath.Join(configFolder, "init.vim"),
		PluginFile:   filepath.Join(xdg.DataHome, "nvim", "site", "autoload", "plug.vim"),
		NodeBinary:   DefaultNodeBinary,
		BrewBinary:   DefaultBrewBinary,
		ShellRC:      filepath.Join(home, shellRCName(opts.Family)),
		WorkDir:      workDir,
		StateDir:     stateDir,
		LogFile:      filepath.Join(stateDir, logging.AppName+".log"),
	}}

	logger.Debug().Str("home", home).Str("workDir", workDir).Msg("Resolved real path table")
	return t, nil
}

// NewSandbox builds the test-mode table rooted at root
func NewSandbox(root string, family platform.Family) (*Table, error) {
	if root == "" {
		root = DefaultSandboxDir
	}
	if err := ValidatePath(root); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for sandbox %s", root)
	}

	configFolder := filepath.Join(abs, ".config", "nvim")
	stateDir := filepath.Join(abs, "state")

	t := &Table{
		root:    abs,
		sandbox: true,
		entries: map[Name]string{
			ConfigFolder: configFolder,
			ConfigFile:   filepath.Join(configFolder, "init.vim"),
			PluginFile:   filepath.Join(abs, "plug.vim"),
			NodeBinary:   filepath.Join(abs, "local", "bin", "node"),
			BrewBinary:   filepath.Join(abs, "homebrew", "bin", "brew"),
			ShellRC:      filepath.Join(abs, shellRCName(family)),
			WorkDir:      filepath.Join(abs, "work"),
			StateDir:     stateDir,
			LogFile:      filepath.Join(stateDir, logging.AppName+".log"),
		},
	}

	logger := logging.GetLogger("paths")
	logger.Debug().Str("root", abs).Msg("Resolved sandbox path table")
	return t, nil
}

func shellRCName(family platform.Family) string {
	if family == platform.FamilyMacOS {
		return ".zshrc"
	}
	return ".bashrc"
}

// Get returns the path for name, or "" for an unknown name
func (t *Table) Get(name Name) string {
	return t.entries[name]
}

// All returns every entry in display order
func (t *Table) All() []Entry {
	out := make([]Entry, 0, len(Names))
	for _, name := range Names {
		out = append(out, Entry{Name: name, Path: t.entries[name]})
	}
	return out
}

// Sandbox reports whether this is the test-mode table
func (t *Table) Sandbox() bool { return t.sandbox }

// Root is the sandbox root, empty for the real table
func (t *Table) Root() string { return t.root }

// Validate checks every entry. Sandbox entries must stay inside the root.
func (t *Table) Validate() error {
	for _, e := range t.All() {
		if err := ValidatePath(e.Path); err != nil {
			if be, ok := err.(*errors.BootError); ok {
				be.WithDetail("name", string(e.Name))
			}
			return err
		}
		if !filepath.IsAbs(e.Path) {
			return errors.Newf(errors.ErrInvalidInput, "path for %s is not absolute: %s", e.Name, e.Path).
				WithDetail("name", string(e.Name))
		}
		if t.sandbox && !IsWithin(t.root, e.Path) {
			return errors.Newf(errors.ErrPathEscape, "%s escapes the sandbox: %s", e.Name, e.Path).
				WithDetail("name", string(e.Name)).
				WithDetail("path", e.Path).
				WithDetail("root", t.root)
		}
	}
	return nil
}

// Set overrides a single entry. Validate reports an entry that leaves the
// sandbox.
func (t *Table) Set(name Name, path string) {
	t.entries[name] = path
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

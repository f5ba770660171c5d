package installer

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
	"github.com/devboot/nvboot/pkg/operations"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
)

// Reporter receives the user-facing progress messages
type Reporter interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
	Warning(format string, args ...interface{})
}

// Options configure an Installer
type Options struct {
	Config  *config.Config
	Paths   *paths.Table
	Context platform.Context
	Runner  executor.Runner
	FS      afero.Fs
	// Reporter may be nil
	Reporter Reporter
	// Source overrides editor.config_source
	Source string
	// Strict overrides install.strict when true
	Strict bool
}

// Step is one named stage of the install
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Installer runs the install steps for one variant
type Installer struct {
	env     Env
	variant Variant
	runner  executor.Runner
	fs      afero.Fs
	exec    *operations.Executor
	report  Reporter
	source  string
}

// New creates an installer for the variant matching the context's platform
func New(opts Options) (*Installer, error) {
	if opts.Config == nil || opts.Paths == nil || opts.Runner == nil || opts.FS == nil {
		return nil, errors.New(errors.ErrInternal, "installer needs a config, a path table, a runner and a filesystem")
	}

	variant, err := NewVariant(opts.Context.Host.Family)
	if err != nil {
		return nil, err
	}

	report := opts.Reporter
	if report == nil {
		report = nopReporter{}
	}

	lab := opts.Context.Lab
	if lab && variant.Family() == platform.FamilyMacOS {
		// Homebrew installs without root, so there is nothing to work around
		report.Warning("Lab mode only changes the Linux install; continuing with Homebrew")
		lab = false
	}

	source := opts.Source
	if source == "" {
		source = opts.Config.Editor.ConfigSource
	}

	strict := opts.Strict || opts.Config.Install.Strict

	return &Installer{
		env:     Env{Config: opts.Config, Paths: opts.Paths, Lab: lab},
		variant: variant,
		runner:  opts.Runner,
		fs:      opts.FS,
		exec:    operations.NewExecutor(opts.Runner, opts.FS, strict),
		report:  report,
		source:  source,
	}, nil
}

// Variant is the platform variant in use
func (i *Installer) Variant() Variant { return i.variant }

// Lab reports whether the no-root branch is active
func (i *Installer) Lab() bool { return i.env.Lab }

// Steps returns the install steps in execution order
func (i *Installer) Steps() []Step {
	var steps []Step
	for _, p := range i.variant.Preflight(i.env) {
		steps = append(steps, i.prerequisiteStep(p))
	}

	steps = append(steps,
		i.prerequisiteStep(Prerequisite{
			Step: "check_node", Label: "Node", Program: "node", Args: []string{"-v"}, Fallback: paths.NodeBinary,
		}),
		i.prerequisiteStep(Prerequisite{
			Step: "check_git", Label: "Git", Program: "git", Args: []string{"--version"},
		}),
		Step{Name: "install_editor", Run: i.installEditor},
		Step{Name: "copy_config", Run: i.copyConfig},
		Step{Name: "install_plugin_manager", Run: i.installPluginManager},
	)

	if i.env.Lab {
		steps = append(steps, Step{Name: "add_aliases", Run: i.addAliases})
	} else {
		steps = append(steps, Step{Name: "install_ctags", Run: i.installCtags})
	}

	return append(steps,
		Step{Name: "install_plugins", Run: i.installPlugins},
		Step{Name: "finalize", Run: i.finalize},
	)
}

// Install runs every step and aborts at the first failure
func (i *Installer) Install(ctx context.Context) error {
	logger := logging.GetLogger("installer").With().
		Str("variant", i.variant.Name()).
		Bool("lab", i.env.Lab).
		Bool("sandbox", i.env.Paths.Sandbox()).
		Logger()

	if err := i.env.Paths.Validate(); err != nil {
		return err
	}

	i.report.Info("Starting installation...")
	for _, step := range i.Steps() {
		logger.Debug().Str("step", step.Name).Msg("Running step")
		if err := step.Run(ctx); err != nil {
			logger.Error().Err(err).Str("step", step.Name).Msg("Step failed")
			return err
		}
	}
	logger.Info().Msg("Installation finished")
	return nil
}

// prerequisiteStep checks that a program answers. A program missing from
// PATH is looked up at its fallback location from the path table.
func (i *Installer) prerequisiteStep(p Prerequisite) Step {
	return Step{Name: p.Step, Run: func(ctx context.Context) error {
		i.report.Info("Checking for %s installation...", strings.ToLower(p.Label))

		missing := errors.Newf(errors.ErrPrerequisiteMissing,
			"%s is not installed. Please install %s before continuing.", p.Label, strings.ToLower(p.Label)).
			WithDetail("program", p.Program)

		program := p.Program
		if _, err := i.runner.LookPath(program); err != nil {
			fallback := ""
			if p.Fallback != "" {
				fallback = i.env.Paths.Get(p.Fallback)
			}
			if fallback == "" || !filesystem.Exists(i.fs, fallback) {
				return missing
			}
			logger := logging.GetLogger("installer")
			logger.Debug().
				Str("program", program).
				Str("fallback", fallback).
				Msg("Program not on PATH, using fallback location")
			program = fallback
		}

		if _, err := i.runner.Run(ctx, executor.Cmd(program, p.Args...).AsReadOnly()); err != nil {
			missing.Wrapped = err
			return missing
		}

		i.report.Success("%s is installed", p.Label)
		return nil
	}}
}

func (i *Installer) installEditor(ctx context.Context) error {
	i.report.Info("Installing nvim...")

	if !i.env.Lab {
		if path, err := i.runner.LookPath(i.env.Config.Editor.Binary); err == nil {
			i.report.Success("nvim is already installed at %s", path)
			return nil
		}
	}

	if err := i.execute(ctx, "install_editor", i.variant.EditorOps(i.env)); err != nil {
		return err
	}
	i.report.Success("Installed nvim")
	return nil
}

func (i *Installer) copyConfig(ctx context.Context) error {
	i.report.Info("Copying nvim config...")

	configFile := i.env.Paths.Get(paths.ConfigFile)
	ops := []operations.Operation{operations.Mkdir(i.env.Paths.Get(paths.ConfigFolder))}

	if !filesystem.Exists(i.fs, configFile) {
		ops = append(ops, operations.Copy(i.source, configFile))
	} else {
		content, err := afero.ReadFile(i.fs, i.source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "failed to read config source %s", i.source).
				WithDetail("path", i.source)
		}
		marker := fmt.Sprintf(`" nvboot: %s`, filepath.Base(i.source))
		ops = append(ops, operations.Append(configFile, marker, string(content)))
	}

	if err := i.execute(ctx, "copy_config", ops); err != nil {
		return err
	}
	i.report.Success("Copied nvim config")
	return nil
}

func (i *Installer) installPluginManager(ctx context.Context) error {
	i.report.Info("Installing vim-plug...")

	pluginFile := i.env.Paths.Get(paths.PluginFile)
	ops := []operations.Operation{
		operations.Run(executor.Cmd("curl", "-fLo", pluginFile, "--create-dirs", i.env.Config.PluginManager.URL)).
			Unless(pluginFile),
	}
	if err := i.execute(ctx, "install_plugin_manager", ops); err != nil {
		return err
	}
	i.report.Success("Installed vim-plug")
	return nil
}

func (i *Installer) addAliases(ctx context.Context) error {
	i.report.Info("Adding aliases to your shell rc file...")

	rc := i.env.Paths.Get(paths.ShellRC)
	if !filesystem.Exists(i.fs, rc) {
		if err := i.execute(ctx, "add_aliases", []operations.Operation{operations.Write(rc, "")}); err != nil {
			return err
		}
		i.report.Success("Created shell rc file at %s", rc)
	}

	editor := i.variant.EditorBinary(i.env)
	block := fmt.Sprintf("alias nvim='%s'\nalias nv='%s'\n", editor, editor)
	if err := i.execute(ctx, "add_aliases", []operations.Operation{
		operations.Append(rc, "# Nvim aliases", block),
	}); err != nil {
		return err
	}
	i.report.Success("Added aliases")
	return nil
}

func (i *Installer) installCtags(ctx context.Context) error {
	i.report.Info("Installing ctags...")

	if path, err := i.runner.LookPath("ctags"); err == nil {
		i.report.Success("ctags is already installed at %s", path)
		return nil
	}

	if err := i.execute(ctx, "install_ctags", i.variant.CtagsOps(i.env)); err != nil {
		return err
	}
	i.report.Success("Installed ctags")
	return nil
}

func (i *Installer) installPlugins(ctx context.Context) error {
	i.report.Info("Installing nvim plugins...")

	editor := i.variant.EditorBinary(i.env)
	ops := []operations.Operation{
		operations.Run(executor.Cmd(editor, "--headless", "+PlugInstall", "+qall")),
	}
	if !i.env.Lab {
		for _, ext := range i.env.Config.Editor.CocExtensions {
			ops = append(ops, operations.Run(executor.Cmd(editor, "--headless", "+CocInstall "+ext, "+qall")))
		}
	}

	if err := i.execute(ctx, "install_plugins", ops); err != nil {
		return err
	}
	i.report.Success("Installed nvim plugins")
	return nil
}

func (i *Installer) finalize(ctx context.Context) error {
	scheme := i.env.Config.Editor.Colorscheme
	i.report.Info("Setting colorscheme...")

	op := operations.Append(i.env.Paths.Get(paths.ConfigFile),
		fmt.Sprintf(`" nvboot: colorscheme %s`, scheme),
		":colorscheme "+scheme)
	if err := i.execute(ctx, "finalize", []operations.Operation{op}); err != nil {
		return err
	}
	i.report.Success("Set colorscheme to %s", scheme)
	return nil
}

// execute runs ops and reports tolerated command failures
func (i *Installer) execute(ctx context.Context, step string, ops []operations.Operation) error {
	results, err := i.exec.Execute(ctx, step, ops)
	for _, r := range results {
		if r.Warning {
			i.report.Warning("%s (continuing)", r.Message)
		}
	}
	return err
}

type nopReporter struct{}

func (nopReporter) Info(string, ...interface{})    {}
func (nopReporter) Success(string, ...interface{}) {}
func (nopReporter) Warning(string, ...interface{}) {}

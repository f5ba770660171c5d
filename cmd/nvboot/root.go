package nvboot

import (
	"embed"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/devboot/nvboot/internal/version"
	"github.com/devboot/nvboot/pkg/cobrax/topics"
	"github.com/devboot/nvboot/pkg/config"
	"github.com/devboot/nvboot/pkg/executor"
	"github.com/devboot/nvboot/pkg/logging"
	"github.com/devboot/nvboot/pkg/paths"
	"github.com/devboot/nvboot/pkg/platform"
	"github.com/devboot/nvboot/pkg/ui"
	"github.com/devboot/nvboot/pkg/ui/output"
)

//go:embed topics/*.md
var topicsFS embed.FS

// Deps are the host-facing collaborators of the CLI
type Deps struct {
	DetectHost func() (platform.Host, error)
	// NewRunner builds the runner for real commands. Command output is
	// streamed to output.
	NewRunner func(echo executor.Echoer, output io.Writer) executor.Runner
	FS        afero.Fs
	Stdin     io.Reader
}

// DefaultDeps talks to the real machine
func DefaultDeps() Deps {
	return Deps{
		DetectHost: platform.DetectHost,
		NewRunner: func(echo executor.Echoer, output io.Writer) executor.Runner {
			return executor.NewExecRunner(echo).WithOutput(output)
		},
		FS:    afero.NewOsFs(),
		Stdin: os.Stdin,
	}
}

// app holds the state shared between the root command and its subcommands
type app struct {
	deps Deps

	verbosity  int
	test       bool
	sandbox    string
	configPath string

	cfg *config.Config
	out *output.Reporter
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(DefaultDeps())
}

// NewRootCmdWithDeps creates the root command with injected collaborators
func NewRootCmdWithDeps(deps Deps) *cobra.Command {
	a := &app{deps: deps}
	install := &installFlags{}

	rootCmd := &cobra.Command{
		Use:     "nvboot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgInstallExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand means install
			return a.runInstall(cmd, install)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&a.test, "test", false, MsgFlagTest)
	rootCmd.PersistentFlags().StringVar(&a.sandbox, "sandbox", "", MsgFlagSandbox)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	bindInstallFlags(rootCmd.Flags(), install)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newInstallCmd(a))
	rootCmd.AddCommand(newStatusCmd(a))
	rootCmd.AddCommand(newPathsCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(ui.DetectFormat(os.Stdout) == ui.FormatText),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration and starts logging. In test mode the log
// file lives inside the sandbox.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		logging.SetupLogger(a.verbosity)
		return err
	}
	if err := cfg.Validate(); err != nil {
		logging.SetupLogger(a.verbosity)
		return err
	}
	a.cfg = cfg

	if a.sandbox == "" {
		a.sandbox = cfg.Test.SandboxRoot
	}

	if a.test {
		root, err := filepath.Abs(a.sandbox)
		if err != nil {
			root = a.sandbox
		}
		logging.SetupLoggerWithFile(a.verbosity, filepath.Join(root, "state", logging.AppName+".log"))
	} else {
		logging.SetupLogger(a.verbosity)
	}

	w := cmd.OutOrStdout()
	a.out = output.NewReporter(w, ui.DetectFormat(w))

	log.Debug().
		Str("command", cmd.Name()).
		Bool("test", a.test).
		Str("sandbox", a.sandbox).
		Msg("Command started")
	return nil
}

// pathTable returns the sandbox table in test mode and the real one otherwise
func (a *app) pathTable(family platform.Family, workDir string) (*paths.Table, error) {
	if a.test {
		return paths.NewSandbox(a.sandbox, family)
	}
	return paths.New(paths.Options{Family: family, WorkDir: workDir})
}

// runner wraps the real runner in a recording stub in test mode
func (a *app) runner() executor.Runner {
	base := a.deps.NewRunner(a.out, a.out.Writer())
	if a.test {
		return executor.NewStubRunner(base, a.cfg.Test.SafeCommands, a.out)
	}
	return base
}

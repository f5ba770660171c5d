package nvboot

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/devboot/nvboot/pkg/installer"
	"github.com/devboot/nvboot/pkg/platform"
	"github.com/devboot/nvboot/pkg/status"
	"github.com/devboot/nvboot/pkg/ui/confirmations"
)

type installFlags struct {
	lab     bool
	yes     bool
	strict  bool
	source  string
	workDir string
}

// bindInstallFlags registers the install flags on fs. The root command and
// the install subcommand share them.
func bindInstallFlags(fs *pflag.FlagSet, f *installFlags) {
	fs.BoolVar(&f.lab, "dcu", false, MsgFlagLab)
	fs.BoolVar(&f.lab, "lab", false, MsgFlagLab)
	fs.BoolVarP(&f.yes, "yes", "y", false, MsgFlagYes)
	fs.BoolVar(&f.strict, "strict", false, MsgFlagStrict)
	fs.StringVar(&f.source, "source", "", MsgFlagSource)
	fs.StringVar(&f.workDir, "work-dir", "", MsgFlagWorkDir)
	_ = fs.MarkHidden("lab")
}

func newInstallCmd(a *app) *cobra.Command {
	f := &installFlags{}
	cmd := &cobra.Command{
		Use:     "install",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd, f)
		},
	}
	bindInstallFlags(cmd.Flags(), f)
	return cmd
}

func (a *app) runInstall(cmd *cobra.Command, f *installFlags) error {
	host, err := a.deps.DetectHost()
	if err != nil {
		return err
	}

	if a.test {
		a.out.Warning(MsgTestMode)
	}

	confirmer := confirmations.NewConsoleConfirmer(a.deps.Stdin, cmd.OutOrStdout())
	pctx, err := platform.CheckContext(host, platform.ContextOptions{
		Lab:         f.lab,
		LabPatterns: a.cfg.Lab.HostPatterns,
		AssumeYes:   f.yes,
		Test:        a.test,
	}, confirmer)
	if err != nil {
		return err
	}
	if pctx.LabDetected {
		a.out.Muted("Lab host %s detected", host.Hostname)
	}

	table, err := a.pathTable(host.Family, f.workDir)
	if err != nil {
		return err
	}
	runner := a.runner()

	inst, err := installer.New(installer.Options{
		Config:   a.cfg,
		Paths:    table,
		Context:  pctx,
		Runner:   runner,
		FS:       a.deps.FS,
		Reporter: a.out,
		Source:   f.source,
		Strict:   f.strict,
	})
	if err != nil {
		return err
	}

	if err := inst.Install(cmd.Context()); err != nil {
		return err
	}
	a.out.Success(MsgInstallComplete)

	if !a.test {
		return nil
	}

	// The sandbox table is informational; missing entries do not fail the run
	a.out.Info(MsgVerifySandbox)
	report := status.Verify(cmd.Context(), table, runner, a.deps.FS, a.cfg)
	return status.Render(a.out.Writer(), report, a.out.Style)
}

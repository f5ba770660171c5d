package nvboot

import (
	"github.com/spf13/cobra"

	"github.com/devboot/nvboot/pkg/status"
)

func newStatusCmd(a *app) *cobra.Command {
	var workDir string
	cmd := &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, err := a.deps.DetectHost()
			if err != nil {
				return err
			}
			table, err := a.pathTable(host.Family, workDir)
			if err != nil {
				return err
			}

			report := status.Verify(cmd.Context(), table, a.runner(), a.deps.FS, a.cfg)
			if err := status.Render(a.out.Writer(), report, a.out.Style); err != nil {
				return err
			}
			return report.Err()
		},
	}
	cmd.Flags().StringVar(&workDir, "work-dir", "", MsgFlagWorkDir)
	return cmd
}

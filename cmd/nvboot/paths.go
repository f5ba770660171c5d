package nvboot

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newPathsCmd(a *app) *cobra.Command {
	var workDir string
	cmd := &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		GroupID: "misc",
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

			data := pterm.TableData{{
				a.out.Style("TableHeader", "Name"),
				a.out.Style("TableHeader", "Path"),
			}}
			for _, e := range table.All() {
				data = append(data, []string{string(e.Name), a.out.Style("FilePath", e.Path)})
			}

			rendered, err := pterm.DefaultTable.
				WithHasHeader().
				WithHeaderStyle(pterm.NewStyle()).
				WithSeparatorStyle(pterm.NewStyle()).
				WithData(data).
				Srender()
			if err != nil {
				return err
			}
			_, err = a.out.Writer().Write([]byte(rendered + "\n"))
			return err
		},
	}
	cmd.Flags().StringVar(&workDir, "work-dir", "", MsgFlagWorkDir)
	return cmd
}

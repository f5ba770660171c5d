package nvboot

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devboot/nvboot/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var defaults bool
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprintln(out, config.DefaultsContent())
				return err
			}

			data, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

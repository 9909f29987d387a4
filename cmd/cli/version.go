package cli

import (
	"fmt"

	"github.com/ostclient/ost/pkg/logging"
	"github.com/ostclient/ost/pkg/version"
	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			logging.Debug("version requested", "short", short, "commit", info.Commit)
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.ShortString())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.String())
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")

	return cmd
}

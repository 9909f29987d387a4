package cli

import (
	"github.com/ostclient/ost/pkg/logging"
	"github.com/ostclient/ost/pkg/version"
	"github.com/spf13/cobra"
)

// Options holds the global flags.
type Options struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	Channel    string
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCommand()

// NewRootCommand builds the ost command tree. Running it without a
// subcommand starts the TUI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "ost",
		Short:         "Terminal chat client",
		Long:          `ost is a terminal chat client with a compose box, a live debug log pane and a keyboard help overlay.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetGlobalLogger(newCLILogger(opts))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	// Global flags available to all commands
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/ost/config.toml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug level)")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "quiet output (errors only)")
	cmd.PersistentFlags().StringVar(&opts.Channel, "channel", "", "channel to open")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	cmd.AddCommand(NewTUICommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// newCLILogger picks the stderr logger for commands that run outside the TUI.
func newCLILogger(opts *Options) logging.Logger {
	switch {
	case opts.Quiet:
		return logging.NewQuietLogger()
	case opts.Verbose:
		return logging.NewVerboseLogger()
	}
	return logging.NewDefaultLogger()
}

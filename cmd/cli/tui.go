package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/ostclient/ost/cmd/di"
	"github.com/ostclient/ost/cmd/tui/helpers"
	"github.com/ostclient/ost/pkg/logcapture"
	"github.com/ostclient/ost/pkg/logging"
	"github.com/spf13/cobra"
)

var ErrNotTerminal = errors.New("ost needs an interactive terminal on stdout")

// isTerminal is swapped out in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func NewTUICommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *Options) error {
	if !isTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}

	h, err := loadHelpers(opts)
	if err != nil {
		return err
	}
	config := h.Config.GetConfig()

	var tee io.Writer
	if file := logging.OpenDebugFileFromEnv(); file != nil {
		defer file.Close()
		tee = file
	}

	logBuffer := logcapture.NewLogBuffer()
	logger := newSessionLogger(logBuffer, resolveLogLevel(opts, config), tee)
	logging.SetGlobalLogger(logger)
	// Nothing may write to the terminal underneath the TUI.
	log.SetOutput(io.Discard)

	app, err := di.InjectTUI(h, logBuffer)
	if err != nil {
		return fmt.Errorf("failed to initialize TUI: %w", err)
	}
	logging.Info("starting tui", "channel", config.Channel, "level", resolveLogLevel(opts, config).String())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Start(ctx)
}

func loadHelpers(opts *Options) (*helpers.Helpers, error) {
	h, err := helpers.NewHelpers(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.Channel != "" {
		if err := h.Config.UpdateConfig(func(c *helpers.Config) { c.Channel = opts.Channel }, false); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// resolveLogLevel applies --quiet and --verbose over the configured level,
// which already carries any OST_LOG_LEVEL override.
func resolveLogLevel(opts *Options, config *helpers.Config) slog.Level {
	switch {
	case opts.Quiet:
		return slog.LevelError
	case opts.Verbose:
		return slog.LevelDebug
	}
	return logging.ParseLevel(config.LogLevel, slog.LevelInfo)
}

// newSessionLogger captures records into buf, tagging each with an id unique
// to this run.
func newSessionLogger(buf *logcapture.LogBuffer, level slog.Level, tee io.Writer) logging.Logger {
	return logging.NewCaptureLogger(buf, level, tee).With("session", uuid.NewString())
}

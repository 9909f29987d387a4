package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ostclient/ost/pkg/logcapture"
)

// LevelTrace sits below slog.LevelDebug and renders as TRACE in line format.
const LevelTrace = slog.Level(-8)

// Logger interface for dependency injection and testing
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
	SetLevel(level slog.Level)
}

// Config holds logger configuration
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

// Format represents the output format
type Format int

const (
	FormatText Format = iota
	// FormatLine writes one "<time> <LEVEL> <msg> key=value" line per record,
	// the layout the debug log pane knows how to colorize.
	FormatLine
)

type slogLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	level := new(slog.LevelVar)
	level.Set(config.Level)

	return &slogLogger{
		logger: slog.New(newHandler(config, level)),
		level:  level,
	}
}

func newHandler(config Config, level *slog.LevelVar) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		}
	}

	switch config.Format {
	case FormatLine:
		return newLineHandler(config.Output, level, config.AddTime)
	default:
		return slog.NewTextHandler(config.Output, opts)
	}
}

// NewDefaultLogger creates a logger with sensible defaults for CLI tools
func NewDefaultLogger() Logger {
	return NewLogger(Config{
		Level:   slog.LevelInfo,
		Format:  FormatText,
		Output:  os.Stderr,
		AddTime: false,
	})
}

// NewQuietLogger creates a logger that only shows errors
func NewQuietLogger() Logger {
	return NewLogger(Config{
		Level:   slog.LevelError,
		Format:  FormatText,
		Output:  os.Stderr,
		AddTime: false,
	})
}

// NewVerboseLogger creates a logger that shows debug information
func NewVerboseLogger() Logger {
	return NewLogger(Config{
		Level:   slog.LevelDebug,
		Format:  FormatText,
		Output:  os.Stderr,
		AddTime: false,
	})
}

// NewCaptureLogger creates a logger for TUI mode. Every record is written
// through a fresh writer obtained from maker, which is closed once the record
// is written. When tee is non-nil the same lines are also copied there.
func NewCaptureLogger(maker logcapture.WriterMaker, level slog.Level, tee io.Writer) Logger {
	var out io.Writer = recordWriter{maker: maker}
	if tee != nil {
		out = io.MultiWriter(out, tee)
	}
	return NewLogger(Config{
		Level:   level,
		Format:  FormatLine,
		Output:  out,
		AddTime: true,
	})
}

// recordWriter opens one writer per Write call, mirroring a write session per record.
type recordWriter struct {
	maker logcapture.WriterMaker
}

func (w recordWriter) Write(p []byte) (int, error) {
	lw := w.maker.MakeWriter()
	n, err := lw.Write(p)
	_ = lw.Close()
	return n, err
}

// ParseLevel converts a level name to a slog.Level. Unknown names yield fallback.
func ParseLevel(name string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// OpenDebugFileFromEnv opens OST_DEBUG_FILE for appending when it is set.
// It returns nil when the variable is unset or the file cannot be opened.
func OpenDebugFileFromEnv() *os.File {
	path := os.Getenv("OST_DEBUG_FILE")
	if path == "" {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil
	}
	return file
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a logger with additional attributes
func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{
		logger: l.logger.With(args...),
		level:  l.level,
	}
}

// WithGroup returns a logger with a group name
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{
		logger: l.logger.WithGroup(name),
		level:  l.level,
	}
}

// SetLevel updates the level of this logger and every logger derived from it.
func (l *slogLogger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

var globalLogger Logger = NewDefaultLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	return globalLogger
}

func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	globalLogger.Info(msg, args...)
}

// NewComponentLogger returns the global logger tagged with a component name.
func NewComponentLogger(component string) Logger {
	return globalLogger.With("component", component)
}

// LogError logs err under msg together with any extra attributes.
func LogError(logger Logger, msg string, err error, args ...any) {
	allArgs := append(args, "error", err)
	logger.Error(msg, allArgs...)
}

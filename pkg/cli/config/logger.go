package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/mattn/go-isatty"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Logger holds CLI flags for the process logger
type Logger struct {
	level  string
	format string
	output string
}

// Flags returns CLI flags for logger configuration
func (x *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Category:    "Logging",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("CONSTRISK_LOG_LEVEL"),
			Destination: &x.level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Category:    "Logging",
			Usage:       "Log format (console, json)",
			Value:       "console",
			Sources:     cli.EnvVars("CONSTRISK_LOG_FORMAT"),
			Destination: &x.format,
		},
		&cli.StringFlag{
			Name:        "log-output",
			Category:    "Logging",
			Usage:       "Log output (stdout, stderr, or file path)",
			Value:       "stdout",
			Sources:     cli.EnvVars("CONSTRISK_LOG_OUTPUT"),
			Destination: &x.output,
		},
	}
}

// LogValue implements slog.LogValuer
func (x Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", x.level),
		slog.String("format", x.format),
		slog.String("output", x.output),
	)
}

// Redactor returns the attribute filter applied to every log record. Fields
// tagged `masq:"secret"` and fields named Email are redacted.
func Redactor() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithFieldName("Email"),
	)
}

// Configure builds the logger and installs it as the process default. The
// returned function releases the output file if one was opened.
func (x *Logger) Configure() (func(), error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(x.level)); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "invalid log level", goerr.V(LogLevelKey, x.level))
	}

	closer := func() {}
	var w io.Writer
	switch x.output {
	case "", "stdout", "-":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		// #nosec G304 - path is provided by the operator
		f, err := os.OpenFile(x.output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", x.output))
		}
		w = f
		closer = func() {
			if err := f.Close(); err != nil {
				logging.Default().Error("failed to close log file", "error", err)
			}
		}
	}

	handler, err := x.newHandler(w, level)
	if err != nil {
		closer()
		return nil, err
	}

	logging.SetDefault(slog.New(handler))
	return closer, nil
}

func (x *Logger) newHandler(w io.Writer, level slog.Level) (slog.Handler, error) {
	switch strings.ToLower(x.format) {
	case "console", "":
		return clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(isTerminal(w)),
			clog.WithReplaceAttr(Redactor()),
		), nil

	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: Redactor(),
		}), nil

	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "invalid log format", goerr.V(LogFormatKey, x.format))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

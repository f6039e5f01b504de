package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const sentryFlushTimeout = 2 * time.Second

// Sentry holds configuration for server error reporting
type Sentry struct {
	dsn string
	env string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Category:    "Error reporting",
			Usage:       "Sentry DSN; server errors are reported when set",
			Sources:     cli.EnvVars("CONSTRISK_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Category:    "Error reporting",
			Usage:       "Sentry environment name",
			Value:       "production",
			Sources:     cli.EnvVars("CONSTRISK_SENTRY_ENV"),
			Destination: &s.env,
		},
	}
}

// IsConfigured reports whether a DSN was given
func (s *Sentry) IsConfigured() bool {
	return s.dsn != ""
}

// LogValue implements slog.LogValuer. The DSN is never logged.
func (s Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("enabled", s.dsn != ""),
		slog.String("env", s.env),
	)
}

// Configure initialises the Sentry client. Without a DSN it does nothing.
// The returned function flushes buffered events.
func (s *Sentry) Configure(release string) (func(), error) {
	if s.dsn == "" {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() {
		sentry.Flush(sentryFlushTimeout)
	}, nil
}

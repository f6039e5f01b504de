package cli

import (
	"context"

	"github.com/secmon-lab/constrisk/pkg/cli/config"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	if err := newApp(version).Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

func newApp(version string) *cli.Command {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var closers []func()

	flags := loggerCfg.Flags()
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "constrisk",
		Usage:   "Construction project risk prediction service",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			closeLog, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, closeLog)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting constrisk",
				"logger", loggerCfg,
				"sentry", sentryCfg,
			)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Release in reverse order so the logger outlives the flush.
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdPredict(),
			cmdValidate(),
		},
	}
}

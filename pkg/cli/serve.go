package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/constrisk/pkg/cli/config"
	httpctrl "github.com/secmon-lab/constrisk/pkg/controller/http"
	"github.com/secmon-lab/constrisk/pkg/service/metrics"
	"github.com/secmon-lab/constrisk/pkg/usecase"
	"github.com/secmon-lab/constrisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var addr string
	var enableMetrics bool
	var scoringCfg config.Scoring

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CONSTRISK_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "metrics",
			Usage:       "Expose Prometheus metrics on /metrics",
			Value:       true,
			Sources:     cli.EnvVars("CONSTRISK_METRICS"),
			Destination: &enableMetrics,
		},
	}
	flags = append(flags, scoringCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := scoringCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure scorer")
			}

			ucOpts := []usecase.Option{
				usecase.WithScorer(s),
			}
			var httpOpts []httpctrl.Options

			if enableMetrics {
				recorder, err := metrics.New()
				if err != nil {
					return goerr.Wrap(err, "failed to initialize metrics")
				}
				ucOpts = append(ucOpts, usecase.WithRecorder(recorder))
				httpOpts = append(httpOpts, httpctrl.WithMetrics(recorder.Handler()))
			}

			uc := usecase.New(ucOpts...)
			httpOpts = append(httpOpts, httpctrl.WithContact(uc.Contact))

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc.Prediction, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, server)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts the server down
// gracefully.
func runServer(ctx context.Context, server *http.Server) error {
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logging.Default().Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return goerr.Wrap(err, "failed to start server", goerr.V("addr", server.Addr))
		}
		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()
		logging.Default().Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return goerr.Wrap(err, "failed to shutdown server gracefully")
		}

		logging.Default().Info("Server shutdown completed")
		return nil
	})

	return eg.Wait()
}

package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-petr/mcba-ledger/cmd/httpserver"
	"github.com/go-petr/mcba-ledger/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and run the bill payment scheduler",
	Long: `Serve the HTTP API and run the bill payment scheduler until SIGINT or SIGTERM.

On shutdown the server stops accepting requests and a bill payment cycle in
flight is finished before the process exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	config, logger, store, closeStore, err := setup()
	if err != nil {
		return err
	}

	defer closeLogged(logger, closeStore)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(store, logger, config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = logger.WithContext(ctx)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sched := scheduler.New(server.BillPays, scheduler.WithInterval(config.BillPayPollInterval))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("address", srv.Addr).Str("store", config.StoreDriver).Msg("MCBA LEDGER SERVER HAS STARTED")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		return sched.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}

	logger.Info().Msg("server stopped")

	return nil
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/macexpect"
	httpAdapter "github.com/aretw0/macexpect/pkg/adapters/http"
	"github.com/aretw0/macexpect/pkg/adapters/memory"
	"github.com/aretw0/macexpect/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Serves expectations as JSON over HTTP:

  GET  /v1/expectation   default model, query parameters override it
  POST /v1/expectation   JSON model in the body
  GET  /v1/model         default model
  GET  /metrics          Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			collector := metrics.New(reg)

			opts := []macexpect.Option{macexpect.WithLifecycleHooks(collector.Hooks())}
			if addr, _ := cmd.Flags().GetString("redis"); addr == "" {
				opts = append(opts, macexpect.WithStore(memory.NewStore()))
			}
			analyzer, _, err := setup(cmd, opts...)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           httpAdapter.NewHandler(analyzer, reg, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				logger.Info("starting macexpect server", "address", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-serverErrors:
				return err
			case <-ctx.Done():
				logger.Info("shutdown signal received")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Warn("graceful shutdown did not complete", "error", err)
					return srv.Close()
				}
				if err := <-serverErrors; err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				logger.Info("server stopped gracefully")
				return nil
			}
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	return cmd
}

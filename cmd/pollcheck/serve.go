package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/go_poll_forecast/internal/adapters/httpapi"
	"github.com/spf13/cobra"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation and tallying over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			checker, log, err := a.newChecker()
			if err != nil {
				return err
			}
			defer checker.Close()

			cfg := httpapi.Config{
				ReadTimeout:    a.v.GetDuration("read_timeout"),
				WriteTimeout:   a.v.GetDuration("write_timeout"),
				MaxRequestSize: a.v.GetInt("max_request_size"),
				Concurrency:    a.v.GetInt("concurrency"),
				Compress:       a.v.GetBool("compress"),
			}
			port := a.v.GetInt("port")
			server := httpapi.NewServer(httpapi.NewHandler(log, checker), cfg)

			idleConnsClosed := make(chan struct{})
			go func() {
				sigint := make(chan os.Signal, 1)
				signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
				<-sigint

				log.Info("Shutting down server...")
				if err := server.Shutdown(); err != nil {
					log.Error("Error during server shutdown", "error", err)
				}
				close(idleConnsClosed)
			}()

			addr := fmt.Sprintf(":%d", port)
			log.Info("Server listening", "address", addr, "compress", cfg.Compress)
			if err := server.ListenAndServe(addr); err != nil {
				return fmt.Errorf("server error: %w", err)
			}

			<-idleConnsClosed
			log.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().Int("port", httpapi.DefaultPort, "HTTP server port")
	cmd.Flags().Duration("read-timeout", httpapi.DefaultReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", httpapi.DefaultWriteTimeout, "HTTP write timeout")
	cmd.Flags().Int("max-request-size", httpapi.DefaultMaxRequestSize, "Maximum request size in bytes")
	cmd.Flags().Int("concurrency", httpapi.DefaultConcurrency, "Maximum concurrent connections (0 = fasthttp default)")
	cmd.Flags().Bool("compress", false, "Compress responses (brotli, gzip, deflate)")

	_ = a.v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = a.v.BindPFlag("read_timeout", cmd.Flags().Lookup("read-timeout"))
	_ = a.v.BindPFlag("write_timeout", cmd.Flags().Lookup("write-timeout"))
	_ = a.v.BindPFlag("max_request_size", cmd.Flags().Lookup("max-request-size"))
	_ = a.v.BindPFlag("concurrency", cmd.Flags().Lookup("concurrency"))
	_ = a.v.BindPFlag("compress", cmd.Flags().Lookup("compress"))
	return cmd
}

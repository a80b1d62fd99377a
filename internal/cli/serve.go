package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/docweave/docweave/internal/api"
	"github.com/docweave/docweave/internal/config"
	"github.com/docweave/docweave/internal/corpus"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve <directory>",
	Short: "Serve corpus records and the rendered index over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("directory not found: %s", root)
		}

		log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		cfg := config.Load()
		scanner := newScanner(cfg, nil, nil)
		scanner.Log = log

		srv := api.NewServer(func(ctx context.Context) ([]corpus.Record, error) {
			return scanner.Scan(ctx, root)
		}, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := srv.Refresh(ctx); err != nil {
			return fmt.Errorf("initial scan: %w", err)
		}

		httpServer := &http.Server{
			Addr:         serveAddr,
			Handler:      srv,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			<-ctx.Done()
			log.Info("shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			httpServer.Shutdown(shutdownCtx)
		}()

		log.Info("starting docweave server", "addr", serveAddr, "root", root)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8090", "Listen address")

	rootCmd.AddCommand(serveCmd)
}

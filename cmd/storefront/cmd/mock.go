package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/api"
	"github.com/donaldgifford/storefront-sync/internal/storefront"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

func mockCmd() *cobra.Command {
	var (
		addr     string
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve the reference storefront",
		Long: "Serve an in-memory storefront with a demo catalog, per-session carts and\n" +
			"favorites, and a newsletter, speaking the same endpoints and markup the\n" +
			"other commands drive.",
		Example: `  storefront mock
  storefront mock --addr 127.0.0.1:9000 &
  storefront --base-url http://127.0.0.1:9000 browse`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

			renderer, err := storefront.NewRenderer(cfg.Catalog.Currency)
			if err != nil {
				return err
			}
			store := storefront.New(storefront.WithPageSize(pageSize))

			e := api.NewServer(store, renderer, log, Version).Echo()
			e.Server.ReadTimeout = cfg.Server.ReadTimeout
			e.Server.WriteTimeout = cfg.Server.WriteTimeout

			if addr == "" {
				addr = cfg.Server.Addr()
			}
			log.Info("starting storefront", "addr", addr)

			errCh := make(chan error, 1)
			go func() {
				if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			ctx := cmd.Context()
			select {
			case <-ctx.Done():
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("serving storefront: %w", err)
				}
			}

			log.Info("shutting down storefront")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down storefront: %w", err)
			}

			log.Info("storefront stopped",
				"sessions", len(store.Sessions()),
				"subscribers", len(store.Subscribers()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.host:server.port)")
	cmd.Flags().IntVar(&pageSize, "page-size", storefront.DefaultPageSize, "products per listing page")

	return cmd
}

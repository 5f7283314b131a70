package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/storefront-sync/internal/catalog"
	"github.com/donaldgifford/storefront-sync/internal/counter"
)

func watchCmd() *cobra.Command {
	var (
		path        string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep a page open and refresh its badges periodically",
		Long: "Open a page session and refresh the cart and favorites badges every\n" +
			"counter.refresh_interval until interrupted. Client metrics are served\n" +
			"on --metrics-addr.",
		Example: `  storefront watch
  storefront watch --path /cart/ --metrics-addr 127.0.0.1:9090`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return openPage(ctx, path, func(a *app, s *catalog.Session) error {
				addr := metricsAddr
				if addr == "" {
					addr = a.cfg.Server.Addr()
				}

				e := echo.New()
				e.HideBanner = true
				e.HidePort = true
				e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

				go func() {
					a.log.Info("serving metrics", "addr", addr)
					if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
						a.log.Error("metrics server error", "error", err)
					}
				}()

				sched, err := counter.NewScheduler(ctx, s, a.cfg.Counter.RefreshInterval, a.log)
				if err != nil {
					return err
				}
				sched.Start()
				a.log.Info("watching", "path", path, "interval", a.cfg.Counter.RefreshInterval)

				<-ctx.Done()
				<-sched.Stop().Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := e.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutting down metrics server: %w", err)
				}

				snap, err := s.Snapshot(shutdownCtx)
				if err != nil {
					return err
				}
				tw := newTabWriter(cmd.OutOrStdout())
				printBadges(tw, snap)
				return tw.finish()
			})
		},
	}

	cmd.Flags().StringVar(&path, "path", "/products/", "page to keep open")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "metrics listen address (default server.host:server.port)")

	return cmd
}

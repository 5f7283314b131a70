// Package cmd implements the storefront CLI commands.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/config"
	"github.com/donaldgifford/storefront-sync/internal/tracing"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "Drive a storefront's interactive pages from the terminal",
		Long: "storefront loads storefront pages and drives their widgets the way a\n" +
			"shopper would: filtering the catalog, adding to the cart, toggling\n" +
			"favorites, and subscribing to the newsletter. It can also serve a\n" +
			"reference storefront to practice against.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (YAML); built-in defaults apply when omitted")
	rootCmd.PersistentFlags().
		String("base-url", "", "storefront base URL (overrides storefront.base_url)")
	rootCmd.PersistentFlags().
		String("cookies", "", "Cookie header resuming a shopper session (see 'storefront session')")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		String("log-format", "", "log format override (text, json)")
	rootCmd.PersistentFlags().
		String("otlp-endpoint", "", "OTLP gRPC endpoint for traces; tracing is off when empty")

	for _, name := range []string{"base-url", "cookies", "output", "log-level", "log-format", "otlp-endpoint"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}

	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(cartCmd())
	rootCmd.AddCommand(wishlistCmd())
	rootCmd.AddCommand(subscribeCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(mockCmd())
	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetEnvPrefix("STOREFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadConfig reads the config file, or the defaults, and applies flag and
// STOREFRONT_* environment overrides.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default("")
	}

	if v := viper.GetString("base-url"); v != "" {
		cfg.Storefront.BaseURL = v
	}
	if v := viper.GetString("cookies"); v != "" {
		cfg.Storefront.Cookies = v
	}
	if v := viper.GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := viper.GetString("log-format"); v != "" {
		cfg.Logging.Format = v
	}
	if v := viper.GetString("otlp-endpoint"); v != "" {
		cfg.Tracing.Endpoint = v
	}
	return cfg, nil
}

// app is what every storefront-facing command needs.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	client   *client.Client
	shutdown tracing.ShutdownFunc
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	tp, shutdown, err := tracing.Init(ctx, tracing.Config{
		Endpoint:       cfg.Tracing.Endpoint,
		ServiceName:    cfg.Tracing.ServiceName,
		ServiceVersion: Version,
		SampleRate:     cfg.Tracing.SampleRate,
		Insecure:       cfg.Tracing.Insecure,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	c, err := client.New(cfg.Storefront.BaseURL, cfg.ClientOptions(log, tp)...)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("creating storefront client: %w", err)
	}
	return &app{cfg: cfg, log: log, client: c, shutdown: shutdown}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil {
		a.log.Warn("flushing traces", "error", err)
	}
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}

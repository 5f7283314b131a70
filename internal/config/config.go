// Package config handles loading and validating the storefront-sync
// configuration from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

// Config is the top-level application configuration.
type Config struct {
	Storefront StorefrontConfig `yaml:"storefront"`
	Client     ClientConfig     `yaml:"client"`
	Toast      ToastConfig      `yaml:"toast"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Counter    CounterConfig    `yaml:"counter"`
	Server     ServerConfig     `yaml:"server"`
	Tracing    TracingConfig    `yaml:"tracing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// StorefrontConfig locates the storefront and its anti-forgery contract.
type StorefrontConfig struct {
	BaseURL    string           `yaml:"base_url"`
	Endpoints  client.Endpoints `yaml:"endpoints"`
	CSRFCookie string           `yaml:"csrf_cookie"`
	CSRFHeader string           `yaml:"csrf_header"`
	Cookies    string           `yaml:"cookies"` // Cookie header seeded into the jar
}

// ClientConfig defines Remote Action Client settings.
type ClientConfig struct {
	Timeout   time.Duration   `yaml:"timeout"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Breaker   BreakerConfig   `yaml:"breaker"`
}

// RateLimitConfig defines client-side request pacing.
type RateLimitConfig struct {
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// BreakerConfig defines the circuit breaker around storefront calls.
type BreakerConfig struct {
	MaxRequests  uint32        `yaml:"max_requests"`
	Interval     time.Duration `yaml:"interval"`
	Timeout      time.Duration `yaml:"timeout"`
	FailureRatio float64       `yaml:"failure_ratio"`
	MinRequests  uint32        `yaml:"min_requests"`
}

// ToastConfig defines toast presentation.
type ToastConfig struct {
	Container string        `yaml:"container"`
	Visible   time.Duration `yaml:"visible"`
	Fade      time.Duration `yaml:"fade"`
	FadeClass string        `yaml:"fade_class"`
}

// CatalogConfig defines the interactive catalog controller.
type CatalogConfig struct {
	Debounce     time.Duration     `yaml:"debounce"` // negative disables debouncing
	Currency     string            `yaml:"currency"`
	WishlistPath string            `yaml:"wishlist_path"`
	Selectors    catalog.Selectors `yaml:"selectors"`
	Messages     catalog.Messages  `yaml:"messages"`
}

// CounterConfig defines badge refresh behavior.
type CounterConfig struct {
	CartBadge       string        `yaml:"cart_badge"`
	WishlistBadge   string        `yaml:"wishlist_badge"`
	MaxRetries      uint64        `yaml:"max_retries"`
	RetryDelay      time.Duration `yaml:"retry_delay"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// ServerConfig defines the Echo HTTP server used by the reference storefront
// and the metrics endpoint.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// Addr returns host:port.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TracingConfig defines the OTLP trace exporter. Tracing is off when
// Endpoint is empty.
type TracingConfig struct {
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"service_name"`
	SampleRate  float64 `yaml:"sample_rate"`
	Insecure    bool    `yaml:"insecure"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes, applying defaults and validation.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration pointed at baseURL with every default
// applied.
func Default(baseURL string) *Config {
	cfg := &Config{Storefront: StorefrontConfig{BaseURL: baseURL}}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	applyStorefrontDefaults(&cfg.Storefront)
	applyClientDefaults(&cfg.Client)
	applyToastDefaults(&cfg.Toast)
	applyCatalogDefaults(&cfg.Catalog)
	applyCounterDefaults(&cfg.Counter)
	applyServerDefaults(&cfg.Server)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyStorefrontDefaults(s *StorefrontConfig) {
	if s.BaseURL == "" {
		s.BaseURL = "http://localhost:8080"
	}
	d := client.DefaultEndpoints()
	fill(&s.Endpoints.CartAdd, d.CartAdd)
	fill(&s.Endpoints.CartRemove, d.CartRemove)
	fill(&s.Endpoints.CartCount, d.CartCount)
	fill(&s.Endpoints.WishlistToggle, d.WishlistToggle)
	fill(&s.Endpoints.WishlistCount, d.WishlistCount)
	fill(&s.Endpoints.Subscribe, d.Subscribe)
	fill(&s.Endpoints.Catalog, d.Catalog)
	fill(&s.CSRFCookie, client.DefaultCSRFCookie)
	fill(&s.CSRFHeader, client.DefaultCSRFHeader)
}

func applyClientDefaults(c *ClientConfig) {
	if c.Timeout == 0 {
		c.Timeout = 15 * time.Second
	}
	if c.RateLimit.PerSecond == 0 {
		c.RateLimit.PerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
	d := client.DefaultBreakerConfig("")
	if c.Breaker.MaxRequests == 0 {
		c.Breaker.MaxRequests = d.MaxRequests
	}
	if c.Breaker.Interval == 0 {
		c.Breaker.Interval = d.Interval
	}
	if c.Breaker.Timeout == 0 {
		c.Breaker.Timeout = d.Timeout
	}
	if c.Breaker.FailureRatio == 0 {
		c.Breaker.FailureRatio = d.FailureRatio
	}
	if c.Breaker.MinRequests == 0 {
		c.Breaker.MinRequests = d.MinRequests
	}
}

func applyToastDefaults(t *ToastConfig) {
	fill(&t.Container, "#toast-container")
	fill(&t.FadeClass, "toast-fading")
	if t.Visible == 0 {
		t.Visible = 3 * time.Second
	}
	if t.Fade == 0 {
		t.Fade = 500 * time.Millisecond
	}
}

func applyCatalogDefaults(c *CatalogConfig) {
	if c.Debounce < 0 {
		c.Debounce = 0
	} else if c.Debounce == 0 {
		c.Debounce = 300 * time.Millisecond
	}
	fill(&c.Currency, "BYN")
	fill(&c.WishlistPath, "/favorite/")
	c.Selectors = c.Selectors.WithDefaults()
	c.Messages = c.Messages.WithDefaults()
}

func applyCounterDefaults(c *CounterConfig) {
	fill(&c.CartBadge, "#cart-qty")
	fill(&c.WishlistBadge, "#favorite-count")
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 200 * time.Millisecond
	}
	if c.RefreshInterval == 0 {
		c.RefreshInterval = 30 * time.Second
	}
}

func applyServerDefaults(s *ServerConfig) {
	fill(&s.Host, "127.0.0.1")
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyTracingDefaults(t *TracingConfig) {
	fill(&t.ServiceName, "storefront-sync")
	if t.SampleRate == 0 {
		t.SampleRate = 1
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	fill(&l.Level, "info")
	fill(&l.Format, "text")
}

func fill(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func validate(cfg *Config) error {
	var errs []error

	errs = append(errs, validateStorefront(&cfg.Storefront)...)

	if cfg.Client.Timeout < 0 {
		errs = append(errs, errors.New("client.timeout must not be negative"))
	}
	if cfg.Client.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("client.rate_limit.per_second must not be negative"))
	}
	if cfg.Client.RateLimit.Burst < 0 {
		errs = append(errs, errors.New("client.rate_limit.burst must not be negative"))
	}
	if r := cfg.Client.Breaker.FailureRatio; r <= 0 || r > 1 {
		errs = append(errs, fmt.Errorf("client.breaker.failure_ratio must be in (0, 1], got %v", r))
	}

	if cfg.Toast.Visible < 0 || cfg.Toast.Fade < 0 {
		errs = append(errs, errors.New("toast durations must not be negative"))
	}

	if cfg.Counter.RefreshInterval < time.Second {
		errs = append(errs, fmt.Errorf(
			"counter.refresh_interval must be at least 1s, got %s", cfg.Counter.RefreshInterval))
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port))
	}

	if r := cfg.Tracing.SampleRate; r < 0 || r > 1 {
		errs = append(errs, fmt.Errorf("tracing.sample_rate must be in [0, 1], got %v", r))
	}

	errs = append(errs, validateLogging(&cfg.Logging)...)

	return errors.Join(errs...)
}

func validateStorefront(s *StorefrontConfig) []error {
	var errs []error
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("storefront.base_url must be an absolute URL, got %q", s.BaseURL))
	}
	for _, ep := range []struct{ name, path string }{
		{"cart_add", s.Endpoints.CartAdd},
		{"cart_remove", s.Endpoints.CartRemove},
		{"cart_count", s.Endpoints.CartCount},
		{"wishlist_toggle", s.Endpoints.WishlistToggle},
		{"wishlist_count", s.Endpoints.WishlistCount},
		{"subscribe", s.Endpoints.Subscribe},
		{"catalog", s.Endpoints.Catalog},
	} {
		if !strings.HasPrefix(ep.path, "/") {
			errs = append(errs, fmt.Errorf("storefront.endpoints.%s must start with /, got %q", ep.name, ep.path))
		}
	}
	return errs
}

func validateLogging(l *LoggingConfig) []error {
	var errs []error
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", l.Level))
	}
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", l.Format))
	}
	return errs
}

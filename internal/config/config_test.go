package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/storefront-sync/internal/api/client"
	"github.com/donaldgifford/storefront-sync/internal/catalog"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
storefront:
  base_url: https://shop.example.com
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://shop.example.com", cfg.Storefront.BaseURL)
				assert.Equal(t, client.DefaultEndpoints(), cfg.Storefront.Endpoints)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `{}`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "http://localhost:8080", cfg.Storefront.BaseURL)
				assert.Equal(t, "csrftoken", cfg.Storefront.CSRFCookie)
				assert.Equal(t, "X-CSRFToken", cfg.Storefront.CSRFHeader)
				assert.Equal(t, 15*time.Second, cfg.Client.Timeout)
				assert.InDelta(t, 10.0, cfg.Client.RateLimit.PerSecond, 0.001)
				assert.Equal(t, 20, cfg.Client.RateLimit.Burst)
				assert.Equal(t, uint32(5), cfg.Client.Breaker.MinRequests)
				assert.InDelta(t, 0.5, cfg.Client.Breaker.FailureRatio, 0.001)
				assert.Equal(t, 3*time.Second, cfg.Toast.Visible)
				assert.Equal(t, 500*time.Millisecond, cfg.Toast.Fade)
				assert.Equal(t, "#toast-container", cfg.Toast.Container)
				assert.Equal(t, 300*time.Millisecond, cfg.Catalog.Debounce)
				assert.Equal(t, "BYN", cfg.Catalog.Currency)
				assert.Equal(t, "/favorite/", cfg.Catalog.WishlistPath)
				assert.Equal(t, catalog.DefaultSelectors(), cfg.Catalog.Selectors)
				assert.Equal(t, catalog.DefaultMessages(), cfg.Catalog.Messages)
				assert.Equal(t, "#cart-qty", cfg.Counter.CartBadge)
				assert.Equal(t, "#favorite-count", cfg.Counter.WishlistBadge)
				assert.Equal(t, uint64(3), cfg.Counter.MaxRetries)
				assert.Equal(t, 30*time.Second, cfg.Counter.RefreshInterval)
				assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
				assert.Equal(t, "storefront-sync", cfg.Tracing.ServiceName)
				assert.Empty(t, cfg.Tracing.Endpoint)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "partial overrides keep remaining defaults",
			yaml: `
storefront:
  endpoints:
    cart_add: /api/cart/add
catalog:
  currency: EUR
  selectors:
    product_list: "#grid"
  messages:
    cart_added: "In the bag"
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "/api/cart/add", cfg.Storefront.Endpoints.CartAdd)
				assert.Equal(t, "/cart/remove/", cfg.Storefront.Endpoints.CartRemove)
				assert.Equal(t, "EUR", cfg.Catalog.Currency)
				assert.Equal(t, "#grid", cfg.Catalog.Selectors.ProductList)
				assert.Equal(t, "#pagination", cfg.Catalog.Selectors.Pagination)
				assert.Equal(t, "In the bag", cfg.Catalog.Messages.CartAdded)
				assert.Equal(t, catalog.DefaultMessages().Unreachable, cfg.Catalog.Messages.Unreachable)
			},
		},
		{
			name: "negative debounce disables it",
			yaml: `
catalog:
  debounce: -1s
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, time.Duration(0), cfg.Catalog.Debounce)
			},
		},
		{
			name: "env var substitution",
			yaml: `
storefront:
  base_url: "${TEST_STOREFRONT_URL}"
  cookies: "sessionid=${TEST_SESSION_ID}"
`,
			envVars: map[string]string{
				"TEST_STOREFRONT_URL": "https://shop.test",
				"TEST_SESSION_ID":     "abc123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "https://shop.test", cfg.Storefront.BaseURL)
				assert.Equal(t, "sessionid=abc123", cfg.Storefront.Cookies)
			},
		},
		{
			name: "relative base url",
			yaml: `
storefront:
  base_url: shop.test/products
`,
			wantErr: "storefront.base_url must be an absolute URL",
		},
		{
			name: "endpoint without leading slash",
			yaml: `
storefront:
  endpoints:
    catalog: products/ajax/
`,
			wantErr: "storefront.endpoints.catalog must start with /",
		},
		{
			name: "failure ratio out of range",
			yaml: `
client:
  breaker:
    failure_ratio: 1.5
`,
			wantErr: "client.breaker.failure_ratio must be in (0, 1]",
		},
		{
			name: "refresh interval too short",
			yaml: `
counter:
  refresh_interval: 100ms
`,
			wantErr: "counter.refresh_interval must be at least 1s",
		},
		{
			name: "invalid server port",
			yaml: `
server:
  port: 70000
`,
			wantErr: "server.port must be between 1 and 65535",
		},
		{
			name: "invalid sample rate",
			yaml: `
tracing:
  sample_rate: 2
`,
			wantErr: "tracing.sample_rate must be in [0, 1]",
		},
		{
			name: "invalid log level",
			yaml: `
logging:
  level: verbose
`,
			wantErr: "logging.level must be debug, info, warn, or error",
		},
		{
			name: "invalid log format",
			yaml: `
logging:
  format: xml
`,
			wantErr: "logging.format must be text or json",
		},
		{
			name:    "invalid yaml",
			yaml:    "storefront: [",
			wantErr: "parsing config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			cfg, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
storefront:
  base_url: nope
logging:
  level: loud
  format: xml
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storefront.base_url")
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "logging.format")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default("http://127.0.0.1:9000")
	require.NoError(t, validate(cfg))
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Storefront.BaseURL)
	assert.Equal(t, 300*time.Millisecond, cfg.Catalog.Debounce)
}

func TestClientOptions(t *testing.T) {
	t.Parallel()

	cfg := Default("http://shop.test")
	cfg.Storefront.Endpoints.Catalog = "/catalog/ajax/"
	cfg.Storefront.Cookies = "csrftoken=abc"

	c, err := client.New(cfg.Storefront.BaseURL, cfg.ClientOptions(nil, nil)...)
	require.NoError(t, err)
	assert.Equal(t, "/catalog/ajax/", c.Endpoints().Catalog)
	token, ok := c.CSRFToken()
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}

func TestSession(t *testing.T) {
	t.Parallel()

	cfg := Default("http://shop.test")
	cfg.Counter.CartBadge = "#basket"

	sc := cfg.Session(nil)
	assert.Equal(t, "#basket", sc.CartBadge)
	assert.Equal(t, "#favorite-count", sc.WishlistBadge)
	assert.Len(t, sc.Controller, 5)
	assert.Len(t, sc.Toaster, 3)
	assert.Len(t, sc.Counter, 1)
}

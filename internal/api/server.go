// Package api assembles the reference storefront's HTTP server: the JSON
// endpoints behind the synchronizer's calls, the HTML pages it attaches to,
// metrics, and health probes.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/storefront-sync/api/openapi"
	"github.com/donaldgifford/storefront-sync/internal/api/handlers"
	"github.com/donaldgifford/storefront-sync/internal/api/middleware"
	"github.com/donaldgifford/storefront-sync/internal/storefront"
	"github.com/donaldgifford/storefront-sync/pkg/logger"
)

// Server is the reference storefront.
type Server struct {
	echo *echo.Echo
	api  huma.API
}

// NewServer wires the storefront routes and middleware around store.
func NewServer(store *storefront.Store, renderer *storefront.Renderer, log *slog.Logger, version string) *Server {
	if log == nil {
		log = logger.Discard()
	}
	log = logger.Component(log, "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	e.Use(middleware.Session())
	e.Use(middleware.CSRF())

	health := handlers.NewHealthHandler(store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handlers.RegisterPageRoutes(e, handlers.NewPageHandler(store, renderer))

	humaCfg := huma.DefaultConfig("Storefront", version)
	humaCfg.Info.Description = "Reference storefront serving the cart, wishlist, newsletter, and catalog endpoints."
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)
	openapi.RegisterRoutes(e, api.OpenAPI())

	handlers.RegisterCartRoutes(api, handlers.NewCartHandler(store))
	handlers.RegisterWishlistRoutes(api, handlers.NewWishlistHandler(store))
	handlers.RegisterNewsletterRoutes(api, handlers.NewNewsletterHandler(store))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(store, renderer))

	return &Server{echo: e, api: api}
}

// Echo returns the underlying router, for starting, stopping, or serving
// the storefront in tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// OpenAPI returns the generated API description.
func (s *Server) OpenAPI() *huma.OpenAPI {
	return s.api.OpenAPI()
}

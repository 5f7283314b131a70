// Package openapi serves the storefront's generated OpenAPI 3.1 description
// and a Swagger UI page for browsing it.
package openapi

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Storefront API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds Swagger UI and OpenAPI document endpoints to the Echo
// instance. The document is rendered from oapi on each request, so routes
// registered after this call are included.
func RegisterRoutes(e *echo.Echo, oapi *huma.OpenAPI) {
	e.GET("/swagger/swagger.json", serveDocument(oapi.MarshalJSON, "application/json"))
	e.GET("/swagger/swagger.yaml", serveDocument(oapi.YAML, "application/yaml"))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveDocument(render func() ([]byte, error), contentType string) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := render()
		if err != nil {
			return c.String(http.StatusInternalServerError, "rendering OpenAPI document failed")
		}
		return c.Blob(http.StatusOK, contentType, data)
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}

package handler

import (
	"path/filepath"

	"menudash/config"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	Config *config.Config
}

// PageHandler serves the prebuilt dashboard and public menu pages.
type PageHandler struct {
	root string
}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{root: params.Config.Web.Root}
}

// Enabled reports whether a web root is configured.
func (h *PageHandler) Enabled() bool {
	return h.root != ""
}

// Root is the directory static assets are served from.
func (h *PageHandler) Root() string {
	return h.root
}

// Page returns a handler serving <root>/<name>/index.html.
func (h *PageHandler) Page(name string) echo.HandlerFunc {
	file := filepath.Join(h.root, name, "index.html")

	return func(c echo.Context) error {
		return c.File(file)
	}
}

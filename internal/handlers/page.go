package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/financeiro/internal/middleware"
	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/web/templates/layouts"
)

// PageHandler renders a single registered page inside the base layout.
type PageHandler struct {
	appName string
	page    pageregistry.Page
}

// NewPageHandler creates a PageHandler for page. appName goes into the document title.
func NewPageHandler(appName string, page pageregistry.Page) *PageHandler {
	return &PageHandler{appName: appName, page: page}
}

// ForPage returns a handler builder for pageregistry.Registry.Mount.
func ForPage(appName string) func(pageregistry.Page) echo.HandlerFunc {
	return func(page pageregistry.Page) echo.HandlerFunc {
		return NewPageHandler(appName, page).Get
	}
}

// Get handles the GET request for the page.
func (h *PageHandler) Get(c echo.Context) error {
	middleware.FromContext(c.Request().Context()).Debug("rendering page", "path", h.page.Path)

	finalComponent := layouts.Page(h.appName, h.page.Title, h.page.Content())

	// The name is ignored by the universal renderer; the component goes in data.
	return c.Render(http.StatusOK, "", finalComponent)
}

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/financeiro/internal/handlers"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.HealthGet)

	s.Pages.Mount(s.E, handlers.ForPage(s.Cfg.AppName))

	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, CashFlowPath)
	})
}

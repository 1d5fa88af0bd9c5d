package server

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/financeiro/internal/config"
	appmw "github.com/nfrund/financeiro/internal/middleware"
	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/internal/rendering"
	"github.com/nfrund/financeiro/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Pages    *pageregistry.Registry
	Renderer *rendering.UniversalRenderer
}

// New creates a new Server. Routes are added by RegisterRoutes.
func New(cfg *config.Config) (*Server, error) {
	reg, err := NewPageRegistry()
	if err != nil {
		return nil, fmt.Errorf("register pages: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// Clients are identified by the connection address. Forwarding headers are
	// client-controlled and would let anyone dodge the rate limit.
	e.IPExtractor = echo.ExtractIPDirect()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.Logger)
	e.Use(appmw.AccessLog())
	if cfg.RateLimit > 0 {
		e.Use(appmw.RateLimiter(cfg.RateLimit))
	}

	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	setupErrorHandling(e)

	// Static assets are embedded in the binary.
	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:        e,
		Cfg:      cfg,
		Pages:    reg,
		Renderer: renderer,
	}, nil
}

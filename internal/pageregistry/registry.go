// Package pageregistry keeps track of the pages the application serves and
// mounts them on an echo router.
package pageregistry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

var (
	ErrInvalidPage   = errors.New("invalid page")
	ErrDuplicatePath = errors.New("page path already registered")
)

var validate = validator.New()

// Page is a navigable location in the application.
type Page struct {
	// Path is the absolute URL path the page is mounted at.
	Path string `validate:"required,startswith=/"`
	// Title is used for the document title.
	Title string `validate:"required"`
	// Content builds the page body. It must not depend on request state.
	Content func() gomponents.Node `validate:"required"`
}

// Router is the subset of *echo.Echo and *echo.Group used to mount pages.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Registry holds pages keyed by path. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]Page
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{pages: make(map[string]Page)}
}

// Register adds a page.
func (r *Registry) Register(p Page) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPage, p.Path, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[p.Path]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePath, p.Path)
	}
	r.pages[p.Path] = p
	return nil
}

// RegisterAll registers pages in order and stops at the first failure.
func (r *Registry) RegisterAll(pages ...Page) error {
	for _, p := range pages {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the page mounted at path.
func (r *Registry) Lookup(path string) (Page, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pages[path]
	return p, ok
}

// Pages returns every registered page sorted by path.
func (r *Registry) Pages() []Page {
	r.mu.RLock()
	out := make([]Page, 0, len(r.pages))
	for _, p := range r.pages {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Mount registers a GET route for every page, using handlerFor to build each handler.
func (r *Registry) Mount(router Router, handlerFor func(Page) echo.HandlerFunc) {
	for _, p := range r.Pages() {
		router.GET(p.Path, handlerFor(p))
	}
}

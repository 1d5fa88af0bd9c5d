package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface,
// so page content built with gomponents can be handed to templ layouts and the renderer.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component. Gomponents does not use the context.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
// Gomponents' Render has no context parameter, so the context is captured when the
// adapter is built.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements gomponents.Node.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node bound to ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}

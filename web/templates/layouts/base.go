package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/financeiro/internal/view"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// DefaultAppName is used in page titles when no application name is configured.
const DefaultAppName = "Financeiro"

// Language is the document language of every page.
var Language = language.BrazilianPortuguese

// Base wraps page content in the full HTML document shared by every page.
// The content is rendered with the request context passed to the returned component.
func Base(appName, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(CalculateTitle(appName, title), view.AdaptTemplToGomponent(ctx, content)).Render(w)
	})
}

func document(documentTitle string, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang(Language.String()),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(documentTitle)),
				g.Link(g.Rel("stylesheet"), g.Href("/static/app.css")),
			),
			g.Body(
				hx.Boost("true"),
				g.Class("min-h-screen bg-background text-foreground"),
				g.Main(content),
			),
		),
	)
}

// Page wraps gomponents page content in the base layout.
func Page(appName, title string, content cmp.Node) templ.Component {
	return Base(appName, title, view.AdaptGomponentToTempl(content))
}

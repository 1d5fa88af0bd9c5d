package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	CashFlowTitle   = "Fluxo de Caixa"
	CashFlowCaption = "Acompanhe entradas e saídas por período."
)

// CashFlowContent is the main content of the cash flow page: a padded container
// with the page heading and a muted caption. It takes no input and always
// produces the same markup.
func CashFlowContent() cmp.Node {
	return g.Div(
		g.Class("p-6"),
		g.H1(
			g.Class("text-2xl font-semibold"),
			cmp.Text(CashFlowTitle),
		),
		g.P(
			g.Class("text-muted-foreground"),
			cmp.Text(CashFlowCaption),
		),
	)
}

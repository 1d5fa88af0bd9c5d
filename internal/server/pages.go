package server

import (
	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/web/templates/pages"
)

// CashFlowPath is where the cash flow page is mounted.
const CashFlowPath = "/financeiro/fluxo-de-caixa"

// AppPages is the central list of pages served by the application.
var AppPages = []pageregistry.Page{
	{
		Path:    CashFlowPath,
		Title:   pages.CashFlowTitle,
		Content: pages.CashFlowContent,
	},
}

// NewPageRegistry returns a registry holding AppPages.
func NewPageRegistry() (*pageregistry.Registry, error) {
	reg := pageregistry.New()
	if err := reg.RegisterAll(AppPages...); err != nil {
		return nil, err
	}
	return reg, nil
}

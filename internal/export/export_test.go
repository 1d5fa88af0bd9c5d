package export

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/internal/rendering"
	"github.com/nfrund/financeiro/web/templates/pages"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

var cashFlow = pageregistry.Page{
	Path:    "/financeiro/fluxo-de-caixa",
	Title:   pages.CashFlowTitle,
	Content: pages.CashFlowContent,
}

func TestExporter_Export(t *testing.T) {
	fs := afero.NewMemMapFs()
	x := New(fs, rendering.NewUniversalRenderer(), "Financeiro")

	target, err := x.Export(context.Background(), cashFlow, "out")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("out", "financeiro", "fluxo-de-caixa", "index.html"), target)

	data, err := afero.ReadFile(fs, target)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, `<h1 class="text-2xl font-semibold">Fluxo de Caixa</h1>`)
	assert.Contains(t, html, "Acompanhe entradas e saídas por período.")
	assert.Contains(t, html, "<title>Fluxo de Caixa - Financeiro</title>")
}

func TestExporter_RenderIsStable(t *testing.T) {
	x := New(afero.NewMemMapFs(), rendering.NewUniversalRenderer(), "Financeiro")

	first, err := x.Render(context.Background(), cashFlow)
	require.NoError(t, err)
	second, err := x.Render(context.Background(), cashFlow)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExporter_ExportAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	x := New(fs, rendering.NewUniversalRenderer(), "Financeiro")
	other := pageregistry.Page{
		Path:    "/sobre",
		Title:   "Sobre",
		Content: func() gomponents.Node { return g.P(gomponents.Text("sobre")) },
	}

	written, err := x.ExportAll(context.Background(), []pageregistry.Page{cashFlow, other}, "site")
	require.NoError(t, err)
	require.Len(t, written, 2)

	for _, path := range written {
		exists, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, exists, path)
	}
}

func TestExporter_ExportAll_Cancelled(t *testing.T) {
	x := New(afero.NewMemMapFs(), rendering.NewUniversalRenderer(), "Financeiro")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	written, err := x.ExportAll(ctx, []pageregistry.Page{cashFlow}, "site")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, written)
}

func TestExporter_WriteFailure(t *testing.T) {
	x := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), rendering.NewUniversalRenderer(), "Financeiro")

	_, err := x.Export(context.Background(), cashFlow, "out")
	assert.Error(t, err)
}

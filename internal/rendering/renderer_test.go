package rendering

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/financeiro/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestUniversalRenderer_RenderComponent(t *testing.T) {
	r := NewUniversalRenderer()
	node := g.P(cmp.Text("saídas"))

	t.Run("gomponents node", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), node)
		require.NoError(t, err)
		assert.Equal(t, "<p>saídas</p>", string(out))
	})

	t.Run("templ component", func(t *testing.T) {
		out, err := r.RenderComponent(context.Background(), view.AdaptGomponentToTempl(node))
		require.NoError(t, err)
		assert.Equal(t, "<p>saídas</p>", string(out))
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := r.RenderComponent(context.Background(), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported component type: int")
	})
}

func TestUniversalRenderer_EchoIntegration(t *testing.T) {
	e := echo.New()
	r := NewUniversalRenderer()
	e.Renderer = r

	e.GET("/render", func(c echo.Context) error {
		return c.Render(http.StatusOK, "", g.H1(cmp.Text("Fluxo de Caixa")))
	})
	e.GET("/page", func(c echo.Context) error {
		return r.RenderPage(c, http.StatusAccepted, g.H1(cmp.Text("Fluxo de Caixa")))
	})
	e.GET("/broken", func(c echo.Context) error {
		return r.RenderPage(c, http.StatusOK, struct{}{})
	})

	t.Run("c.Render writes html", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/render", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "<h1>Fluxo de Caixa</h1>", rec.Body.String())
	})

	t.Run("RenderPage uses the given status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/page", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "<h1>Fluxo de Caixa</h1>", rec.Body.String())
	})

	t.Run("RenderPage failure becomes an error response", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

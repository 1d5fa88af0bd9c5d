// Package export writes registered pages out as static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/nfrund/financeiro/internal/pageregistry"
	"github.com/nfrund/financeiro/internal/rendering"
	"github.com/nfrund/financeiro/web/templates/layouts"
	"github.com/spf13/afero"
)

// Exporter renders pages into an afero filesystem.
type Exporter struct {
	fs       afero.Fs
	renderer rendering.Renderer
	appName  string
}

// New creates an Exporter writing to fs. appName goes into every document title.
func New(fs afero.Fs, renderer rendering.Renderer, appName string) *Exporter {
	return &Exporter{fs: fs, renderer: renderer, appName: appName}
}

// Render returns the full HTML document for page.
func (x *Exporter) Render(ctx context.Context, page pageregistry.Page) ([]byte, error) {
	out, err := x.renderer.RenderComponent(ctx, layouts.Page(x.appName, page.Title, page.Content()))
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", page.Path, err)
	}
	return out, nil
}

// Export writes page to <dir>/<page path>/index.html and returns the file path.
func (x *Exporter) Export(ctx context.Context, page pageregistry.Page, dir string) (string, error) {
	body, err := x.Render(ctx, page)
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(path.Clean(page.Path), "/")), "index.html")
	if err := x.save(target, bytes.NewReader(body)); err != nil {
		return "", fmt.Errorf("write %s: %w", target, err)
	}
	return target, nil
}

// ExportAll exports every page and stops at the first error.
func (x *Exporter) ExportAll(ctx context.Context, pages []pageregistry.Page, dir string) ([]string, error) {
	written := make([]string, 0, len(pages))
	for _, p := range pages {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		target, err := x.Export(ctx, p, dir)
		if err != nil {
			return written, err
		}
		written = append(written, target)
	}
	return written, nil
}

func (x *Exporter) save(target string, r io.Reader) error {
	if err := x.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := x.fs.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

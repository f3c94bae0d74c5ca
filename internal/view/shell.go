package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/couchcryptid/seismowatch/internal/board"
)

// Layout renders the HTML document around the children in the context.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title></head><body>`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw(`</body></html>`)
		return h.err
	})
}

// ShellData carries the few inputs the page shells need.
type ShellData struct {
	DashboardPath string
	SocketPath    string
	Board         board.Snapshot
}

// PageShell composes the landing page in fixed order: hero, feature grid,
// live preview board and the call to action for the full dashboard.
func PageShell(d ShellData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<main class="page-shell">`)
		h.render(ctx, Hero(d.DashboardPath))
		h.render(ctx, FeatureGrid())
		h.render(ctx, LiveSection(d.Board, d.SocketPath))
		h.raw(`<section class="preview-cta"><h2>Live Detection Preview</h2>`)
		h.raw(`<p>See SeismoWatch in action with our real-time earthquake detection dashboard showing current global activity.</p>`)
		h.raw(`<a class="button button-hero" data-icon="arrow-right"`)
		h.attr("href", d.DashboardPath)
		h.raw(`>View Full Dashboard</a></section>`)
		h.raw(`</main>`)
		return h.err
	})
}

// DashboardPage is the full dashboard view: the live board on its own.
func DashboardPage(d ShellData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<main class="dashboard"><nav><a href="/">SeismoWatch</a></nav>`)
		h.render(ctx, LiveSection(d.Board, d.SocketPath))
		h.raw(`</main>`)
		return h.err
	})
}

package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Stat is a headline number with its caption.
type Stat struct {
	Value string
	Label string
	Tone  string
}

// HeroStats are the callouts under the hero heading.
var HeroStats = []Stat{
	{Value: "15.2k", Label: "Active Monitors", Tone: "primary"},
	{Value: "847", Label: "Events Detected", Tone: "secondary"},
	{Value: "2.3s", Label: "Avg. Detection Time", Tone: "accent"},
	{Value: "94%", Label: "Accuracy Rate", Tone: "detection"},
}

// Hero renders the promotional header. Its primary call to action links to
// dashboardPath.
func Hero(dashboardPath string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<header class="hero">`)
		h.raw(`<div class="hero-waves" aria-hidden="true"><span></span><span></span><span></span></div>`)
		h.raw(`<span class="badge badge-glow" data-icon="activity">Real-time Detection Active</span>`)
		h.raw(`<h1 class="hero-title">SeismoWatch</h1>`)
		h.raw(`<p class="hero-tagline">The World's First Crowdsourced Earthquake Detection System</p>`)
		h.raw(`<p class="hero-lede">Leveraging real-time Twitter data to detect seismic activity before official sources. `)
		h.raw(`Get instant alerts with verified crowd-sourced evidence and media links.</p>`)
		h.raw(`<div class="hero-actions">`)
		h.raw(`<a class="button button-hero" data-icon="globe"`)
		h.attr("href", dashboardPath)
		h.raw(`>View Live Dashboard</a>`)
		h.raw(`<a class="button button-outline" data-icon="alert-triangle" href="#features">Set Up Alerts</a>`)
		h.raw(`</div>`)
		writeStats(h, "hero-stats", HeroStats)
		h.raw(`</header>`)
		return h.err
	})
}

func writeStats(h *htmlWriter, class string, stats []Stat) {
	h.raw(`<div`)
	h.attr("class", class)
	h.raw(`>`)
	for _, s := range stats {
		h.raw(`<div class="stat">`)
		h.raw(`<div`)
		h.attr("class", "stat-value tone-"+s.Tone)
		h.raw(`>`)
		h.text(s.Value)
		h.raw(`</div><div class="stat-label">`)
		h.text(s.Label)
		h.raw(`</div></div>`)
	}
	h.raw(`</div>`)
}

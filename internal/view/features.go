package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Feature is one card in the feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

var Features = []Feature{
	{
		Icon:        "twitter",
		Title:       "Real-Time Twitter Monitoring",
		Description: "Continuously scans millions of tweets for earthquake-related keywords across 50+ languages with advanced NLP filtering.",
	},
	{
		Icon:        "brain",
		Title:       "AI-Powered Detection",
		Description: "Machine learning algorithms analyze tweet patterns, user credibility, and location clustering to identify genuine seismic events.",
	},
	{
		Icon:        "zap",
		Title:       "Sub-Minute Alerts",
		Description: "Detect earthquakes in under 60 seconds - often faster than official seismic networks through crowdsourced reporting.",
	},
	{
		Icon:        "globe",
		Title:       "Global Coverage",
		Description: "Monitor seismic activity worldwide with location-based filtering and regional alert preferences.",
	},
	{
		Icon:        "bell",
		Title:       "Multi-Channel Alerts",
		Description: "Receive instant notifications via SMS, email, or push notifications with relevant tweet evidence and media links.",
	},
	{
		Icon:        "shield",
		Title:       "Authenticity Scoring",
		Description: "Advanced filtering system prevents false alarms by analyzing tweet volume, user verification, and cross-source validation.",
	},
}

var AggregateStats = []Stat{
	{Value: "94.2%", Label: "Detection Accuracy", Tone: "detection"},
	{Value: "47s", Label: "Avg Response Time", Tone: "primary"},
	{Value: "15.2k", Label: "Active Users", Tone: "secondary"},
	{Value: "195", Label: "Monitored Regions", Tone: "accent"},
}

// FeatureGrid renders the aggregate stat cards followed by the feature cards.
func FeatureGrid() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section id="features" class="features">`)
		h.raw(`<h2>How <span class="tone-primary">SeismoWatch</span> Works</h2>`)
		h.raw(`<p class="section-lede">Combining social media intelligence with seismic science for unprecedented earthquake detection speed and accuracy.</p>`)
		writeStats(h, "stat-cards", AggregateStats)
		h.raw(`<div class="feature-grid">`)
		for _, f := range Features {
			h.raw(`<article class="feature-card"`)
			h.attr("data-icon", f.Icon)
			h.raw(`><h3>`)
			h.text(f.Title)
			h.raw(`</h3><p>`)
			h.text(f.Description)
			h.raw(`</p></article>`)
		}
		h.raw(`</div>`)
		h.raw(`<div class="science"><h3>The Science Behind SeismoWatch</h3>`)
		h.raw(`<p>Our proprietary algorithm analyzes real-time social media patterns, combining natural language processing, `)
		h.raw(`geospatial analysis, and crowd behavior modeling to identify seismic events with unprecedented speed and accuracy.</p></div>`)
		h.raw(`</section>`)
		return h.err
	})
}

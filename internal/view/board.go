package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
	"github.com/couchcryptid/seismowatch/internal/board"
	"github.com/couchcryptid/seismowatch/internal/domain"
	"golang.org/x/text/message"
)

// BoardFragmentID is the element id the socket client replaces on every push.
const BoardFragmentID = "live-board"

// LiveBoard renders the replaceable board fragment for one snapshot: the
// LIVE/PAUSED badge, the toggle control and one card per event.
func LiveBoard(snap board.Snapshot) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		p := newPrinter()

		h.raw(`<div`)
		h.attr("id", BoardFragmentID)
		h.attr("data-revision", strconv.FormatUint(snap.Revision, 10))
		h.attr("data-live", strconv.FormatBool(snap.Live))
		h.raw(`>`)

		writeBoardControls(h, snap.Live)

		h.raw(`<div class="event-grid">`)
		for _, e := range snap.Events {
			writeEventCard(h, p, e)
		}
		h.raw(`</div>`)
		h.raw(`<div class="load-more"><button type="button" class="button button-outline">Load More Events</button></div>`)
		h.raw(`</div>`)
		return h.err
	})
}

func writeBoardControls(h *htmlWriter, live bool) {
	badge, badgeClass, action := "PAUSED", "badge badge-paused", "Resume"
	if live {
		badge, badgeClass, action = "LIVE", "badge badge-live", "Pause"
	}
	h.raw(`<div class="board-controls">`)
	h.raw(`<span`)
	h.attr("class", badgeClass)
	h.raw(`><span class="badge-dot"></span>`)
	h.text(badge)
	h.raw(`</span>`)
	h.raw(`<button type="button" class="button button-outline" data-board-action="toggle">`)
	h.text(action + " Monitoring")
	h.raw(`</button></div>`)
}

func writeEventCard(h *htmlWriter, p *message.Printer, e domain.EventRecord) {
	ind := domain.IndicatorFor(e.Status)
	band := domain.ConfidenceBand(e.Confidence)
	pct := formatPercent(e.Confidence)

	h.raw(`<article class="event-card"`)
	h.attr("data-event-id", e.ID)
	h.attr("data-status", string(e.Status))
	h.raw(`>`)

	h.raw(`<div class="event-header">`)
	indicatorClass := "status-indicator " + ind.Class + " tone-" + string(ind.Tone)
	if ind.Pulse {
		indicatorClass += " pulse"
	}
	h.raw(`<div`)
	h.attr("class", indicatorClass)
	h.attr("data-icon", ind.Icon)
	h.raw(`></div>`)

	h.raw(`<div class="event-title"><h3 data-icon="map-pin">`)
	h.text(e.Location)
	h.raw(`</h3><div class="event-meta"><span class="event-time" data-icon="clock">`)
	h.text(e.Timestamp)
	h.raw(`</span><span class="event-tweets" data-icon="users">`)
	h.text(formatCount(p, e.TweetCount) + " tweets")
	h.raw(`</span></div></div>`)

	h.raw(`<div class="event-figures"><div class="event-magnitude">`)
	h.text(formatMagnitude(e.Magnitude))
	h.raw(`</div><div class="event-confidence">`)
	h.text(pct + "% confidence")
	h.raw(`</div></div></div>`)

	h.raw(`<div class="meter"><div class="meter-label"><span>Detection Confidence</span><span>`)
	h.text(pct + "%")
	h.raw(`</span></div><div class="meter-track"><div`)
	h.attr("class", "meter-fill band-"+string(band))
	h.attr("style", "width: "+pct+"%")
	h.raw(`></div></div></div>`)

	h.raw(`<blockquote class="top-tweet"><div class="top-tweet-label">Top Viral Tweet:</div><p>&ldquo;`)
	h.text(e.TopTweet)
	h.raw(`&rdquo;</p></blockquote>`)

	primary := "button button-secondary"
	if e.Status == domain.StatusConfirmed {
		primary = "button button-primary"
	}
	h.raw(`<div class="event-actions">`)
	h.raw(`<button type="button" class="button button-outline" data-icon="map-pin">View on Map</button>`)
	h.raw(`<button type="button" class="button button-outline" data-icon="external-link">See All Tweets</button>`)
	h.raw(`<button type="button"`)
	h.attr("class", primary)
	h.raw(` data-icon="alert-triangle">`)
	h.text(domain.ActionLabel(e.Status))
	h.raw(`</button></div>`)

	h.raw(`</article>`)
}

// LiveSection wraps the board fragment with its heading and the socket client
// that keeps it current.
func LiveSection(snap board.Snapshot, socketPath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.raw(`<section class="live-section"`)
		h.attr("data-socket", socketPath)
		h.raw(`>`)
		h.raw(`<div class="live-heading"><h2>Live Earthquake Detection</h2>`)
		h.raw(`<p>Real-time monitoring of seismic activity via social media</p></div>`)
		h.render(ctx, LiveBoard(snap))
		h.raw(`<script>`)
		h.raw(boardClientScript)
		h.raw(`</script>`)
		h.raw(`</section>`)
		return h.err
	})
}

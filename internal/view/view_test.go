package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/couchcryptid/seismowatch/internal/board"
	"github.com/couchcryptid/seismowatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestHero(t *testing.T) {
	out := render(t, Hero("/dashboard"))

	assert.Contains(t, out, "SeismoWatch")
	assert.Contains(t, out, `href="/dashboard"`)
	for _, s := range HeroStats {
		assert.Contains(t, out, s.Label)
	}
}

func TestFeatureGrid(t *testing.T) {
	out := render(t, FeatureGrid())

	assert.Equal(t, len(Features), strings.Count(out, `class="feature-card"`))
	assert.Contains(t, out, "Authenticity Scoring")
	for _, s := range AggregateStats {
		assert.Contains(t, out, s.Value)
	}
}

func TestLiveBoard_RendersEvents(t *testing.T) {
	out := render(t, LiveBoard(board.SeedSnapshot()))

	assert.Contains(t, out, `id="live-board"`)
	assert.Contains(t, out, `data-live="true"`)
	assert.Contains(t, out, "LIVE")
	assert.Contains(t, out, "Pause Monitoring")
	assert.Equal(t, 3, strings.Count(out, `class="event-card"`))

	assert.Contains(t, out, "Tokyo, Japan")
	assert.Contains(t, out, "M5.2")
	assert.Contains(t, out, "87.0% confidence")
	assert.Contains(t, out, "245 tweets")
	assert.Contains(t, out, "Send Alert")
	assert.Contains(t, out, "Monitor")
	assert.Contains(t, out, "Load More Events")
}

func TestLiveBoard_Paused(t *testing.T) {
	snap := board.SeedSnapshot()
	snap.Live = false
	out := render(t, LiveBoard(snap))

	assert.Contains(t, out, "PAUSED")
	assert.Contains(t, out, "Resume Monitoring")
	assert.Contains(t, out, `data-live="false"`)
}

func TestLiveBoard_StatusAndBandClasses(t *testing.T) {
	out := render(t, LiveBoard(board.SeedSnapshot()))

	assert.Contains(t, out, "status-confirmed")
	assert.Contains(t, out, "status-detecting")
	assert.Contains(t, out, "pulse")
	assert.Contains(t, out, "status-false-alarm")

	assert.Contains(t, out, "band-high")   // Tokyo 87
	assert.Contains(t, out, "band-medium") // Los Angeles 73
	assert.Contains(t, out, "band-low")    // Istanbul 45
	assert.Contains(t, out, `style="width: 45.0%"`)
}

func TestLiveBoard_UnknownStatusRendersNeutral(t *testing.T) {
	snap := board.Snapshot{Events: []domain.EventRecord{{ID: "x", Location: "Lima, Peru", Status: "aftershock"}}}
	out := render(t, LiveBoard(snap))

	assert.Contains(t, out, "status-unknown")
	assert.Contains(t, out, "tone-neutral")
}

func TestLiveBoard_EscapesText(t *testing.T) {
	snap := board.Snapshot{Events: []domain.EventRecord{{
		ID:       `"><script>`,
		Location: "<b>Quito</b>",
		TopTweet: "<img src=x onerror=alert(1)>",
	}}}
	out := render(t, LiveBoard(snap))

	assert.NotContains(t, out, "<b>Quito</b>")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;b&gt;Quito&lt;/b&gt;")
}

func TestLiveBoard_ThousandsSeparator(t *testing.T) {
	snap := board.Snapshot{Events: []domain.EventRecord{{ID: "1", TweetCount: 12345}}}
	out := render(t, LiveBoard(snap))
	assert.Contains(t, out, "12,345 tweets")
}

func TestPageShell_Order(t *testing.T) {
	out := render(t, PageShell(ShellData{
		DashboardPath: "/dashboard",
		SocketPath:    "/ws/board",
		Board:         board.SeedSnapshot(),
	}))

	hero := strings.Index(out, `class="hero"`)
	features := strings.Index(out, `id="features"`)
	live := strings.Index(out, `class="live-section"`)
	cta := strings.Index(out, "View Full Dashboard")

	require.NotEqual(t, -1, hero)
	assert.Less(t, hero, features)
	assert.Less(t, features, live)
	assert.Less(t, live, cta)
	assert.Contains(t, out, `data-socket="/ws/board"`)
}

func TestLayout_WrapsChildren(t *testing.T) {
	ctx := templ.WithChildren(context.Background(), DashboardPage(ShellData{
		SocketPath: "/ws/board",
		Board:      board.SeedSnapshot(),
	}))
	var buf bytes.Buffer
	require.NoError(t, Layout("SeismoWatch Dashboard").Render(ctx, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>SeismoWatch Dashboard</title>")
	assert.Contains(t, out, `id="live-board"`)
	assert.True(t, strings.HasSuffix(out, "</html>"))
}

func TestFormatting(t *testing.T) {
	p := newPrinter()
	assert.Equal(t, "1,245", formatCount(p, 1245))
	assert.Equal(t, "M3.8", formatMagnitude(3.8))
	assert.Equal(t, "M5", formatMagnitude(5))
	assert.Equal(t, "94.9", formatPercent(94.94))
}

package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/seismowatch/internal/board"
	"github.com/couchcryptid/seismowatch/internal/observability"
	"github.com/couchcryptid/seismowatch/internal/view"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxCommandSize = 512
	updateBuffer   = 8
)

// boardMessage is pushed to the client after every state change.
type boardMessage struct {
	BoardID  string `json:"board_id"`
	Revision uint64 `json:"revision"`
	Ticks    uint64 `json:"ticks"`
	Live     bool   `json:"live"`
	HTML     string `json:"html"`
}

// boardCommand is sent by the client to control its board.
type boardCommand struct {
	Action string `json:"action"` // "pause", "resume" or "toggle"
}

// handleBoardSocket mounts one board for the lifetime of the connection. The
// board is torn down when the socket closes, whichever side closes it.
func (s *Server) handleBoardSocket(w http.ResponseWriter, r *http.Request) {
	updates := make(chan board.Snapshot, updateBuffer)
	b, release, err := s.boards.Mount(func(snap board.Snapshot) {
		select {
		case updates <- snap:
		default:
			s.metrics.SnapshotsDropped.Inc()
		}
	})
	if err != nil {
		s.logger.Warn("board mount rejected", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	defer release()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.metrics.SocketErrors.Inc()
		s.logger.Warn("websocket upgrade failed", "board_id", b.ID(), "error", err)
		return
	}
	defer conn.Close()

	sess := &liveSession{
		conn:    conn,
		board:   b,
		updates: updates,
		clock:   s.clock,
		logger:  s.logger.With("board_id", b.ID()),
		metrics: s.metrics,
	}
	if err := sess.run(r.Context()); err != nil {
		s.metrics.SocketErrors.Inc()
		sess.logger.Warn("board socket ended with error", "error", err)
	}
}

type liveSession struct {
	conn     *websocket.Conn
	board    *board.Board
	updates  <-chan board.Snapshot
	clock    clockwork.Clock
	logger   *slog.Logger
	metrics  *observability.Metrics
	lastSent uint64
}

// run starts the board and owns every write to the connection until the
// client leaves, the board is torn down or ctx ends.
func (ls *liveSession) run(ctx context.Context) error {
	commands := make(chan boardCommand)
	readDone := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)

	go ls.readCommands(commands, readDone, stop)

	ls.board.Start()
	if err := ls.push(ctx, ls.board.Snapshot()); err != nil {
		return err
	}

	ping := ls.clock.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-readDone:
			return nil
		case <-ls.board.Done():
			ls.closeNormally("board closed")
			return nil
		case cmd := <-commands:
			if !applyCommand(ls.board, cmd.Action) {
				ls.logger.Warn("unknown board command", "action", cmd.Action)
				continue
			}
			ls.logger.Info("board toggled", "action", cmd.Action, "live", ls.board.Live())
			if err := ls.push(ctx, ls.board.Snapshot()); err != nil {
				return err
			}
		case snap := <-ls.updates:
			if err := ls.push(ctx, snap); err != nil {
				return err
			}
		case <-ping.Chan():
			deadline := time.Now().Add(writeWait)
			if err := ls.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return err
			}
		}
	}
}

func (ls *liveSession) readCommands(commands chan<- boardCommand, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)

	ls.conn.SetReadLimit(maxCommandSize)
	_ = ls.conn.SetReadDeadline(time.Now().Add(pongWait))
	ls.conn.SetPongHandler(func(string) error {
		return ls.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd boardCommand
		if err := ls.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				ls.logger.Debug("board socket read failed", "error", err)
			}
			return
		}
		ls.metrics.SocketMessages.WithLabelValues("in").Inc()
		select {
		case commands <- cmd:
		case <-stop:
			return
		}
	}
}

// push renders snap and writes it, skipping snapshots older than the last
// one sent.
func (ls *liveSession) push(ctx context.Context, snap board.Snapshot) error {
	if snap.Revision <= ls.lastSent {
		ls.metrics.SnapshotsDropped.Inc()
		return nil
	}

	start := time.Now()
	var buf bytes.Buffer
	if err := view.LiveBoard(snap).Render(ctx, &buf); err != nil {
		return err
	}
	ls.metrics.RenderDuration.Observe(time.Since(start).Seconds())

	_ = ls.conn.SetWriteDeadline(time.Now().Add(writeWait))
	msg := boardMessage{
		BoardID:  snap.BoardID,
		Revision: snap.Revision,
		Ticks:    snap.Ticks,
		Live:     snap.Live,
		HTML:     buf.String(),
	}
	if err := ls.conn.WriteJSON(msg); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	}
	ls.lastSent = snap.Revision
	ls.metrics.SocketMessages.WithLabelValues("out").Inc()
	return nil
}

func (ls *liveSession) closeNormally(reason string) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, reason)
	_ = ls.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
}

func applyCommand(b *board.Board, action string) bool {
	switch action {
	case "pause":
		b.SetLive(false)
	case "resume":
		b.SetLive(true)
	case "toggle":
		b.SetLive(!b.Live())
	default:
		return false
	}
	return true
}

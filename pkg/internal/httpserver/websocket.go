package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"nhooyr.io/websocket"

	"github.com/joeydtaylor/spectra/pkg/internal/types"
)

// framePayload is one pushed WebSocket message: the post-change signal list
// plus the freshly rendered chart documents.
type framePayload struct {
	Signals []types.SignalSnapshot `json:"signals"`
	Charts  map[string]string      `json:"charts"`
}

// subscribe registers a send channel for one connection. Slow consumers drop
// frames rather than stall the broadcast.
func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 8)
	s.subsMu.Lock()
	s.subs[ch] = struct{}{}
	s.subsMu.Unlock()
	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.subsMu.Lock()
	delete(s.subs, ch)
	s.subsMu.Unlock()
}

func (s *Server) snapshotSubs() []chan []byte {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]chan []byte, 0, len(s.subs))
	for ch := range s.subs {
		out = append(out, ch)
	}
	return out
}

// broadcastFrame builds the current frame payload and fans it out to every
// connected socket. Runs after the charts have re-rendered for the same
// broadcast, so SVG() is already post-change.
func (s *Server) broadcastFrame() {
	subs := s.snapshotSubs()
	if len(subs) == 0 {
		return
	}

	charts := make(map[string]string, len(s.charts))
	for name, c := range s.charts {
		charts[name] = string(c.SVG())
	}
	payload, err := json.Marshal(framePayload{
		Signals: s.mixer.Snapshots(),
		Charts:  charts,
	})
	if err != nil {
		s.NotifyLoggers(
			types.ErrorLevel,
			"Frame payload encode failed",
			"component", s.componentMetadata,
			"event", "BroadcastFrame",
			"error", err,
		)
		return
	}

	dropped := 0
	for _, ch := range subs {
		select {
		case ch <- payload:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		s.NotifyLoggers(
			types.WarnLevel,
			"Frame dropped for slow consumer(s)",
			"component", s.componentMetadata,
			"event", "BroadcastFrame",
			"dropped", dropped,
		)
	}
}

// handleSocket upgrades the request and streams frames until the client goes
// away. The socket is push-only; inbound messages are drained and discarded.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
	if err != nil {
		s.NotifyLoggers(
			types.ErrorLevel,
			"Accept: error",
			"component", s.componentMetadata,
			"event", "AcceptError",
			"error", err,
		)
		return
	}

	s.NotifyLoggers(
		types.InfoLevel,
		"Connection accepted",
		"component", s.componentMetadata,
		"event", "ConnectionAccepted",
		"remote", r.RemoteAddr,
	)

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader exists only to observe the close handshake.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	if err := s.writeLoop(ctx, conn, ch); err != nil {
		s.NotifyLoggers(
			types.WarnLevel,
			"WriteLoop error",
			"component", s.componentMetadata,
			"event", "WriteLoop",
			"error", err,
		)
	}

	_ = conn.Close(websocket.StatusNormalClosure, "connection closed")
	s.NotifyLoggers(
		types.InfoLevel,
		"Connection closed",
		"component", s.componentMetadata,
		"event", "ConnectionClosed",
		"remote", r.RemoteAddr,
	)
}

func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, ch chan []byte) error {
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case payload := <-ch:
			if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
				return err
			}
		}
	}
}

package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"game-lab/domain"
	"game-lab/domain/event"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Frame is the JSON shape pushed to live connections.
// The SUBSCRIBED snapshot has no eventData.
type Frame struct {
	Event     event.Kind  `json:"event"`
	EventData event.Event `json:"eventData,omitempty"`
	State     domain.View `json:"state"`
}

// WebsocketSink writes notifications to one connection.
// gorilla connections support a single concurrent writer, mu enforces it.
type WebsocketSink struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	writeTimeout time.Duration
	log          *slog.Logger
}

func NewWebsocketSink(conn *websocket.Conn, writeTimeout time.Duration, log *slog.Logger) *WebsocketSink {
	return &WebsocketSink{conn: conn, writeTimeout: writeTimeout, log: log}
}

// Deliver matches contract.Delivery. A write error ends the subscription.
func (s *WebsocketSink) Deliver(ctx context.Context, n event.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(Frame{Event: n.Kind, EventData: n.Payload, State: n.View})
	if err != nil {
		return fmt.Errorf("unable to encode %s frame: %w", n.Kind, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.conn.SetWriteDeadline(s.deadline()); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// Close sends a close frame with code and a JSON reason, then closes the connection.
func (s *WebsocketSink) Close(code int, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := ""
	if reason != "" {
		encoded, err := json.Marshal(map[string]string{"reason": reason})
		if err != nil {
			return err
		}
		text = string(encoded)
	}
	if err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), s.deadline()); err != nil {
		s.log.Debug("Unable to send close frame", "error", err)
	}
	return s.conn.Close()
}

func (s *WebsocketSink) deadline() time.Time {
	if s.writeTimeout <= 0 {
		return time.Time{}
	}
	return time.Now().Add(s.writeTimeout)
}

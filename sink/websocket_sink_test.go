package sink

import (
	"context"
	"encoding/json"
	"game-lab/domain"
	"game-lab/domain/event"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// serve upgrades one connection and hands its sink to fn.
func serve(t *testing.T, fn func(s *WebsocketSink)) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		fn(NewWebsocketSink(conn, time.Second, log))
	}))
	t.Cleanup(server.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	return conn
}

func TestWebsocketSink_Frames(t *testing.T) {
	req := require.New(t)
	errs := make(chan error, 2)
	conn := serve(t, func(s *WebsocketSink) {
		ctx := context.Background()
		errs <- s.Deliver(ctx, event.Notification{Kind: event.SubscribedKind, View: domain.View{"started": false}})
		errs <- s.Deliver(ctx, event.Notification{
			Kind:    event.SeatAddedKind,
			Payload: event.SeatAdded{Seat: domain.Seat{Index: 1, DisplayName: "Bob"}},
			View:    domain.View{"started": false},
		})
	})

	var snapshot map[string]any
	req.NoError(conn.ReadJSON(&snapshot))
	req.Equal("SUBSCRIBED", snapshot["event"])
	req.NotContains(snapshot, "eventData")
	req.Equal(map[string]any{"started": false}, snapshot["state"])

	var frame struct {
		Event     string          `json:"event"`
		EventData json.RawMessage `json:"eventData"`
	}
	req.NoError(conn.ReadJSON(&frame))
	req.Equal("SEAT_ADDED", frame.Event)
	req.JSONEq(`{"seatIndex":1,"displayName":"Bob"}`, string(frame.EventData))

	req.NoError(<-errs)
	req.NoError(<-errs)
}

func TestWebsocketSink_CloseWithReason(t *testing.T) {
	req := require.New(t)
	conn := serve(t, func(s *WebsocketSink) {
		_ = s.Close(websocket.CloseUnsupportedData, "ROOM_NOT_FOUND")
	})

	_, _, err := conn.ReadMessage()

	var closeErr *websocket.CloseError
	req.ErrorAs(err, &closeErr)
	req.Equal(websocket.CloseUnsupportedData, closeErr.Code)
	req.JSONEq(`{"reason":"ROOM_NOT_FOUND"}`, closeErr.Text)
}

func TestWebsocketSink_CancelledContext(t *testing.T) {
	errs := make(chan error, 1)
	serve(t, func(s *WebsocketSink) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		errs <- s.Deliver(ctx, event.Notification{Kind: event.RoomStartedKind})
	})

	require.ErrorIs(t, <-errs, context.Canceled)
}

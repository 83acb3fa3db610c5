package server

import (
	"context"
	"encoding/json"
	"fmt"
	"game-lab/auth"
	"game-lab/domain"
	"game-lab/errors"
	"game-lab/mocks"
	"game-lab/observability"
	"game-lab/repositories"
	"game-lab/rules"
	"game-lab/runtime"
	"game-lab/services"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "a-secret-long-enough-for-hs256"

func newMockedServer(t *testing.T, config Config) (*httptest.Server, *mocks.MockIRoomService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockIRoomService(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	srv := NewGameServer(log, service, observability.NewMonitoringManager(log, time.Second),
		auth.NewTokenManager(testSecret, time.Hour), config)
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server, service
}

func newRealServer(t *testing.T, config Config) *httptest.Server {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	factory, err := rules.NewDefaultFactory()
	require.NoError(t, err)
	monitoring := observability.NewMonitoringManager(log, time.Second)
	service := services.NewRoomService(runtime.NewRegistry(log, monitoring), factory,
		repositories.NewSeatBindingRepository(db), 16, log)
	srv := NewGameServer(log, service, monitoring, auth.NewTokenManager(testSecret, time.Hour), config)
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)
	return server
}

// newClient keeps the session cookie across requests, like a browser.
func newClient(t *testing.T) *http.Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func do(t *testing.T, client *http.Client, method, url, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	response, err := client.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return response.StatusCode, decoded
}

func TestGameServer_ErrorsAsReasons(t *testing.T) {
	server, service := newMockedServer(t, Config{})
	client := newClient(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		setup  func()
		status int
		reason string
	}{
		{
			name: "unknown room", method: http.MethodGet, path: "/rooms/nope",
			setup: func() {
				service.EXPECT().View(gomock.Any(), domain.RoomID("nope"), gomock.Any()).Return(nil, errors.ErrRoomNotFound)
			},
			status: http.StatusNotFound, reason: errors.ReasonRoomNotFound,
		},
		{
			name: "not a player", method: http.MethodPost, path: "/rooms/r/actions", body: `{"action":"collect"}`,
			setup: func() {
				service.EXPECT().ExecuteAction(gomock.Any(), domain.RoomID("r"), gomock.Any(), "collect", gomock.Any()).Return(errors.ErrNotAPlayer)
			},
			status: http.StatusUnauthorized, reason: errors.ReasonNotAPlayer,
		},
		{
			name: "rules violation", method: http.MethodPost, path: "/rooms/r/actions", body: `{"action":"build"}`,
			setup: func() {
				service.EXPECT().ExecuteAction(gomock.Any(), domain.RoomID("r"), gomock.Any(), "build", gomock.Any()).
					Return(&errors.RulesViolation{Reason: "NOT_ENOUGH_RESOURCES"})
			},
			status: http.StatusBadRequest, reason: "NOT_ENOUGH_RESOURCES",
		},
		{
			name: "unknown failure", method: http.MethodPost, path: "/rooms/r/start",
			setup: func() {
				service.EXPECT().Start(gomock.Any(), domain.RoomID("r"), gomock.Nil()).Return(errors.Unknown(fmt.Errorf("boom")))
			},
			status: http.StatusInternalServerError, reason: errors.ReasonUnknown,
		},
		{
			name: "missing action", method: http.MethodPost, path: "/rooms/r/actions", body: `{}`,
			status: http.StatusBadRequest, reason: errors.ReasonInvalidArgument,
		},
		{
			name: "blank display name", method: http.MethodPost, path: "/rooms/r/seats", body: `{"name":"   "}`,
			status: http.StatusBadRequest, reason: errors.ReasonInvalidArgument,
		},
		{
			name: "malformed body", method: http.MethodPost, path: "/rooms/r/seats", body: `{"name":`,
			status: http.StatusBadRequest, reason: errors.ReasonInvalidArgument,
		},
		{
			name: "missing seat body", method: http.MethodPost, path: "/rooms/r/seats",
			status: http.StatusBadRequest, reason: errors.ReasonInvalidArgument,
		},
		{
			name: "seat is not a number", method: http.MethodDelete, path: "/rooms/r/seats/first",
			status: http.StatusBadRequest, reason: errors.ReasonInvalidArgument,
		},
		{
			name: "switch seat on a regular room", method: http.MethodPost, path: "/rooms/r/switch-seat", body: `{"seat":0}`,
			setup: func() {
				service.EXPECT().SwitchSeat(gomock.Any(), domain.RoomID("r"), gomock.Any(), 0).Return(nil, errors.ErrRoomIsNotDebug)
			},
			status: http.StatusUnauthorized, reason: errors.ReasonRoomIsNotDebug,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			if tt.setup != nil {
				tt.setup()
			}

			status, body := do(t, client, tt.method, server.URL+tt.path, tt.body)

			req.Equal(tt.status, status)
			req.Equal(tt.reason, body["reason"])
		})
	}
}

func TestGameServer_Routes(t *testing.T) {
	server, service := newMockedServer(t, Config{})
	client := newClient(t)

	t.Run("create room", func(t *testing.T) {
		req := require.New(t)
		service.EXPECT().CreateRoom(false).Return(domain.RoomID("brave-misty-otter"))

		status, body := do(t, client, http.MethodPost, server.URL+"/rooms", "")

		req.Equal(http.StatusCreated, status)
		req.Equal("brave-misty-otter", body["roomId"])
	})

	t.Run("debug rooms are disabled by default", func(t *testing.T) {
		status, _ := do(t, client, http.MethodPost, server.URL+"/debug-rooms", "")
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("remove seat", func(t *testing.T) {
		service.EXPECT().RemoveSeat(gomock.Any(), domain.RoomID("r"), 1).Return(nil)

		status, _ := do(t, client, http.MethodDelete, server.URL+"/rooms/r/seats/1", "")

		require.Equal(t, http.StatusNoContent, status)
	})

	t.Run("start with auto collect", func(t *testing.T) {
		req := require.New(t)
		var got *bool
		service.EXPECT().Start(gomock.Any(), domain.RoomID("r"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.RoomID, autoCollect *bool) error {
				got = autoCollect
				return nil
			})

		status, _ := do(t, client, http.MethodPost, server.URL+"/rooms/r/start", `{"autoCollect":true}`)

		req.Equal(http.StatusOK, status)
		req.NotNil(got)
		req.True(*got)
	})

	t.Run("the session survives between requests", func(t *testing.T) {
		req := require.New(t)
		var sessions []string
		service.EXPECT().View(gomock.Any(), domain.RoomID("r"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ domain.RoomID, sessionID string) (domain.View, error) {
				sessions = append(sessions, sessionID)
				return domain.View{"started": false}, nil
			}).Times(2)

		do(t, client, http.MethodGet, server.URL+"/rooms/r", "")
		status, body := do(t, client, http.MethodGet, server.URL+"/rooms/r", "")

		req.Equal(http.StatusOK, status)
		req.Equal(false, body["started"])
		req.Len(sessions, 2)
		req.NotEmpty(sessions[0])
		req.Equal(sessions[0], sessions[1])
	})

	t.Run("health and stats", func(t *testing.T) {
		req := require.New(t)
		status, _ := do(t, client, http.MethodGet, server.URL+"/up", "")
		req.Equal(http.StatusOK, status)

		status, body := do(t, client, http.MethodGet, server.URL+"/stats", "")
		req.Equal(http.StatusOK, status)
		req.Contains(body, "rooms_created")
	})
}

func wsURL(server *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(server.URL, "http") + path
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	return frame
}

func TestGameServer_Updates(t *testing.T) {
	req := require.New(t)
	server := newRealServer(t, Config{WriteTimeout: time.Second, EnableDebugRooms: true})
	client := newClient(t)

	status, body := do(t, client, http.MethodPost, server.URL+"/rooms", "")
	req.Equal(http.StatusCreated, status)
	roomID := body["roomId"].(string)

	// Given an observer listening to the room
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/rooms/"+roomID+"/updates"), nil)
	req.NoError(err)
	defer conn.Close()
	snapshot := readFrame(t, conn)
	req.Equal("SUBSCRIBED", snapshot["event"])
	req.NotContains(snapshot, "eventData")

	// When a player takes a seat
	status, view := do(t, client, http.MethodPost, server.URL+"/rooms/"+roomID+"/seats", `{"name":"Alice"}`)
	req.Equal(http.StatusOK, status)
	req.Equal(map[string]any{"id": float64(0)}, view["currentSeat"])

	// Then the observer sees the seat with a public view
	frame := readFrame(t, conn)
	req.Equal("SEAT_ADDED", frame["event"])
	req.Equal(map[string]any{"seatIndex": float64(0), "displayName": "Alice"}, frame["eventData"])
	state := frame["state"].(map[string]any)
	req.NotContains(state, "currentSeat")
	req.Len(state["seats"], 1)
}

func TestGameServer_UpdatesUnknownRoom(t *testing.T) {
	req := require.New(t)
	server := newRealServer(t, Config{})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, "/rooms/no-such-room/updates"), nil)
	req.NoError(err)
	defer conn.Close()
	req.NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	_, _, err = conn.ReadMessage()

	var closeErr *websocket.CloseError
	req.ErrorAs(err, &closeErr)
	req.Equal(websocket.CloseUnsupportedData, closeErr.Code)
	req.JSONEq(`{"reason":"ROOM_NOT_FOUND"}`, closeErr.Text)
}

func TestGameServer_CheckOrigin(t *testing.T) {
	server := newRealServer(t, Config{AllowedOrigins: []string{"https://play.example"}})
	client := newClient(t)
	_, body := do(t, client, http.MethodPost, server.URL+"/rooms", "")
	path := "/rooms/" + body["roomId"].(string) + "/updates"

	t.Run("listed origin", func(t *testing.T) {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(server, path), http.Header{"Origin": {"https://play.example"}})
		require.NoError(t, err)
		_ = conn.Close()
	})

	t.Run("foreign origin", func(t *testing.T) {
		_, response, err := websocket.DefaultDialer.Dial(wsURL(server, path), http.Header{"Origin": {"https://evil.example"}})
		require.ErrorIs(t, err, websocket.ErrBadHandshake)
		require.Equal(t, http.StatusForbidden, response.StatusCode)
	})
}

package server

import (
	"context"
	stderrors "errors"
	"game-lab/errors"
	"game-lab/sink"
	"net/http"

	"github.com/gorilla/websocket"
)

// updates streams room events over a websocket until the client goes away.
// An unknown room is reported with close code 1003 and {"reason":"ROOM_NOT_FOUND"}.
func (s *GameServer) updates(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader already answered with an HTTP error
		s.log.Debug("Websocket upgrade refused", "error", err)
		return
	}
	roomID, sessionID := roomID(r), session(r)
	log := s.log.With("room_id", roomID, "session_id", sessionID)
	ws := sink.NewWebsocketSink(conn, s.config.WriteTimeout, log)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	subscription, err := s.service.Subscribe(ctx, roomID, sessionID, ws.Deliver)
	if err != nil {
		code := websocket.CloseInternalServerErr
		if stderrors.Is(err, errors.ErrRoomNotFound) {
			code = websocket.CloseUnsupportedData
		}
		log.Debug("Subscription refused", "error", err)
		_ = ws.Close(code, errors.Reason(err))
		return
	}
	defer subscription.Unsubscribe()
	log.Info("Client connected", "subscription_id", subscription.ID)

	// Clients only listen, reading is how a closed connection is noticed
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
	case <-subscription.Done():
	}
	subscription.Unsubscribe()
	if ctx.Err() != nil {
		log.Info("Client disconnected", "subscription_id", subscription.ID)
		_ = ws.Close(websocket.CloseNormalClosure, "")
		return
	}
	err = subscription.Err()
	log.Warn("Subscription ended", "subscription_id", subscription.ID, "error", err)
	_ = ws.Close(closeCode(err), errors.Reason(err))
}

func closeCode(err error) int {
	if stderrors.Is(err, errors.ErrSubscriberLagging) {
		return websocket.CloseTryAgainLater
	}
	return websocket.CloseGoingAway
}

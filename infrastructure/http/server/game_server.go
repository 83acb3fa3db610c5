// Package server is the HTTP and websocket surface of the room system.
package server

import (
	"encoding/json"
	stderrors "errors"
	"game-lab/auth"
	"game-lab/domain"
	"game-lab/errors"
	"game-lab/observability"
	"game-lab/services"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/samber/lo"
)

type Config struct {
	WriteTimeout     time.Duration
	EnableDebugRooms bool
	AllowedOrigins   []string
	SecureCookies    bool
}

type GameServer struct {
	service    services.IRoomService
	monitoring *observability.MonitoringManager
	tokens     *auth.TokenManager
	upgrader   websocket.Upgrader
	config     Config
	log        *slog.Logger
}

func NewGameServer(
	log *slog.Logger,
	service services.IRoomService,
	monitoring *observability.MonitoringManager,
	tokens *auth.TokenManager,
	config Config,
) *GameServer {
	s := &GameServer{
		service:    service,
		monitoring: monitoring,
		tokens:     tokens,
		config:     config,
		log:        log,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

func (s *GameServer) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/up", s.up).Methods(http.MethodGet)
	r.HandleFunc("/stats", s.stats).Methods(http.MethodGet)

	rooms := r.PathPrefix("/").Subrouter()
	rooms.Use(auth.SessionMiddleware(s.tokens, s.config.SecureCookies, s.log))
	rooms.HandleFunc("/rooms", s.createRoom).Methods(http.MethodPost)
	if s.config.EnableDebugRooms {
		rooms.HandleFunc("/debug-rooms", s.createDebugRoom).Methods(http.MethodPost)
	}
	rooms.HandleFunc("/rooms/{roomId}", s.view).Methods(http.MethodGet)
	rooms.HandleFunc("/rooms/{roomId}/seats", s.addSeat).Methods(http.MethodPost)
	rooms.HandleFunc("/rooms/{roomId}/seats/{seat}", s.removeSeat).Methods(http.MethodDelete)
	rooms.HandleFunc("/rooms/{roomId}/start", s.start).Methods(http.MethodPost)
	rooms.HandleFunc("/rooms/{roomId}/actions", s.executeAction).Methods(http.MethodPost)
	rooms.HandleFunc("/rooms/{roomId}/switch-seat", s.switchSeat).Methods(http.MethodPost)
	rooms.HandleFunc("/rooms/{roomId}/updates", s.updates).Methods(http.MethodGet)
	return r
}

type roomCreated struct {
	RoomID domain.RoomID `json:"roomId"`
}

func (s *GameServer) up(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *GameServer) stats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.monitoring.GetLatest())
}

func (s *GameServer) createRoom(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusCreated, roomCreated{RoomID: s.service.CreateRoom(false)})
}

func (s *GameServer) createDebugRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := s.service.CreateDebugRoom(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, roomCreated{RoomID: roomID})
}

func (s *GameServer) view(w http.ResponseWriter, r *http.Request) {
	view, err := s.service.View(r.Context(), roomID(r), session(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *GameServer) addSeat(w http.ResponseWriter, r *http.Request) {
	var body AddSeatRequest
	if err := decode(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.service.AddSeat(r.Context(), roomID(r), session(r), body.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func (s *GameServer) removeSeat(w http.ResponseWriter, r *http.Request) {
	seat, err := strconv.Atoi(mux.Vars(r)["seat"])
	if err != nil {
		s.writeError(w, errors.ErrInvalidArgument)
		return
	}
	if err := s.service.RemoveSeat(r.Context(), roomID(r), seat); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *GameServer) start(w http.ResponseWriter, r *http.Request) {
	var body StartRequest
	if err := decode(r, &body); err != nil && !stderrors.Is(err, io.EOF) {
		s.writeError(w, err)
		return
	}
	if err := s.service.Start(r.Context(), roomID(r), body.AutoCollect); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *GameServer) executeAction(w http.ResponseWriter, r *http.Request) {
	var body ActionRequest
	if err := decode(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.service.ExecuteAction(r.Context(), roomID(r), session(r), body.Action, body.Args); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *GameServer) switchSeat(w http.ResponseWriter, r *http.Request) {
	var body SwitchSeatRequest
	if err := decode(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.service.SwitchSeat(r.Context(), roomID(r), session(r), lo.FromPtr(body.Seat))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, view)
}

func roomID(r *http.Request) domain.RoomID {
	return domain.RoomID(mux.Vars(r)["roomId"])
}

func session(r *http.Request) string {
	id, _ := auth.SessionID(r.Context())
	return id
}

// decode reads a JSON body into v and validates it.
// An empty body is reported as io.EOF, unwrapped, for routes where the body is optional.
func decode[T any](r *http.Request, v *T) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return io.EOF
		}
		return errors.ErrInvalidArgument
	}
	return ValidateRequest(*v)
}

type errorResponse struct {
	Reason string `json:"reason"`
}

func (s *GameServer) writeError(w http.ResponseWriter, err error) {
	if stderrors.Is(err, io.EOF) {
		err = errors.ErrInvalidArgument
	}
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("Request failed", "error", err)
	} else {
		s.log.Debug("Request rejected", "status", status, "error", err)
	}
	s.writeJSON(w, status, errorResponse{Reason: errors.Reason(err)})
}

func (s *GameServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("Unable to write response", "error", err)
	}
}

// checkOrigin accepts same-origin requests, or any listed origin. "*" allows everything.
func (s *GameServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.config.AllowedOrigins) == 0 {
		return origin == "" || sameOrigin(r, origin)
	}
	return lo.Contains(s.config.AllowedOrigins, "*") || lo.Contains(s.config.AllowedOrigins, origin)
}

func sameOrigin(r *http.Request, origin string) bool {
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/khelghar/rajamantri/internal/models"
	gameService "github.com/khelghar/rajamantri/internal/services/game"
	roomService "github.com/khelghar/rajamantri/internal/services/room"
)

// Config holds configuration for the web handler
type Config struct {
	// RoomService handles lobby operations
	RoomService roomService.Service

	// GameService handles game session operations
	GameService gameService.Service

	// Hub fans realtime payloads out to room viewers
	Hub *Hub

	// BaseURL is the externally visible URL, used for QR join links
	BaseURL string
}

// Handler serves the HTTP API and the per-room websocket channel
type Handler struct {
	rooms   roomService.Service
	games   gameService.Service
	hub     *Hub
	baseURL string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	return &Handler{
		rooms:   cfg.RoomService,
		games:   cfg.GameService,
		hub:     cfg.Hub,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Router builds the route table
func (h *Handler) Router() *httprouter.Router {
	mux := httprouter.New()

	mux.PanicHandler = func(w http.ResponseWriter, r *http.Request, _ any) {
		writeError(w, http.StatusInternalServerError, "internal", "an unexpected error occurred")
	}

	mux.POST("/api/rooms", h.createRoom)
	mux.GET("/api/rooms/:code", h.getRoom)
	mux.POST("/api/rooms/:code/join", h.joinRoom)
	mux.POST("/api/rooms/:code/start", h.startGame)
	mux.GET("/api/rooms/:code/qr.png", h.roomQR)

	mux.POST("/api/games/:code/guess", h.submitGuess)
	mux.POST("/api/games/:code/scores", h.calculateScores)
	mux.POST("/api/games/:code/advance", h.advanceRound)
	mux.GET("/api/games/:code/view", h.getView)

	mux.GET("/ws/:code", h.serveWS)

	return mux
}

// ---- lobby endpoints ----

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		Name   string `json:"name"`
		Rounds int    `json:"rounds"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.rooms.CreateRoom(r.Context(), &roomService.CreateRoomInput{
		HostName:    req.Name,
		TotalRounds: req.Rounds,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"room":     roomPayload(out.Room),
		"playerId": out.HostID,
	})
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out, err := h.rooms.GetRoom(r.Context(), &roomService.GetRoomInput{
		Code: p.ByName("code"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"room": roomPayload(out.Room),
	})
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var req struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.rooms.JoinRoom(r.Context(), &roomService.JoinRoomInput{
		Code: p.ByName("code"),
		Name: req.Name,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.hub.BroadcastRoom(out.Room.Code, map[string]any{
		"type": "room-updated",
		"room": roomPayload(out.Room),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"room":     roomPayload(out.Room),
		"playerId": out.PlayerID,
	})
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.rooms.StartGame(r.Context(), &roomService.StartGameInput{
		Code:     p.ByName("code"),
		PlayerID: req.PlayerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// The game service has already pushed each viewer's first redacted
	// view; this event just flips lobby screens over.
	h.hub.BroadcastRoom(out.Room.Code, map[string]any{
		"type": "game-started",
		"room": roomPayload(out.Room),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"room": roomPayload(out.Room),
	})
}

func (h *Handler) roomQR(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	code := strings.ToUpper(p.ByName("code"))

	png, err := qrcode.Encode(fmt.Sprintf("%s/join/%s", h.baseURL, code), qrcode.Medium, 256)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// ---- game endpoints ----

func (h *Handler) submitGuess(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var req struct {
		PlayerID string `json:"playerId"`
		TargetID string `json:"targetId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.games.SubmitGuess(r.Context(), &gameService.SubmitGuessInput{
		RoomCode: roomCode(p),
		ViewerID: req.PlayerID,
		TargetID: req.TargetID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"isCorrect": out.IsCorrect,
	})
}

func (h *Handler) calculateScores(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.games.CalculateScores(r.Context(), &gameService.CalculateScoresInput{
		RoomCode: roomCode(p),
		ViewerID: req.PlayerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"round":        out.Result.Round,
		"gameFinished": out.GameFinished,
	})
}

func (h *Handler) advanceRound(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var req struct {
		PlayerID string `json:"playerId"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.games.AdvanceRound(r.Context(), &gameService.AdvanceRoundInput{
		RoomCode: roomCode(p),
		ViewerID: req.PlayerID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"currentRound": out.CurrentRound,
	})
}

func (h *Handler) getView(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	out, err := h.games.GetRedactedView(r.Context(), &gameService.GetRedactedViewInput{
		RoomCode: roomCode(p),
		ViewerID: r.URL.Query().Get("player"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state": out.View,
	})
}

// ---- websocket ----

// serveWS subscribes a connection to its room's channel and immediately
// pushes the caller's own redacted view, so a (re)joining viewer does
// not wait for the next mutation.
func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	code := strings.ToUpper(p.ByName("code"))
	playerID := r.URL.Query().Get("player")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := &Client{
		conn:     conn,
		send:     make(chan any, 8),
		roomCode: code,
		playerID: playerID,
	}

	h.hub.register(client)
	go client.writePump()

	if playerID != "" {
		out, err := h.games.GetRedactedView(r.Context(), &gameService.GetRedactedViewInput{
			RoomCode: code,
			ViewerID: playerID,
		})
		if err == nil {
			client.enqueue(StateMessage{
				Type:  "game-state",
				State: out.View,
			})
		} else if !errors.Is(err, gameService.ErrSessionNotFound) {
			log.Printf("initial view for %s in %s: %v", playerID, code, err)
		}
	}

	client.readPump(h.hub)
}

// ---- helpers ----

func roomCode(p httprouter.Params) string {
	return strings.ToUpper(p.ByName("code"))
}

type roomPlayerJSON struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	IsHost   bool      `json:"isHost"`
	JoinedAt time.Time `json:"joinedAt"`
}

type roomJSON struct {
	Code        string            `json:"roomCode"`
	HostName    string            `json:"hostName"`
	Rounds      int               `json:"rounds"`
	MaxPlayers  int               `json:"maxPlayers"`
	Status      models.RoomStatus `json:"status"`
	Players     []roomPlayerJSON  `json:"players"`
	CreatedAt   time.Time         `json:"createdAt"`
	StartedAt   *time.Time        `json:"startedAt,omitempty"`
}

func roomPayload(room *models.Room) roomJSON {
	out := roomJSON{
		Code:       room.Code,
		HostName:   room.HostName,
		Rounds:     room.TotalRounds,
		MaxPlayers: room.MaxPlayers,
		Status:     room.Status,
		Players:    make([]roomPlayerJSON, 0, len(room.Players)),
		CreatedAt:  room.CreatedAt,
	}

	for _, p := range room.Players {
		out.Players = append(out.Players, roomPlayerJSON{
			ID:       p.ID,
			Name:     p.Name,
			IsHost:   p.IsHost,
			JoinedAt: p.JoinedAt,
		})
	}

	if !room.StartedAt.IsZero() {
		started := room.StartedAt
		out.StartedAt = &started
	}

	return out
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"kind":    kind,
			"message": message,
		},
	})
}

// writeServiceError maps service errors to HTTP statuses. Rule
// violations are deterministic and not retryable; anything unrecognized
// is treated as transient and worth retrying.
func writeServiceError(w http.ResponseWriter, err error) {
	var gameErr gameService.GameError
	if errors.As(err, &gameErr) {
		writeError(w, gameStatus(gameErr), gameErr.Kind(), gameErr.Error())
		return
	}

	var roomErr roomService.RoomError
	if errors.As(err, &roomErr) {
		writeError(w, roomStatus(roomErr), "room_error", roomErr.Error())
		return
	}

	log.Printf("transient error: %v", err)
	writeError(w, http.StatusInternalServerError, "transient", "a temporary error occurred, please retry")
}

func gameStatus(err gameService.GameError) int {
	switch err {
	case gameService.ErrSessionNotFound:
		return http.StatusNotFound
	case gameService.ErrNotSipahi:
		return http.StatusForbidden
	case gameService.ErrGuessAlreadyMade, gameService.ErrInvalidPhase,
		gameService.ErrNoGuessYet, gameService.ErrRoundNotComplete:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func roomStatus(err roomService.RoomError) int {
	switch err {
	case roomService.ErrRoomNotFound:
		return http.StatusNotFound
	case roomService.ErrNotHost:
		return http.StatusForbidden
	case roomService.ErrRoomFull, roomService.ErrNameTaken, roomService.ErrRoomNotJoinable:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

package web

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/khelghar/rajamantri/internal/services/game"
)

// StateMessage pushes a viewer's redacted game state
type StateMessage struct {
	Type  string             `json:"type"` // "game-state"
	State *game.RedactedView `json:"state"`
}

// ErrorMessage reports a rejected action to the acting viewer only
type ErrorMessage struct {
	Type    string `json:"type"` // "action-rejected"
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Client is one websocket connection subscribed to a room
type Client struct {
	conn     *websocket.Conn
	send     chan any
	roomCode string
	playerID string
}

// Hub tracks which connections watch which room and fans payloads out
// to them. It implements the game service's Broadcaster, so the core
// never touches a connection.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]bool),
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[c.roomCode]
	if !ok {
		clients = make(map[*Client]bool)
		h.rooms[c.roomCode] = clients
	}
	clients[c] = true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[c.roomCode]
	if !ok {
		return
	}

	if clients[c] {
		delete(clients, c)
		close(c.send)
	}

	if len(clients) == 0 {
		delete(h.rooms, c.roomCode)
	}
}

// Viewers returns the distinct player identities watching a room
func (h *Hub) Viewers(roomCode string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	seen := make(map[string]bool)
	viewers := make([]string, 0, len(h.rooms[roomCode]))

	for c := range h.rooms[roomCode] {
		if c.playerID == "" || seen[c.playerID] {
			continue
		}
		seen[c.playerID] = true
		viewers = append(viewers, c.playerID)
	}

	return viewers
}

// SendState delivers a redacted view to every connection a viewer has
// open in the room. A viewer who already disconnected is a no-op.
func (h *Hub) SendState(roomCode, viewerID string, view *game.RedactedView) {
	h.sendTo(roomCode, viewerID, StateMessage{
		Type:  "game-state",
		State: view,
	})
}

// SendError delivers a rejection to the acting viewer only
func (h *Hub) SendError(roomCode, viewerID, kind, message string) {
	h.sendTo(roomCode, viewerID, ErrorMessage{
		Type:    "action-rejected",
		Kind:    kind,
		Message: message,
	})
}

// BroadcastRoom delivers a payload to every connection in a room,
// regardless of player identity. Used for lobby updates.
func (h *Hub) BroadcastRoom(roomCode string, msg any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[roomCode] {
		c.enqueue(msg)
	}
}

func (h *Hub) sendTo(roomCode, viewerID string, msg any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[roomCode] {
		if c.playerID == viewerID {
			c.enqueue(msg)
		}
	}
}

// enqueue hands a message to the client's write pump without blocking
// the hub; a client that cannot keep up just misses the message and
// catches up on the next state push.
func (c *Client) enqueue(msg any) {
	select {
	case c.send <- msg:
	default:
		log.Printf("dropping message for slow client %s in room %s", c.playerID, c.roomCode)
	}
}

// readPump consumes the connection until it closes. Inbound game
// actions arrive over HTTP; the socket only carries the subscription.
func (c *Client) readPump(h *Hub) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

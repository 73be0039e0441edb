package models

import (
	"strings"
	"time"
)

// RoomStatus represents the lobby state of a room
type RoomStatus string

const (
	// RoomStatusWaiting indicates the room is accepting players
	RoomStatusWaiting RoomStatus = "waiting"

	// RoomStatusPlaying indicates the game has started
	RoomStatusPlaying RoomStatus = "playing"
)

// RoomPlayer is a player entry in the lobby, before roles exist
type RoomPlayer struct {
	// ID is the identity assigned when the player joined
	ID string

	// Name is the display name, unique within the room
	Name string

	// IsHost is true for the player who created the room
	IsHost bool

	// JoinedAt is when the player joined
	JoinedAt time.Time
}

// Room represents a lobby that four players fill before a game starts
type Room struct {
	// Code is the shareable 6-character room code
	Code string

	// HostName is the display name of the room's creator
	HostName string

	// TotalRounds is the round count chosen at creation, 1 to 10
	TotalRounds int

	// MaxPlayers is the seat count; always four for this game
	MaxPlayers int

	// Status is the lobby state
	Status RoomStatus

	// Players lists the joined players in join order
	Players []RoomPlayer

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// StartedAt is when the host started the game, zero until then
	StartedAt time.Time
}

// HostID returns the identity of the host player, or empty if absent
func (r *Room) HostID() string {
	for _, p := range r.Players {
		if p.IsHost {
			return p.ID
		}
	}
	return ""
}

// HasPlayerName reports whether a display name is already taken,
// compared case-insensitively like the join flow requires
func (r *Room) HasPlayerName(name string) bool {
	for _, p := range r.Players {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

package room

import (
	"github.com/khelghar/rajamantri/internal/common/clock"
	"github.com/khelghar/rajamantri/internal/common/uuid"
	"github.com/khelghar/rajamantri/internal/models"
	roomRepo "github.com/khelghar/rajamantri/internal/repositories/room"
	gameService "github.com/khelghar/rajamantri/internal/services/game"
)

// Config holds configuration for the room service
type Config struct {
	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Service dependencies
	GameService   gameService.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// HostName is the display name of the creating player
	HostName string

	// TotalRounds is the game length, 1 to 10
	TotalRounds int
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Room is the created room
	Room *models.Room

	// HostID is the identity assigned to the host player
	HostID string
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// Code is the room code to join
	Code string

	// Name is the display name, unique within the room
	Name string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// Room is the updated room
	Room *models.Room

	// PlayerID is the identity assigned to the joining player
	PlayerID string
}

// GetRoomInput contains parameters for fetching a room
type GetRoomInput struct {
	// Code is the room code
	Code string
}

// GetRoomOutput contains the fetched room
type GetRoomOutput struct {
	// Room is the room record
	Room *models.Room
}

// StartGameInput contains parameters for starting the game
type StartGameInput struct {
	// Code is the room code
	Code string

	// PlayerID is the identity of the player requesting the start
	PlayerID string
}

// StartGameOutput contains the result of starting the game
type StartGameOutput struct {
	// Room is the updated room
	Room *models.Room

	// Session is the freshly dealt game session
	Session *models.Session
}

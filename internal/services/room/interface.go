package room

import "context"

// Service defines the interface for room lobby operations
type Service interface {
	// CreateRoom creates a room with its host as the first player
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to a waiting room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// GetRoom retrieves a room by code
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// StartGame moves a full room into play and creates the game session
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)
}

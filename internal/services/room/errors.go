package room

// RoomError is a deterministic rule violation in the lobby flow
type RoomError string

// Error implements the error interface
func (e RoomError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound    RoomError = "room not found"
	ErrRoomNotJoinable RoomError = "room is not accepting new players"
	ErrRoomFull        RoomError = "room is full"
	ErrNameTaken       RoomError = "name already taken in this room"
	ErrNameRequired    RoomError = "a display name is required"
	ErrInvalidRounds   RoomError = "rounds must be between 1 and 10"
	ErrNotHost         RoomError = "only the host can start the game"
	ErrNotEnoughSeats  RoomError = "four players must join before the game can start"

	ErrNilConfig      RoomError = "config cannot be nil"
	ErrNilRoomRepo    RoomError = "room repository cannot be nil"
	ErrNilGameService RoomError = "game service cannot be nil"
	ErrNilClock       RoomError = "clock cannot be nil"
	ErrNilUUID        RoomError = "UUID generator cannot be nil"
)

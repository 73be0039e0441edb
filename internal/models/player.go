package models

// Player represents one of the four participants in a session.
// Players are owned by their session and never shared across sessions.
type Player struct {
	// ID is the stable identity assigned by the room at join time
	ID string

	// Name is the display name chosen when joining the room
	Name string

	// Role is the role held this round; RoleUnassigned before the deal
	Role Role

	// Points is the cumulative score, only changed by scoring
	Points int
}

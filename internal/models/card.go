package models

// Card is the per-player projection of a dealt role
type Card struct {
	// PlayerID is the identity of the player holding the card
	PlayerID string

	// Role is the role printed on the card
	Role Role

	// IsRevealed is true once the card is face up for everyone
	IsRevealed bool
}

package models

import "time"

// Guess records the sipahi's single accusation for a round.
// It is created exactly once per round and never mutated afterwards.
type Guess struct {
	// GuessedPlayerID is the identity of the accused player
	GuessedPlayerID string

	// IsCorrect is true if the accused player held the chor card
	IsCorrect bool

	// ResolvedAt is when the guess was made
	ResolvedAt time.Time
}

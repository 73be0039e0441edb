package models

import "time"

// Session is the aggregate root for one game of raja-mantri-chor-sipahi.
// It holds exactly four players for its whole lifetime and is persisted
// as a single record keyed by room code.
type Session struct {
	// RoomCode is the code of the room this game belongs to
	RoomCode string

	// Phase is the current stage of the round lifecycle
	Phase Phase

	// CurrentRound is the 1-based round number, never above TotalRounds
	CurrentRound int

	// TotalRounds is how many rounds the game runs
	TotalRounds int

	// Players holds the four participants in seat order
	Players []*Player

	// Cards holds the four dealt cards for the current round
	Cards []*Card

	// Guess is the sipahi's accusation for the current round, nil until made
	Guess *Guess

	// RoundResults is the append-only audit trail of scored rounds
	RoundResults []RoundResult

	// StartedAt is when the session was created
	StartedAt time.Time

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time
}

// PlayerByID returns the player with the given identity, or nil
func (s *Session) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerByRole returns the player currently holding the given role, or nil
func (s *Session) PlayerByRole(role Role) *Player {
	for _, p := range s.Players {
		if p.Role == role {
			return p
		}
	}
	return nil
}

package game

import (
	"github.com/khelghar/rajamantri/internal/common/clock"
	"github.com/khelghar/rajamantri/internal/models"
	sessionRepo "github.com/khelghar/rajamantri/internal/repositories/session"
	"github.com/khelghar/rajamantri/internal/shuffle"
)

const (
	// MinRounds is the smallest allowed game length
	MinRounds = 1

	// MaxRounds is the largest allowed game length
	MaxRounds = 10

	// PlayerCount is the fixed number of players per session
	PlayerCount = 4
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock       clock.Clock
	Shuffler    shuffle.Shuffler
	Broadcaster Broadcaster
}

// Seat identifies one of the four players supplied by the room at game
// start
type Seat struct {
	// ID is the stable player identity
	ID string

	// Name is the display name
	Name string
}

// CreateSessionInput contains parameters for starting a game
type CreateSessionInput struct {
	// RoomCode is the room the game belongs to
	RoomCode string

	// Players lists the four finalized players in seat order
	Players []Seat

	// TotalRounds is the round count, between MinRounds and MaxRounds
	TotalRounds int
}

// CreateSessionOutput contains the result of starting a game
type CreateSessionOutput struct {
	// Session is the freshly dealt session
	Session *models.Session
}

// SubmitGuessInput contains parameters for the sipahi's accusation
type SubmitGuessInput struct {
	// RoomCode is the room the game belongs to
	RoomCode string

	// ViewerID is the identity of the acting viewer
	ViewerID string

	// TargetID is the identity of the accused player
	TargetID string
}

// SubmitGuessOutput contains the result of an accusation
type SubmitGuessOutput struct {
	// IsCorrect is true if the accused player held the chor card
	IsCorrect bool
}

// CalculateScoresInput contains parameters for scoring the round
type CalculateScoresInput struct {
	// RoomCode is the room the game belongs to
	RoomCode string

	// ViewerID is the acting viewer, used only to address rejections;
	// may be empty for callers without a viewer identity
	ViewerID string
}

// CalculateScoresOutput contains the result of scoring the round
type CalculateScoresOutput struct {
	// Result is the appended round record
	Result models.RoundResult

	// GameFinished is true when the final round was just scored
	GameFinished bool
}

// AdvanceRoundInput contains parameters for starting the next round
type AdvanceRoundInput struct {
	// RoomCode is the room the game belongs to
	RoomCode string

	// ViewerID is the acting viewer, used only to address rejections
	ViewerID string
}

// AdvanceRoundOutput contains the result of starting the next round
type AdvanceRoundOutput struct {
	// CurrentRound is the new 1-based round number
	CurrentRound int
}

// GetRedactedViewInput contains parameters for a read-only view request
type GetRedactedViewInput struct {
	// RoomCode is the room the game belongs to
	RoomCode string

	// ViewerID is the identity the view is redacted for
	ViewerID string
}

// GetRedactedViewOutput contains a per-viewer view of the session
type GetRedactedViewOutput struct {
	// View is the redacted projection
	View *RedactedView
}

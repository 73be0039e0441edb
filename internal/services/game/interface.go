package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/khelghar/rajamantri/internal/services/game Service

import "context"

// Service defines the interface for game session operations
type Service interface {
	// CreateSession starts a game for a room with exactly four players,
	// dealing the first round immediately
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// SubmitGuess records the sipahi's accusation for the current round
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// CalculateScores applies round scoring and appends the round result
	CalculateScores(ctx context.Context, input *CalculateScoresInput) (*CalculateScoresOutput, error)

	// AdvanceRound begins the next round after scoring
	AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error)

	// GetRedactedView returns the session as one viewer is allowed to
	// see it; read-only
	GetRedactedView(ctx context.Context, input *GetRedactedViewInput) (*GetRedactedViewOutput, error)
}

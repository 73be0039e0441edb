package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/khelghar/rajamantri/internal/repositories/session Repository

import (
	"context"

	"github.com/khelghar/rajamantri/internal/models"
)

// Repository defines the interface for session persistence. The whole
// aggregate is loaded and replaced atomically, keyed by room code.
type Repository interface {
	// SaveSession atomically replaces the session record for its room
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves the session for a room code
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes the session for a room code
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}

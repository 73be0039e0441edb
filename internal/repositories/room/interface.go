package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/khelghar/rajamantri/internal/repositories/room Repository

import (
	"context"

	"github.com/khelghar/rajamantri/internal/models"
)

// Repository defines the interface for room persistence
type Repository interface {
	// SaveRoom persists a room record, replacing any previous one
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by its code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// DeleteRoom removes a room record
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error
}

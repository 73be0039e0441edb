package session

import "github.com/khelghar/rajamantri/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	RoomCode string
}

type DeleteSessionInput struct {
	RoomCode string
}

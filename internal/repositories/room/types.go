package room

import "github.com/khelghar/rajamantri/internal/models"

type SaveRoomInput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Code string
}

type DeleteRoomInput struct {
	Code string
}

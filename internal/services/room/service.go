package room

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"

	"github.com/khelghar/rajamantri/internal/common/clock"
	"github.com/khelghar/rajamantri/internal/common/uuid"
	"github.com/khelghar/rajamantri/internal/models"
	roomRepo "github.com/khelghar/rajamantri/internal/repositories/room"
	gameService "github.com/khelghar/rajamantri/internal/services/game"
)

const (
	// roomCodeLength is the length of shareable room codes
	roomCodeLength = 6

	// roomCodeLetters is the room code alphabet
	roomCodeLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxCodeAttempts bounds collision retries during code generation
	maxCodeAttempts = 10
)

// service implements the Service interface
type service struct {
	roomRepo roomRepo.Repository
	games    gameService.Service
	clock    clock.Clock
	uuidGen  uuid.UUID
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUID
	}

	return &service{
		roomRepo: cfg.RoomRepo,
		games:    cfg.GameService,
		clock:    cfg.Clock,
		uuidGen:  cfg.UUIDGenerator,
	}, nil
}

// CreateRoom creates a room with the caller as host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if strings.TrimSpace(input.HostName) == "" {
		return nil, ErrNameRequired
	}

	if input.TotalRounds < gameService.MinRounds || input.TotalRounds > gameService.MaxRounds {
		return nil, ErrInvalidRounds
	}

	code, err := s.newRoomCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	hostID := s.uuidGen.NewUUID()

	room := &models.Room{
		Code:        code,
		HostName:    input.HostName,
		TotalRounds: input.TotalRounds,
		MaxPlayers:  gameService.PlayerCount,
		Status:      models.RoomStatusWaiting,
		Players: []models.RoomPlayer{
			{
				ID:       hostID,
				Name:     input.HostName,
				IsHost:   true,
				JoinedAt: now,
			},
		},
		CreatedAt: now,
	}

	err = s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
	if err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &CreateRoomOutput{
		Room:   room,
		HostID: hostID,
	}, nil
}

// JoinRoom adds a player to a waiting room. Codes are matched
// case-insensitively; names must be unique within the room.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if room.Status != models.RoomStatusWaiting {
		return nil, ErrRoomNotJoinable
	}

	if len(room.Players) >= room.MaxPlayers {
		return nil, ErrRoomFull
	}

	if room.HasPlayerName(input.Name) {
		return nil, ErrNameTaken
	}

	playerID := s.uuidGen.NewUUID()

	room.Players = append(room.Players, models.RoomPlayer{
		ID:       playerID,
		Name:     input.Name,
		JoinedAt: s.clock.Now(),
	})

	err = s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
	if err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &JoinRoomOutput{
		Room:     room,
		PlayerID: playerID,
	}, nil
}

// GetRoom retrieves a room by code
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{
		Room: room,
	}, nil
}

// StartGame moves a full room into play and deals the first round. Only
// the host may start, and the game needs all four seats filled.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if room.Status != models.RoomStatusWaiting {
		return nil, ErrRoomNotJoinable
	}

	if room.HostID() != input.PlayerID {
		return nil, ErrNotHost
	}

	if len(room.Players) != gameService.PlayerCount {
		return nil, ErrNotEnoughSeats
	}

	seats := make([]gameService.Seat, 0, len(room.Players))
	for _, p := range room.Players {
		seats = append(seats, gameService.Seat{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	sessionOutput, err := s.games.CreateSession(ctx, &gameService.CreateSessionInput{
		RoomCode:    room.Code,
		Players:     seats,
		TotalRounds: room.TotalRounds,
	})
	if err != nil {
		return nil, err
	}

	room.Status = models.RoomStatusPlaying
	room.StartedAt = s.clock.Now()

	err = s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room})
	if err != nil {
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	return &StartGameOutput{
		Room:    room,
		Session: sessionOutput.Session,
	}, nil
}

// getRoom loads a room by normalized code, mapping the repository's
// not-found to the service error
func (s *service) getRoom(ctx context.Context, code string) (*models.Room, error) {
	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		Code: strings.ToUpper(strings.TrimSpace(code)),
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

// newRoomCode generates a crypto-random room code that does not collide
// with an existing room
func (s *service) newRoomCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		buf := make([]byte, roomCodeLength)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		out := make([]byte, roomCodeLength)
		for i := range out {
			out[i] = roomCodeLetters[int(buf[i])%len(roomCodeLetters)]
		}
		code := string(out)

		_, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: code})
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check room code: %w", err)
		}
	}

	return "", errors.New("failed to generate a unique room code")
}

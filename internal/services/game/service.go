package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/khelghar/rajamantri/internal/common/clock"
	"github.com/khelghar/rajamantri/internal/models"
	sessionRepo "github.com/khelghar/rajamantri/internal/repositories/session"
	"github.com/khelghar/rajamantri/internal/shuffle"
)

// persistTimeout bounds every load/save round trip; a timeout surfaces
// as a transient error and the transition is not considered committed.
const persistTimeout = 5 * time.Second

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	shuffler    shuffle.Shuffler
	broadcaster Broadcaster

	// One lock per room: mutations for a room serialize for the whole
	// load-validate-persist span. Rooms never share state.
	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Broadcaster == nil {
		return nil, ErrNilBroadcaster
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		shuffler:    cfg.Shuffler,
		broadcaster: cfg.Broadcaster,
		roomLocks:   make(map[string]*sync.Mutex),
	}, nil
}

// roomLock returns the mutex serializing mutations for one room
func (s *service) roomLock(roomCode string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.roomLocks[roomCode]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomCode] = lock
	}

	return lock
}

// CreateSession starts a game for a finalized room of four players and
// deals the first round
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Players) != PlayerCount {
		return nil, ErrInvalidPlayerCount
	}

	if input.TotalRounds < MinRounds || input.TotalRounds > MaxRounds {
		return nil, ErrInvalidTotalRounds
	}

	lock := s.roomLock(input.RoomCode)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()

	players := make([]*models.Player, 0, PlayerCount)
	for _, seat := range input.Players {
		players = append(players, &models.Player{
			ID:   seat.ID,
			Name: seat.Name,
		})
	}

	sess := &models.Session{
		RoomCode:     input.RoomCode,
		Phase:        models.PhaseRoleAssignment,
		CurrentRound: 1,
		TotalRounds:  input.TotalRounds,
		Players:      players,
		RoundResults: []models.RoundResult{},
		StartedAt:    now,
		UpdatedAt:    now,
	}

	if err := startRound(sess, s.shuffler, now); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	s.broadcastState(sess)

	return &CreateSessionOutput{
		Session: sess,
	}, nil
}

// SubmitGuess records the sipahi's accusation and reveals the round
func (s *service) SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.roomLock(input.RoomCode)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	if err := submitGuess(sess, input.ViewerID, input.TargetID, s.clock.Now()); err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	s.broadcastState(sess)

	return &SubmitGuessOutput{
		IsCorrect: sess.Guess.IsCorrect,
	}, nil
}

// CalculateScores scores the revealed round and appends its result
func (s *service) CalculateScores(ctx context.Context, input *CalculateScoresInput) (*CalculateScoresOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.roomLock(input.RoomCode)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	result, err := calculateScores(sess, s.clock.Now())
	if err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	s.broadcastState(sess)

	return &CalculateScoresOutput{
		Result:       result,
		GameFinished: sess.Phase == models.PhaseGameFinished,
	}, nil
}

// AdvanceRound deals the next round after scoring
func (s *service) AdvanceRound(ctx context.Context, input *AdvanceRoundInput) (*AdvanceRoundOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lock := s.roomLock(input.RoomCode)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	if err := advanceRound(sess, s.shuffler, s.clock.Now()); err != nil {
		return nil, s.reject(input.RoomCode, input.ViewerID, err)
	}

	if err := s.persist(ctx, sess); err != nil {
		return nil, err
	}

	s.broadcastState(sess)

	return &AdvanceRoundOutput{
		CurrentRound: sess.CurrentRound,
	}, nil
}

// GetRedactedView returns the session as one viewer may see it. No
// persistence side effects; used when a viewer joins or rejoins.
func (s *service) GetRedactedView(ctx context.Context, input *GetRedactedViewInput) (*GetRedactedViewOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.load(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	return &GetRedactedViewOutput{
		View: Redact(sess, input.ViewerID),
	}, nil
}

// load fetches the session for a room, mapping the repository's
// not-found to the service error
func (s *service) load(ctx context.Context, roomCode string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		RoomCode: roomCode,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return sess, nil
}

// persist commits the mutated session. The write is detached from the
// caller's cancellation so an accepted transition always runs to
// completion, but stays bounded by the persist timeout.
func (s *service) persist(ctx context.Context, sess *models.Session) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// broadcastState fans a freshly redacted view out to every viewer of
// the room. Runs after the persist commits; delivery failures are the
// transport's problem and never roll the commit back.
func (s *service) broadcastState(sess *models.Session) {
	for _, viewerID := range s.broadcaster.Viewers(sess.RoomCode) {
		s.broadcaster.SendState(sess.RoomCode, viewerID, Redact(sess, viewerID))
	}
}

// reject reports a rule violation to the acting viewer and passes the
// error back to the caller unchanged
func (s *service) reject(roomCode, viewerID string, err error) error {
	var gameErr GameError
	if viewerID != "" && errors.As(err, &gameErr) {
		s.broadcaster.SendError(roomCode, viewerID, gameErr.Kind(), gameErr.Error())
	}

	return err
}

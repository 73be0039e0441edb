package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/khelghar/rajamantri/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTestSession() *models.Session {
	return &models.Session{
		RoomCode:     "ABC123",
		Phase:        models.PhaseCardDistribution,
		CurrentRound: 1,
		TotalRounds:  3,
		Players: []*models.Player{
			{ID: "p1", Name: "Asha", Role: models.RoleRaja, Points: 1000},
			{ID: "p2", Name: "Bina", Role: models.RoleMantri},
			{ID: "p3", Name: "Chand", Role: models.RoleChor},
			{ID: "p4", Name: "Dev", Role: models.RoleSipahi},
		},
		Cards: []*models.Card{
			{PlayerID: "p1", Role: models.RoleRaja, IsRevealed: true},
			{PlayerID: "p2", Role: models.RoleMantri},
			{PlayerID: "p3", Role: models.RoleChor},
			{PlayerID: "p4", Role: models.RoleSipahi, IsRevealed: true},
		},
		RoundResults: []models.RoundResult{},
		StartedAt:    s.testNow,
		UpdatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.newTestSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		RoomCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("ABC123", retrieved.RoomCode)
	s.Equal(models.PhaseCardDistribution, retrieved.Phase)
	s.Equal(1, retrieved.CurrentRound)
	s.Equal(3, retrieved.TotalRounds)
	s.Len(retrieved.Players, 4)
	s.Equal(models.RoleRaja, retrieved.Players[0].Role)
	s.Equal(1000, retrieved.Players[0].Points)
	s.Len(retrieved.Cards, 4)
	s.True(retrieved.Cards[0].IsRevealed)
	s.False(retrieved.Cards[1].IsRevealed)
	s.Nil(retrieved.Guess)
	s.Equal(s.testNow.Unix(), retrieved.StartedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		RoomCode: "NOPE99",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesWholeRecord() {
	sess := s.newTestSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	// Mutate and save again; the stored record must match the new state
	sess.Phase = models.PhaseReveal
	sess.Guess = &models.Guess{
		GuessedPlayerID: "p2",
		IsCorrect:       false,
		ResolvedAt:      s.testNow,
	}
	for _, c := range sess.Cards {
		c.IsRevealed = true
	}

	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		RoomCode: "ABC123",
	})
	s.Require().NoError(err)
	s.Equal(models.PhaseReveal, retrieved.Phase)
	s.Require().NotNil(retrieved.Guess)
	s.Equal("p2", retrieved.Guess.GuessedPlayerID)
	s.False(retrieved.Guess.IsCorrect)
	for _, c := range retrieved.Cards {
		s.True(c.IsRevealed)
	}
}

func (s *RedisRepositoryTestSuite) TestFinishedSessionLeavesActiveSet() {
	sess := s.newTestSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	members, err := s.client.SMembers(context.Background(), activeSessionsKey).Result()
	s.Require().NoError(err)
	s.Contains(members, "ABC123")

	sess.Phase = models.PhaseGameFinished
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	members, err = s.client.SMembers(context.Background(), activeSessionsKey).Result()
	s.Require().NoError(err)
	s.NotContains(members, "ABC123")
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.newTestSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		RoomCode: "ABC123",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		RoomCode: "ABC123",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

package room

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
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

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

func (s *RedisRepositoryTestSuite) TestSaveAndGetRoom() {
	room := &models.Room{
		Code:        "XYZ789",
		HostName:    "Asha",
		TotalRounds: 5,
		MaxPlayers:  4,
		Status:      models.RoomStatusWaiting,
		Players: []models.RoomPlayer{
			{ID: "p1", Name: "Asha", IsHost: true, JoinedAt: s.testNow},
		},
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "XYZ789"})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("XYZ789", retrieved.Code)
	s.Equal("Asha", retrieved.HostName)
	s.Equal(5, retrieved.TotalRounds)
	s.Equal(models.RoomStatusWaiting, retrieved.Status)
	s.Len(retrieved.Players, 1)
	s.True(retrieved.Players[0].IsHost)
	s.Equal("p1", retrieved.HostID())
}

func (s *RedisRepositoryTestSuite) TestGetRoomNotFound() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "NOPE99"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	room := &models.Room{
		Code:       "XYZ789",
		MaxPlayers: 4,
		Status:     models.RoomStatusWaiting,
		CreatedAt:  s.testNow,
	}

	err := s.repo.SaveRoom(context.Background(), &SaveRoomInput{Room: room})
	s.Require().NoError(err)

	err = s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{Code: "XYZ789"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "XYZ789"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

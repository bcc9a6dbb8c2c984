package challenge

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/castbot/castbot/internal/models"
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

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testChallenge() *models.Challenge {
	return &models.Challenge{
		ID:             "test-challenge-id",
		ChallengerID:   "test-challenger-id",
		ChallengerName: "Alice",
		ObjectName:     "rock",
		CreatedAt:      s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetChallenge() {
	c := s.testChallenge()

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: c,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: c.ID,
	})
	s.Require().NoError(err)
	s.Equal(c.ChallengerID, retrieved.ChallengerID)
	s.Equal(c.ChallengerName, retrieved.ChallengerName)
	s.Equal(c.ObjectName, retrieved.ObjectName)
	s.True(c.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *RedisRepositoryTestSuite) TestGetChallengeNotFound() {
	_, err := s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrChallengeNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteChallenge() {
	c := s.testChallenge()

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: c,
	})
	s.Require().NoError(err)

	err = s.repo.DeleteChallenge(context.Background(), &DeleteChallengeInput{
		ChallengeID: c.ID,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: c.ID,
	})
	s.ErrorIs(err, ErrChallengeNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteAbsentChallengeIsNoOp() {
	err := s.repo.DeleteChallenge(context.Background(), &DeleteChallengeInput{
		ChallengeID: "missing",
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestUnansweredChallengeExpires() {
	c := s.testChallenge()

	err := s.repo.SaveChallenge(context.Background(), &SaveChallengeInput{
		Challenge: c,
	})
	s.Require().NoError(err)

	// A saved challenge carries the store TTL so it cannot outlive it.
	s.mr.FastForward(time.Hour + time.Minute)

	_, err = s.repo.GetChallenge(context.Background(), &GetChallengeInput{
		ChallengeID: c.ID,
	})
	s.ErrorIs(err, ErrChallengeNotFound)
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/jcarrick/flagboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		TeamID:       "team_abc123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(account.Email, retrieved.Email)
	s.Equal(account.TeamID, retrieved.TeamID)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccountByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Team score tests

func (s *StorageSuite) TestSaveAndGetTeamScore() {
	score := &model.TeamScore{
		TeamID:              "team_abc123",
		Points:              300,
		CompletedChallenges: []model.ChallengeID{"easy-1", "medium-1"},
		LastUpdated:         time.Now().UTC(),
	}

	err := s.storage.SaveTeamScore(s.ctx, score)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTeamScore(s.ctx, "team_abc123")
	s.Require().NoError(err)
	s.Equal(300, retrieved.Points)
	s.Equal([]model.ChallengeID{"easy-1", "medium-1"}, retrieved.CompletedChallenges)
}

func (s *StorageSuite) TestGetTeamScoreNotFound() {
	_, err := s.storage.GetTeamScore(s.ctx, "team_nothere")
	s.ErrorIs(err, model.ErrTeamScoreNotFound)
}

func (s *StorageSuite) TestListTeamScores() {
	for _, id := range []model.TeamID{"team_a", "team_b"} {
		score := model.NewTeamScore(id)
		score.Points = 100
		s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))
	}

	scores, err := s.storage.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Len(scores, 2)
}

func (s *StorageSuite) TestListTeamScoresEmpty() {
	scores, err := s.storage.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
}

func (s *StorageSuite) TestBackendFailureIsStorageUnavailable() {
	score := model.NewTeamScore("team_abc123")
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))

	s.mini.Close()

	_, err := s.storage.GetTeamScore(s.ctx, "team_abc123")
	s.ErrorIs(err, model.ErrStorageUnavailable)

	err = s.storage.SaveTeamScore(s.ctx, score)
	s.ErrorIs(err, model.ErrStorageUnavailable)
}

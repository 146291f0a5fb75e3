package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jcarrick/flagboard/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		TeamID:       "team_abc123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(account.TeamID, retrieved.TeamID)
	s.Equal(account.PasswordHash, retrieved.PasswordHash)
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
		LastUpdated:         time.Now(),
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

func (s *StorageSuite) TestGetReturnsCopy() {
	score := model.NewTeamScore("team_abc123")
	score.Points = 100
	score.CompletedChallenges = []model.ChallengeID{"easy-1"}
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))

	// Mutating a fetched record must not change stored state
	fetched, err := s.storage.GetTeamScore(s.ctx, "team_abc123")
	s.Require().NoError(err)
	fetched.Points = 9999
	fetched.CompletedChallenges = append(fetched.CompletedChallenges, "hard-1")

	stored, err := s.storage.GetTeamScore(s.ctx, "team_abc123")
	s.Require().NoError(err)
	s.Equal(100, stored.Points)
	s.Len(stored.CompletedChallenges, 1)
}

func (s *StorageSuite) TestSaveOverwrites() {
	score := model.NewTeamScore("team_abc123")
	score.Points = 100
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))

	score.Points = 200
	score.CompletedChallenges = append(score.CompletedChallenges, "medium-1")
	s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))

	stored, err := s.storage.GetTeamScore(s.ctx, "team_abc123")
	s.Require().NoError(err)
	s.Equal(200, stored.Points)
}

func (s *StorageSuite) TestListTeamScores() {
	for _, id := range []model.TeamID{"team_a", "team_b", "team_c"} {
		score := model.NewTeamScore(id)
		score.Points = 100
		s.Require().NoError(s.storage.SaveTeamScore(s.ctx, score))
	}

	scores, err := s.storage.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Len(scores, 3)
}

func (s *StorageSuite) TestListTeamScoresEmpty() {
	scores, err := s.storage.ListTeamScores(s.ctx)
	s.Require().NoError(err)
	s.Empty(scores)
}

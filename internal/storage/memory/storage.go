package memory

import (
	"context"
	"sync"

	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
//
// Saved records are cloned on the way in and out, so a caller mutating a
// fetched team score cannot change stored state until it saves
type Storage struct {
	mu sync.RWMutex

	accounts map[string]*model.Account
	scores   map[model.TeamID]*model.TeamScore
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts: make(map[string]*model.Account),
		scores:   make(map[model.TeamID]*model.TeamScore),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *account
	s.accounts[account.Email] = &copied
	return nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[email]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// Team score operations

func (s *Storage) SaveTeamScore(ctx context.Context, score *model.TeamScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[score.TeamID] = score.Clone()
	return nil
}

func (s *Storage) GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[teamID]
	if !ok {
		return nil, model.ErrTeamScoreNotFound
	}
	return score.Clone(), nil
}

func (s *Storage) ListTeamScores(ctx context.Context) ([]*model.TeamScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	scores := make([]*model.TeamScore, 0, len(s.scores))
	for _, score := range s.scores {
		scores = append(scores, score.Clone())
	}
	return scores, nil
}

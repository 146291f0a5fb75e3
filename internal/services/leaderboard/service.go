package leaderboard

import (
	"context"
	"sort"

	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage"
)

// Service derives a total ranking over all team score records
type Service struct {
	storage storage.Storage
}

// New creates a new leaderboard Service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Rank returns all team score records ordered by points descending,
// tie-broken by earliest LastUpdated (reaching a score first ranks higher)
//
// Teams that have never scored have no record and do not appear. Pure read;
// safe to call concurrently with submissions.
func (s *Service) Rank(ctx context.Context) ([]*model.TeamScore, error) {
	scores, err := s.storage.ListTeamScores(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Points != scores[j].Points {
			return scores[i].Points > scores[j].Points
		}
		if !scores[i].LastUpdated.Equal(scores[j].LastUpdated) {
			return scores[i].LastUpdated.Before(scores[j].LastUpdated)
		}
		// Stable order for identical score and time
		return scores[i].TeamID < scores[j].TeamID
	})

	return scores, nil
}

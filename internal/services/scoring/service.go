package scoring

import (
	"context"
	"errors"
	"sync"

	"github.com/jcarrick/flagboard/internal/catalog"
	"github.com/jcarrick/flagboard/internal/dependencies/clock"
	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage"
)

// Errors
var (
	ErrInvalidSubmission = errors.New("team id, challenge id and flag are required")
)

// SubmissionResult is the outcome of a flag submission
// A wrong or unknown flag is a normal outcome (Accepted false), never an error
type SubmissionResult struct {
	Accepted         bool
	AlreadyCompleted bool
	PointsAwarded    int
}

// Service validates submitted flags against the catalog and applies
// at-most-once scoring per (team, challenge) pair
type Service struct {
	storage storage.Storage
	catalog *catalog.Catalog
	clock   clock.Clock

	// Per-team lock table serializing read-modify-write on a team's score.
	// Submissions from different teams never contend.
	mu        sync.Mutex
	teamLocks map[model.TeamID]*sync.Mutex
}

// New creates a new scoring Service
func New(storage storage.Storage, catalog *catalog.Catalog, clock clock.Clock) *Service {
	return &Service{
		storage:   storage,
		catalog:   catalog,
		clock:     clock,
		teamLocks: make(map[model.TeamID]*sync.Mutex),
	}
}

// teamLock returns the mutex for a team, creating it on first use
func (s *Service) teamLock(teamID model.TeamID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.teamLocks[teamID]
	if !ok {
		lock = &sync.Mutex{}
		s.teamLocks[teamID] = lock
	}
	return lock
}

// SubmitFlag checks a submitted flag and credits the team when it is the
// first correct submission for that challenge
//
// Comparison is exact string equality; no normalization. An incorrect or
// unknown flag mutates nothing and creates no record. Resubmitting an
// already-solved challenge's flag is idempotent and awards zero points.
func (s *Service) SubmitFlag(ctx context.Context, teamID model.TeamID, challengeID model.ChallengeID, flag string) (*SubmissionResult, error) {
	if teamID == "" || challengeID == "" || flag == "" {
		return nil, ErrInvalidSubmission
	}

	challenge, ok := s.catalog.Lookup(challengeID)
	if !ok || challenge.Flag != flag {
		return &SubmissionResult{Accepted: false}, nil
	}

	lock := s.teamLock(teamID)
	lock.Lock()
	defer lock.Unlock()

	score, err := s.storage.GetTeamScore(ctx, teamID)
	if err != nil {
		if !errors.Is(err, model.ErrTeamScoreNotFound) {
			return nil, err
		}
		score = model.NewTeamScore(teamID)
	}

	if score.HasCompleted(challengeID) {
		return &SubmissionResult{Accepted: true, AlreadyCompleted: true}, nil
	}

	score.Points += challenge.Points
	score.CompletedChallenges = append(score.CompletedChallenges, challengeID)
	score.LastUpdated = s.clock.Now()

	if err := s.storage.SaveTeamScore(ctx, score); err != nil {
		return nil, err
	}

	return &SubmissionResult{
		Accepted:      true,
		PointsAwarded: challenge.Points,
	}, nil
}

// TeamScore returns a team's scoring record, or the zero-valued record if
// the team has not solved anything yet
func (s *Service) TeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	if teamID == "" {
		return nil, ErrInvalidSubmission
	}

	score, err := s.storage.GetTeamScore(ctx, teamID)
	if err != nil {
		if errors.Is(err, model.ErrTeamScoreNotFound) {
			return model.NewTeamScore(teamID), nil
		}
		return nil, err
	}
	return score, nil
}

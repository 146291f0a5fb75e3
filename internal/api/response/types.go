package response

import (
	"time"

	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/services/auth"
	"github.com/jcarrick/flagboard/internal/services/scoring"
)

// AuthResponse is the response for signup and login
type AuthResponse struct {
	Email        string `json:"email"`
	TeamID       string `json:"team_id"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Email:        s.Email,
		TeamID:       string(s.TeamID),
		SessionToken: s.Token,
	}
}

// SubmissionResponse is the response for a flag submission
type SubmissionResponse struct {
	Accepted         bool `json:"accepted"`
	AlreadyCompleted bool `json:"already_completed"`
	PointsAwarded    int  `json:"points_awarded"`
}

// SubmissionResponseFromResult converts a scoring.SubmissionResult
func SubmissionResponseFromResult(r *scoring.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		Accepted:         r.Accepted,
		AlreadyCompleted: r.AlreadyCompleted,
		PointsAwarded:    r.PointsAwarded,
	}
}

// TeamScore is a team's own score view
type TeamScore struct {
	TeamID              string   `json:"team_id"`
	Points              int      `json:"points"`
	CompletedChallenges []string `json:"completed_challenges"`
}

// TeamScoreFromModel converts a model.TeamScore
func TeamScoreFromModel(s *model.TeamScore) TeamScore {
	completed := make([]string, len(s.CompletedChallenges))
	for i, c := range s.CompletedChallenges {
		completed[i] = string(c)
	}
	return TeamScore{
		TeamID:              string(s.TeamID),
		Points:              s.Points,
		CompletedChallenges: completed,
	}
}

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	Rank                int       `json:"rank"`
	TeamID              string    `json:"team_id"`
	Points              int       `json:"points"`
	CompletedChallenges []string  `json:"completed_challenges"`
	LastUpdated         time.Time `json:"last_updated"`
}

// LeaderboardResponse is the full ranked leaderboard
type LeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromScores converts ranked scores to a LeaderboardResponse
func LeaderboardFromScores(scores []*model.TeamScore) LeaderboardResponse {
	entries := make([]LeaderboardEntry, len(scores))
	for i, s := range scores {
		completed := make([]string, len(s.CompletedChallenges))
		for j, c := range s.CompletedChallenges {
			completed[j] = string(c)
		}
		entries[i] = LeaderboardEntry{
			Rank:                i + 1,
			TeamID:              string(s.TeamID),
			Points:              s.Points,
			CompletedChallenges: completed,
			LastUpdated:         s.LastUpdated,
		}
	}
	return LeaderboardResponse{Entries: entries}
}

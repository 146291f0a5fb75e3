package model

import "time"

// TeamID uniquely identifies a team across the system
type TeamID string

// Account holds a team's login identity and credentials
// One account maps to exactly one team; the team id is generated at signup
// and never changes
type Account struct {
	Email        string
	PasswordHash string // bcrypt hash
	TeamID       TeamID
	Members      []Member
	CreatedAt    time.Time
}

// Member holds the contact details collected for a team member at signup
type Member struct {
	Mobile   string
	IDNumber string
}

// TeamScore is the durable per-team scoring record
// Created lazily on a team's first correct submission; points and the
// completed set only ever grow
type TeamScore struct {
	TeamID              TeamID
	Points              int
	CompletedChallenges []ChallengeID
	LastUpdated         time.Time
}

// NewTeamScore returns the zero-valued record for a team with no submissions
func NewTeamScore(teamID TeamID) *TeamScore {
	return &TeamScore{
		TeamID:              teamID,
		CompletedChallenges: []ChallengeID{},
	}
}

// HasCompleted reports whether the team has already been credited for the challenge
func (t *TeamScore) HasCompleted(id ChallengeID) bool {
	for _, c := range t.CompletedChallenges {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record
func (t *TeamScore) Clone() *TeamScore {
	completed := make([]ChallengeID, len(t.CompletedChallenges))
	copy(completed, t.CompletedChallenges)
	return &TeamScore{
		TeamID:              t.TeamID,
		Points:              t.Points,
		CompletedChallenges: completed,
		LastUpdated:         t.LastUpdated,
	}
}

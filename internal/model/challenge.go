package model

// ChallengeID uniquely identifies a challenge in the catalog
type ChallengeID string

// Challenge is a catalog entry: the correct flag and its point value
// Entries are loaded once at startup and never change at runtime
type Challenge struct {
	ID     ChallengeID
	Flag   string
	Points int
}

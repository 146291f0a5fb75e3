package redis

import (
	"fmt"

	"github.com/jcarrick/flagboard/internal/model"
)

// Key prefix for all scoring-related data
const keyPrefix = "flagboard"

// accountKey returns the Redis key for an Account, keyed by email
func accountKey(email string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, email)
}

// teamScoreKey returns the Redis key for a TeamScore
func teamScoreKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, teamID)
}

// teamIndexKey returns the Redis key for the SET of all scored team ids
func teamIndexKey() string {
	return fmt.Sprintf("%s:idx:teams", keyPrefix)
}

package storage

import (
	"context"

	"github.com/jcarrick/flagboard/internal/model"
)

// Storage defines the interface for data persistence
//
// Implementations must make SaveTeamScore all-or-nothing: a failed save
// leaves the previously stored record intact. Callers performing a
// read-modify-write on a team score are responsible for holding exclusivity
// for that team while they do so.
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)

	// Team score operations
	SaveTeamScore(ctx context.Context, score *model.TeamScore) error
	GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error)
	ListTeamScores(ctx context.Context) ([]*model.TeamScore, error)
}

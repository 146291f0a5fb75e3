package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// unavailable wraps a backend failure so callers can match it with errors.Is
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, err)
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, accountKey(account.Email), data, 0).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, unavailable(err)
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Team score operations

func (s *Storage) SaveTeamScore(ctx context.Context, score *model.TeamScore) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, teamScoreKey(score.TeamID), data, 0)
	pipe.SAdd(ctx, teamIndexKey(), string(score.TeamID))
	if _, err := pipe.Exec(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) GetTeamScore(ctx context.Context, teamID model.TeamID) (*model.TeamScore, error) {
	data, err := s.client.Get(ctx, teamScoreKey(teamID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamScoreNotFound
		}
		return nil, unavailable(err)
	}

	var score model.TeamScore
	if err := json.Unmarshal(data, &score); err != nil {
		return nil, err
	}
	return &score, nil
}

func (s *Storage) ListTeamScores(ctx context.Context) ([]*model.TeamScore, error) {
	teamIDs, err := s.client.SMembers(ctx, teamIndexKey()).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	if len(teamIDs) == 0 {
		return []*model.TeamScore{}, nil
	}

	keys := make([]string, len(teamIDs))
	for i, id := range teamIDs {
		keys[i] = teamScoreKey(model.TeamID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, unavailable(err)
	}

	scores := make([]*model.TeamScore, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Indexed team with no record, skip
		}
		var score model.TeamScore
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue // Skip invalid data
		}
		scores = append(scores, &score)
	}

	return scores, nil
}

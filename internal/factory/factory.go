package factory

import (
	"errors"

	"github.com/jcarrick/flagboard/internal/catalog"
	"github.com/jcarrick/flagboard/internal/dependencies/clock"
	"github.com/jcarrick/flagboard/internal/dependencies/random"
	"github.com/jcarrick/flagboard/internal/services/auth"
	"github.com/jcarrick/flagboard/internal/services/leaderboard"
	"github.com/jcarrick/flagboard/internal/services/scoring"
	"github.com/jcarrick/flagboard/internal/storage"
	"github.com/jcarrick/flagboard/internal/storage/memory"
	redisstorage "github.com/jcarrick/flagboard/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Catalog *catalog.Catalog

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService        *auth.Service
	ScoringService     *scoring.Service
	LeaderboardService *leaderboard.Service
}

// Config holds configuration for the application factory
type Config struct {
	// ChallengesPath is the path to the YAML challenge catalog file
	// Required unless Catalog is set directly
	ChallengesPath string
	// Catalog overrides ChallengesPath with an already built catalog
	Catalog *catalog.Catalog
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Build the catalog once; it is immutable from here on
	cat := cfg.Catalog
	if cat == nil {
		if cfg.ChallengesPath == "" {
			return nil, errors.New("ChallengesPath or Catalog required")
		}
		loaded, err := catalog.LoadFromFile(cfg.ChallengesPath)
		if err != nil {
			return nil, err
		}
		cat = loaded
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, cat, clk, rnd, authCfg), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, cat *catalog.Catalog, clk clock.Clock, rnd random.Random, authCfg auth.Config) *App {
	authService := auth.New(store, clk, rnd, authCfg)
	scoringService := scoring.New(store, cat, clk)
	leaderboardService := leaderboard.New(store)

	return &App{
		Storage:            store,
		Catalog:            cat,
		Clock:              clk,
		Random:             rnd,
		AuthService:        authService,
		ScoringService:     scoringService,
		LeaderboardService: leaderboardService,
	}
}

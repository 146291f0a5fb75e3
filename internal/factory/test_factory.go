package factory

import (
	"time"

	"github.com/jcarrick/flagboard/internal/catalog"
	"github.com/jcarrick/flagboard/internal/dependencies/mocks"
	"github.com/jcarrick/flagboard/internal/dependencies/random"
	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/services/auth"
	"github.com/jcarrick/flagboard/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with a mocked clock,
// in-memory storage and a small fixed challenge catalog
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	cat, err := catalog.New(TestChallenges())
	if err != nil {
		panic(err)
	}

	// Real randomness; team id uniqueness is part of what tests exercise
	app := newWithDependencies(store, cat, mockClock, random.New(), auth.DefaultConfig())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}

// TestChallenges returns the fixed catalog used by TestApp
func TestChallenges() []model.Challenge {
	return []model.Challenge{
		{ID: "easy-1", Flag: "CTF{crypto_123}", Points: 100},
		{ID: "easy-2", Flag: "CTF{hidden_text}", Points: 100},
		{ID: "medium-1", Flag: "CTF{advanced_crypto}", Points: 200},
		{ID: "hard-1", Flag: "CTF{ultimate_challenge}", Points: 400},
	}
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarrick/flagboard/internal/model"
)

func testEntries() []model.Challenge {
	return []model.Challenge{
		{ID: "easy-1", Flag: "CTF{crypto_123}", Points: 100},
		{ID: "medium-1", Flag: "CTF{advanced_crypto}", Points: 200},
		{ID: "hard-1", Flag: "CTF{ultimate_challenge}", Points: 400},
	}
}

func TestLookupFindsChallenge(t *testing.T) {
	c, err := New(testEntries())
	require.NoError(t, err)

	challenge, ok := c.Lookup("medium-1")
	require.True(t, ok)
	assert.Equal(t, model.ChallengeID("medium-1"), challenge.ID)
	assert.Equal(t, "CTF{advanced_crypto}", challenge.Flag)
	assert.Equal(t, 200, challenge.Points)
}

func TestLookupUnknownID(t *testing.T) {
	c, err := New(testEntries())
	require.NoError(t, err)

	_, ok := c.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestNewRejectsDuplicateID(t *testing.T) {
	entries := append(testEntries(), model.Challenge{ID: "easy-1", Flag: "CTF{dup}", Points: 50})
	_, err := New(entries)
	assert.ErrorContains(t, err, "duplicate challenge id")
}

func TestNewRejectsMissingFlag(t *testing.T) {
	_, err := New([]model.Challenge{{ID: "easy-1", Points: 100}})
	assert.ErrorContains(t, err, "has no flag")
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "challenges.yaml")
	content := `challenges:
  - id: easy-1
    flag: CTF{crypto_123}
    points: 100
  - id: hard-1
    flag: CTF{ultimate_challenge}
    points: 400
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	challenge, ok := c.Lookup("hard-1")
	require.True(t, ok)
	assert.Equal(t, 400, challenge.Points)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

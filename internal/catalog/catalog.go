package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcarrick/flagboard/internal/model"
)

// Errors
var (
	ErrEmptyCatalog = errors.New("catalog has no challenges")
)

// Catalog is the read-only set of challenges for the competition
// It is built once at startup and never mutated afterwards, so lookups
// need no synchronization
type Catalog struct {
	challenges map[model.ChallengeID]model.Challenge
}

// New creates a Catalog from a list of challenge entries
func New(entries []model.Challenge) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	challenges := make(map[model.ChallengeID]model.Challenge, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			return nil, errors.New("challenge with empty id")
		}
		if e.Flag == "" {
			return nil, fmt.Errorf("challenge %q has no flag", e.ID)
		}
		if e.Points < 0 {
			return nil, fmt.Errorf("challenge %q has negative points", e.ID)
		}
		if _, exists := challenges[e.ID]; exists {
			return nil, fmt.Errorf("duplicate challenge id %q", e.ID)
		}
		challenges[e.ID] = e
	}

	return &Catalog{challenges: challenges}, nil
}

// challengeFile is the YAML layout of a catalog file
type challengeFile struct {
	Challenges []struct {
		ID     string `yaml:"id"`
		Flag   string `yaml:"flag"`
		Points int    `yaml:"points"`
	} `yaml:"challenges"`
}

// LoadFromFile builds a Catalog from a YAML challenge file
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading challenge file: %w", err)
	}

	var file challengeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing challenge file: %w", err)
	}

	entries := make([]model.Challenge, 0, len(file.Challenges))
	for _, c := range file.Challenges {
		entries = append(entries, model.Challenge{
			ID:     model.ChallengeID(c.ID),
			Flag:   c.Flag,
			Points: c.Points,
		})
	}

	return New(entries)
}

// Lookup returns the challenge for the given id, if it exists
// A missing id is a normal outcome, not an error
func (c *Catalog) Lookup(id model.ChallengeID) (model.Challenge, bool) {
	challenge, ok := c.challenges[id]
	return challenge, ok
}

// Size returns the number of challenges in the catalog
func (c *Catalog) Size() int {
	return len(c.challenges)
}

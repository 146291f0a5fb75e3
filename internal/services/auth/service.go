package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcarrick/flagboard/internal/dependencies/clock"
	"github.com/jcarrick/flagboard/internal/dependencies/random"
	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrEmailExists        = errors.New("email already registered")
)

const (
	// TeamIDLength is the length of the random part of generated team ids
	TeamIDLength = 9
	// TeamIDAlphabet is the characters used in team ids
	TeamIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Session represents an authenticated session resolving to a team principal
type Session struct {
	Token     string
	Email     string
	TeamID    model.TeamID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service handles account enrollment, credential verification and sessions
// Passwords are stored as bcrypt hashes and compared with constant-time
// bcrypt verification, never as plaintext
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Signup creates a team account with a freshly generated team id and
// returns a session for it
func (s *Service) Signup(ctx context.Context, email, password string, members []model.Member) (*Session, error) {
	// Check if email is taken
	_, err := s.storage.GetAccountByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	teamID := model.TeamID("team_" + s.random.String(TeamIDLength, TeamIDAlphabet))

	account := &model.Account{
		Email:        email,
		PasswordHash: string(hash),
		TeamID:       teamID,
		Members:      members,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	return s.createSession(account), nil
}

// Login verifies credentials and creates a session
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(account), nil
}

// ValidateSession checks if a session token is valid and returns the session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// createSession creates a new session for an account
func (s *Service) createSession(account *model.Account) *Session {
	token := generateToken()
	now := s.clock.Now()

	session := &Session{
		Token:     token,
		Email:     account.Email,
		TeamID:    account.TeamID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

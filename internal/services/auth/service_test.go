package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jcarrick/flagboard/internal/dependencies/mocks"
	"github.com/jcarrick/flagboard/internal/dependencies/random"
	"github.com/jcarrick/flagboard/internal/model"
	"github.com/jcarrick/flagboard/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, random.New(), DefaultConfig())
	s.ctx = context.Background()
}

// Signup tests

func (s *ServiceSuite) TestSignupSucceeds() {
	session, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice@example.com", session.Email)
	s.NotEmpty(session.TeamID)
}

func (s *ServiceSuite) TestSignupGeneratesPrefixedTeamID() {
	session, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	s.Regexp("^team_[a-z0-9]{9}$", string(session.TeamID))
}

func (s *ServiceSuite) TestSignupUsesRandomForTeamID() {
	rnd := mocks.NewMockRandom()
	rnd.QueueString("abc123xyz")
	service := New(s.storage, s.clock, rnd, DefaultConfig())

	session, err := service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)
	s.Equal(model.TeamID("team_abc123xyz"), session.TeamID)
}

func (s *ServiceSuite) TestSignupPersistsAccountWithHashedPassword() {
	_, err := s.service.Signup(s.ctx, "alice@example.com", "password123", []model.Member{
		{Mobile: "5550100", IDNumber: "1234"},
	})
	s.Require().NoError(err)

	account, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEmpty(account.PasswordHash)
	s.NotEqual("password123", account.PasswordHash)
	s.Len(account.Members, 1)
}

func (s *ServiceSuite) TestSignupFailsIfEmailExists() {
	_, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "alice@example.com", "different", nil)
	s.ErrorIs(err, ErrEmailExists)
}

func (s *ServiceSuite) TestSignupTeamIDsAreUnique() {
	a, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)
	b, err := s.service.Signup(s.ctx, "bob@example.com", "password123", nil)
	s.Require().NoError(err)

	s.NotEqual(a.TeamID, b.TeamID)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	signup, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(signup.TeamID, session.TeamID)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice@example.com", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.TeamID, validated.TeamID)
}

func (s *ServiceSuite) TestValidateSessionFailsForUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsAfterExpiry() {
	session, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	old, err := s.service.Signup(s.ctx, "alice@example.com", "password123", nil)
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)
	fresh, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	_, err = s.service.ValidateSession(old.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}

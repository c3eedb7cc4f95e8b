package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/betdesk/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadDefaultSeed())
}

// Test: seeded data is visible through the engine
func (s *IntegrationSuite) TestSeededRegistry() {
	_, err := s.app.AccessService.Login(s.ctx, "Artem", "whtrlkn")
	s.Require().NoError(err)

	users, err := s.app.AccessService.ListRegularUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 3)

	_, err = s.app.AccessService.Login(s.ctx, "Oleg", "sdfbdg")
	s.Require().NoError(err)

	bets, err := s.app.AccessService.ListPlacedBets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(bets, 3)
	s.Equal("EventOne", bets[0].Name)
}

func (s *IntegrationSuite) TestSeedIsIdempotentPerStore() {
	// Re-applying the same seed collides on usernames
	err := s.app.LoadDefaultSeed()
	s.ErrorIs(err, model.ErrDuplicateUsername)
}

// Test: a full operator day against one wired app
func (s *IntegrationSuite) TestOperatorFlow() {
	engine := s.app.AccessService

	// New regular user signs up and bets
	_, err := engine.Register(s.ctx, model.RoleRegular, "Ret", "kjerfre44")
	s.Require().NoError(err)

	_, err = engine.Login(s.ctx, "Ret", "kjerfre44")
	s.Require().NoError(err)

	_, err = engine.PlaceBet(s.ctx, "EventFourth")
	s.Require().NoError(err)

	bets, err := engine.ListPlacedBets(s.ctx)
	s.Require().NoError(err)
	s.Len(bets, 4)

	// Admin takes over the console and bans them
	_, err = engine.Login(s.ctx, "Artem", "whtrlkn")
	s.Require().NoError(err)

	s.Require().NoError(engine.BanUser(s.ctx, "Ret"))

	users, err := engine.ListRegularUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 4)

	engine.Logout()

	_, err = engine.Login(s.ctx, "Ret", "kjerfre44")
	s.ErrorIs(err, model.ErrBanned)
}

func (s *IntegrationSuite) TestFactoryRejectsUnknownStorageType() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRequiresRedisConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

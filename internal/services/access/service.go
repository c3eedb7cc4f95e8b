package access

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/betdesk/internal/dependencies/clock"
	"github.com/mcoot/betdesk/internal/model"
	"github.com/mcoot/betdesk/internal/storage"
)

// Service is the engine behind every registry operation. It owns the single
// process-wide session slot and gates each operation on the role held there
// before touching storage.
//
// One slot means one operator: logging in replaces any session already
// established. The mutex serializes callers so the slot and the stores act
// as a single shared-mutable unit.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu      sync.Mutex
	current *model.User // active session, nil when anonymous
}

// New creates a new access engine
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a new account with the requested role.
// It does not require or affect the active session.
func (s *Service) Register(ctx context.Context, role model.Role, username, password string) (*model.User, error) {
	if !role.Valid() {
		return nil, model.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := &model.User{
		Username:  username,
		Role:      role,
		Password:  password,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("username", username),
		slog.String("role", string(role)),
	)

	copied := *user
	return &copied, nil
}

// Login authenticates a user and establishes the session slot.
// Checks run in order: existence, password, ban status. A failed attempt
// leaves the slot untouched; a successful one replaces whatever was there.
func (s *Service) Login(ctx context.Context, username, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.storage.GetUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if user.Password != password {
		return nil, model.ErrWrongPassword
	}

	banned, err := s.storage.IsBanned(ctx, username)
	if err != nil {
		return nil, err
	}
	if banned {
		return nil, model.ErrBanned
	}

	s.current = user
	s.logger.Info("session established",
		slog.String("username", username),
		slog.String("role", string(user.Role)),
	)

	copied := *user
	return &copied, nil
}

// Logout clears the session slot. It is a no-op when already anonymous.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.logger.Info("session cleared", slog.String("username", s.current.Username))
	}
	s.current = nil
}

// CurrentUser returns a snapshot of the active session's user, or nil
func (s *Service) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// PlaceBet upserts a bet into the ledger under the given name, attributed to
// the session holder. Requires a regular session.
func (s *Service) PlaceBet(ctx context.Context, name string) (*model.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.requireRole(model.RoleRegular)
	if err != nil {
		return nil, err
	}

	bet := &model.Bet{
		Name:     name,
		PlacedBy: caller.Username,
		PlacedAt: s.clock.Now(),
	}

	if err := s.storage.SaveBet(ctx, bet); err != nil {
		return nil, err
	}

	// Keep the per-user attribution list in step with the ledger
	err = s.storage.UpdateUser(ctx, caller.Username, func(u *model.User) error {
		u.Bets = append(u.Bets, *bet)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("bet placed",
		slog.String("name", name),
		slog.String("username", caller.Username),
	)

	copied := *bet
	return &copied, nil
}

// ListPlacedBets returns a snapshot of the whole ledger in insertion order.
// Requires a regular session. The ledger is a shared feed: every regular
// user sees all placed bets, not only their own.
func (s *Service) ListPlacedBets(ctx context.Context) ([]*model.Bet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(model.RoleRegular); err != nil {
		return nil, err
	}

	return s.storage.ListBets(ctx)
}

// ListRegularUsers returns every account with the regular role.
// Requires an admin session.
func (s *Service) ListRegularUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireRole(model.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	regulars := make([]*model.User, 0, len(users))
	for _, user := range users {
		if user.Role == model.RoleRegular {
			regulars = append(regulars, user)
		}
	}
	return regulars, nil
}

// BanUser adds the target to the ban registry. Requires an admin session.
// Banning is one-way: there is no unban path, and a second attempt fails.
func (s *Service) BanUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, err := s.requireRole(model.RoleAdmin)
	if err != nil {
		return err
	}

	if err := s.storage.BanUser(ctx, username); err != nil {
		return err
	}

	s.logger.Info("user banned",
		slog.String("username", username),
		slog.String("banned_by", caller.Username),
	)
	return nil
}

// requireRole returns the session holder if a session is active and holds
// the given role. Callers must hold s.mu.
func (s *Service) requireRole(role model.Role) (*model.User, error) {
	if s.current == nil {
		return nil, model.ErrNotLoggedIn
	}
	if s.current.Role != role {
		if role == model.RoleAdmin {
			return nil, model.ErrNotAdmin
		}
		return nil, model.ErrNotRegular
	}
	return s.current, nil
}

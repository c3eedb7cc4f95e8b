package memory

import (
	"context"
	"sync"

	"github.com/mcoot/betdesk/internal/model"
	"github.com/mcoot/betdesk/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users    map[string]*model.User
	banned   map[string]struct{}
	bets     map[string]*model.Bet
	betOrder []string // ledger names in first-insertion order
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:  make(map[string]*model.User),
		banned: make(map[string]struct{}),
		bets:   make(map[string]*model.Bet),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity store operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return model.ErrDuplicateUsername
	}
	s.users[user.Username] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUnknownUser
	}
	copied := *user
	return &copied, nil
}

func (s *Storage) UpdateUser(ctx context.Context, username string, fn func(*model.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return model.ErrUnknownUser
	}
	return fn(user)
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, 0, len(s.users))
	for _, user := range s.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

// Ban registry operations

func (s *Storage) BanUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return model.ErrUnknownUser
	}
	if _, ok := s.banned[username]; ok {
		return model.ErrAlreadyBanned
	}
	// Registry entry and user mirror flip under the same lock section
	s.banned[username] = struct{}{}
	user.Banned = true
	return nil
}

func (s *Storage) IsBanned(ctx context.Context, username string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.banned[username]
	return ok, nil
}

func (s *Storage) ListBannedUsernames(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.banned))
	for name := range s.banned {
		names = append(names, name)
	}
	return names, nil
}

// Bet ledger operations

func (s *Storage) SaveBet(ctx context.Context, bet *model.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bets[bet.Name]; !ok {
		s.betOrder = append(s.betOrder, bet.Name)
	}
	copied := *bet
	s.bets[bet.Name] = &copied
	return nil
}

func (s *Storage) GetBet(ctx context.Context, name string) (*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bet, ok := s.bets[name]
	if !ok {
		return nil, model.ErrUnknownBet
	}
	copied := *bet
	return &copied, nil
}

func (s *Storage) ListBets(ctx context.Context) ([]*model.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bets := make([]*model.Bet, 0, len(s.betOrder))
	for _, name := range s.betOrder {
		copied := *s.bets[name]
		bets = append(bets, &copied)
	}
	return bets, nil
}

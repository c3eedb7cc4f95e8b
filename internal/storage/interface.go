package storage

import (
	"context"

	"github.com/mcoot/betdesk/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Identity store operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	// UpdateUser applies fn to the stored user record in place
	UpdateUser(ctx context.Context, username string, fn func(*model.User) error) error
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Ban registry operations.
	// The ban set is the single source of truth for ban status; BanUser adds
	// the username to the set and flips the user's Banned mirror in one
	// atomic step.
	BanUser(ctx context.Context, username string) error
	IsBanned(ctx context.Context, username string) (bool, error)
	ListBannedUsernames(ctx context.Context) ([]string, error)

	// Bet ledger operations.
	// SaveBet is an unconditional upsert keyed by bet name; ListBets returns
	// a snapshot in first-insertion order.
	SaveBet(ctx context.Context, bet *model.Bet) error
	GetBet(ctx context.Context, name string) (*model.Bet, error)
	ListBets(ctx context.Context) ([]*model.Bet, error)
}

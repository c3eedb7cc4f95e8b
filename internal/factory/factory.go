package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/betdesk/internal/dependencies/clock"
	"github.com/mcoot/betdesk/internal/model"
	"github.com/mcoot/betdesk/internal/services/access"
	"github.com/mcoot/betdesk/internal/storage"
	"github.com/mcoot/betdesk/internal/storage/memory"
	redisstorage "github.com/mcoot/betdesk/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	AccessService *access.Service
}

// SeedUser is one bootstrap account
type SeedUser struct {
	Username string
	Role     model.Role
	Password string
}

// Seed is the fixed bootstrap payload applied to storage at construction
type Seed struct {
	Users []SeedUser
	Bets  []string
}

// DefaultSeed returns the stock bootstrap set: three regular users, one
// admin, three open events.
func DefaultSeed() Seed {
	return Seed{
		Users: []SeedUser{
			{Username: "Ivan", Role: model.RoleRegular, Password: "fkjndk"},
			{Username: "Anton", Role: model.RoleRegular, Password: "dfkjd"},
			{Username: "Oleg", Role: model.RoleRegular, Password: "sdfbdg"},
			{Username: "Artem", Role: model.RoleAdmin, Password: "whtrlkn"},
		},
		Bets: []string{"EventOne", "EventTwo", "EventThree"},
	}
}

// Config holds configuration for the application factory
type Config struct {
	// Seed is the bootstrap payload (optional)
	// If nil, storage starts empty
	Seed *Seed
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
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

	clk := clock.New()

	if cfg.Seed != nil {
		if err := applySeed(context.Background(), store, clk, *cfg.Seed); err != nil {
			return nil, fmt.Errorf("applying seed: %w", err)
		}
	}

	return newWithDependencies(store, clk, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Storage:       store,
		Clock:         clk,
		AccessService: access.New(store, clk, logger),
	}
}

// applySeed loads the bootstrap users and bets into storage
func applySeed(ctx context.Context, store storage.Storage, clk clock.Clock, seed Seed) error {
	for _, su := range seed.Users {
		user := &model.User{
			Username:  su.Username,
			Role:      su.Role,
			Password:  su.Password,
			CreatedAt: clk.Now(),
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("seeding user %q: %w", su.Username, err)
		}
	}

	for _, name := range seed.Bets {
		bet := &model.Bet{
			Name:     name,
			PlacedAt: clk.Now(),
		}
		if err := store.SaveBet(ctx, bet); err != nil {
			return fmt.Errorf("seeding bet %q: %w", name, err)
		}
	}

	return nil
}

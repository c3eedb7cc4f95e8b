package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/betdesk/internal/model"
	"github.com/mcoot/betdesk/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Identity store operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	// SADD doubles as the uniqueness check
	added, err := s.client.SAdd(ctx, usernamesKey(), user.Username).Result()
	if err != nil {
		return err
	}
	if added == 0 {
		return model.ErrDuplicateUsername
	}
	return s.setUser(ctx, user)
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUnknownUser
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) UpdateUser(ctx context.Context, username string, fn func(*model.User) error) error {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return err
	}
	if err := fn(user); err != nil {
		return err
	}
	return s.setUser(ctx, user)
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	usernames, err := s.client.SMembers(ctx, usernamesKey()).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(usernames))
	for _, username := range usernames {
		user, err := s.GetUser(ctx, username)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Storage) setUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.Username), data, 0).Err()
}

// Ban registry operations

func (s *Storage) BanUser(ctx context.Context, username string) error {
	user, err := s.GetUser(ctx, username)
	if err != nil {
		return err
	}

	banned, err := s.client.SIsMember(ctx, banSetKey(), username).Result()
	if err != nil {
		return err
	}
	if banned {
		return model.ErrAlreadyBanned
	}

	user.Banned = true
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Registry entry and user mirror are written in one pipeline
	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, banSetKey(), username)
	pipe.Set(ctx, userKey(username), data, 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) IsBanned(ctx context.Context, username string) (bool, error) {
	return s.client.SIsMember(ctx, banSetKey(), username).Result()
}

func (s *Storage) ListBannedUsernames(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, banSetKey()).Result()
}

// Bet ledger operations

func (s *Storage) SaveBet(ctx context.Context, bet *model.Bet) error {
	data, err := json.Marshal(bet)
	if err != nil {
		return err
	}

	exists, err := s.client.Exists(ctx, betKey(bet.Name)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, betKey(bet.Name), data, 0)
	if exists == 0 {
		// New names go to the back of the order list; overwrites keep their slot
		pipe.RPush(ctx, betOrderKey(), bet.Name)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetBet(ctx context.Context, name string) (*model.Bet, error) {
	data, err := s.client.Get(ctx, betKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUnknownBet
		}
		return nil, err
	}

	var bet model.Bet
	if err := json.Unmarshal(data, &bet); err != nil {
		return nil, err
	}
	return &bet, nil
}

func (s *Storage) ListBets(ctx context.Context) ([]*model.Bet, error) {
	names, err := s.client.LRange(ctx, betOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	bets := make([]*model.Bet, 0, len(names))
	for _, name := range names {
		bet, err := s.GetBet(ctx, name)
		if err != nil {
			return nil, err
		}
		bets = append(bets, bet)
	}
	return bets, nil
}

package response

import (
	"time"

	"github.com/mcoot/betdesk/internal/model"
)

// User represents an account in API responses
type User struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Banned    bool      `json:"banned"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		Username:  u.Username,
		Role:      string(u.Role),
		Banned:    u.Banned,
		CreatedAt: u.CreatedAt,
	}
}

// UsersFromModel converts a slice of model.User
func UsersFromModel(users []*model.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, UserFromModel(u))
	}
	return out
}

// Bet represents a ledger entry in API responses
type Bet struct {
	Name     string    `json:"name"`
	PlacedBy string    `json:"placed_by,omitempty"`
	PlacedAt time.Time `json:"placed_at"`
}

// BetFromModel converts a model.Bet to a response Bet
func BetFromModel(b *model.Bet) Bet {
	return Bet{
		Name:     b.Name,
		PlacedBy: b.PlacedBy,
		PlacedAt: b.PlacedAt,
	}
}

// BetsFromModel converts a slice of model.Bet
func BetsFromModel(bets []*model.Bet) []Bet {
	out := make([]Bet, 0, len(bets))
	for _, b := range bets {
		out = append(out, BetFromModel(b))
	}
	return out
}

// Session is the response for session endpoints
type Session struct {
	User User `json:"user"`
}

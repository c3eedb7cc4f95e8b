package model

import "time"

// Role classifies an account's capabilities
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// ParseRole converts a string into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// User is an account in the identity store.
// Username is the store key and immutable after creation.
type User struct {
	Username  string
	Role      Role
	Password  string // opaque credential, compared verbatim
	Bets      []Bet  // bets attributed to this user
	Banned    bool   // mirror of ban registry membership; the registry is canonical
	CreatedAt time.Time
}

package model

import "time"

// Bet is a wagered event record in the ledger, keyed by its name.
// Placing a bet under an existing name overwrites that entry.
type Bet struct {
	Name     string
	PlacedBy string // username of the placer; empty for seeded entries
	PlacedAt time.Time
}

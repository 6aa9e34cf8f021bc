package models

import "time"

// EventRecord is one persisted audit journal row: a successful ledger
// mutation together with the balances it produced.
type EventRecord struct {
	Id               string    `db:"id"`
	Operation        string    `db:"operation"`
	Caller           string    `db:"caller"`
	Recipient        string    `db:"recipient"`
	Amount           int64     `db:"amount"`
	CallerBalance    int64     `db:"caller_balance"`
	RecipientBalance int64     `db:"recipient_balance"`
	TotalSupply      int64     `db:"total_supply"`
	CreatedAt        time.Time `db:"created_at"`
}

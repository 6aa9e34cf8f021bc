package store

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors shared between the ledger core and its callers.
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// AccountID uniquely identifies a token owner. Comparison is byte-exact;
// no normalization is applied anywhere in the system.
type AccountID string

// Mutation operation names as they appear in audit events.
const (
	OpTransfer = "transfer"
	OpMint     = "mint"
)

// Event is the audit record emitted after every successful mutation.
// CallerBalance and RecipientBalance are the balances observed immediately
// after the mutation was applied.
type Event struct {
	Operation        string
	Caller           AccountID
	Recipient        AccountID
	Amount           int64
	CallerBalance    int64
	RecipientBalance int64
	TotalSupply      int64
	Timestamp        time.Time
}

// EventSink receives audit events. Emit must never block the caller:
// implementations are expected to buffer internally and shed load rather
// than stall a ledger mutation.
type EventSink interface {
	Emit(event Event)
}

// Ledger defines the contract for the balance store. The caller identity
// passed to mutating operations is assumed to have been verified by the
// authentication layer at the process boundary; the ledger performs no
// identity checks of its own beyond the mint-authority comparison.
type Ledger interface {
	// Transfer moves amount from caller to recipient. A zero amount and a
	// self-transfer are validated no-ops.
	Transfer(ctx context.Context, caller, to AccountID, amount int64) error

	// Credit mints amount to the recipient. Only the configured mint
	// authority may invoke it; this is the sole operation that increases
	// total supply.
	Credit(ctx context.Context, caller, to AccountID, amount int64) error

	// BalanceOf returns the balance for an account, zero for accounts the
	// ledger has never seen.
	BalanceOf(owner AccountID) int64

	// TotalSupply returns the sum of all balances.
	TotalSupply() int64
}

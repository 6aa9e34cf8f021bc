package ledger

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"token-ledger-go/internal/store"

	"go.uber.org/zap"
)

// Compile-time check: *Ledger must satisfy store.Ledger.
var _ store.Ledger = (*Ledger)(nil)

// Ledger is the sole owner of the balance mapping. All mutations are
// serialized behind one mutex, so a transfer's paired debit and credit are
// never observable half-applied. Balances never go negative and the total
// supply changes only through Credit.
type Ledger struct {
	mu        sync.Mutex
	balances  map[store.AccountID]int64
	total     int64
	authority store.AccountID
	sink      store.EventSink
}

// New creates an empty ledger. authority is the only identity allowed to
// mint; sink may be nil if no audit trail is wanted.
func New(authority store.AccountID, sink store.EventSink) *Ledger {
	return &Ledger{
		balances:  make(map[store.AccountID]int64),
		authority: authority,
		sink:      sink,
	}
}

// Seed loads balances recovered from the journal. It must be called before
// the ledger is exposed to callers; it is not serialized against concurrent
// operations.
func (l *Ledger) Seed(balances map[store.AccountID]int64, total int64) {
	l.balances = make(map[store.AccountID]int64, len(balances))
	for account, balance := range balances {
		if balance != 0 {
			l.balances[account] = balance
		}
	}
	l.total = total
}

// Transfer moves amount from caller to recipient. The balance check and the
// paired debit/credit happen under one lock acquisition, so no other
// operation can observe the intermediate state.
func (l *Ledger) Transfer(ctx context.Context, caller, to store.AccountID, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: transfer amount %d is negative", store.ErrInvalidAmount, amount)
	}

	l.mu.Lock()

	balance := l.balances[caller]
	if balance < amount {
		l.mu.Unlock()
		zap.L().Warn("Transfer rejected: insufficient balance",
			zap.String("caller", string(caller)),
			zap.String("to", string(to)),
			zap.Int64("amount", amount),
			zap.Int64("balance", balance))
		return fmt.Errorf("%w: balance %d, requested %d", store.ErrInsufficientBalance, balance, amount)
	}

	if amount == 0 {
		// Accepted no-op; nothing moved, nothing to record.
		l.mu.Unlock()
		return nil
	}

	l.balances[caller] -= amount
	l.balances[to] += amount

	event := store.Event{
		Operation:        store.OpTransfer,
		Caller:           caller,
		Recipient:        to,
		Amount:           amount,
		CallerBalance:    l.balances[caller],
		RecipientBalance: l.balances[to],
		TotalSupply:      l.total,
		Timestamp:        time.Now().UTC(),
	}
	l.mu.Unlock()

	zap.L().Info("Transfer applied",
		zap.String("caller", string(caller)),
		zap.String("to", string(to)),
		zap.Int64("amount", amount),
		zap.Int64("caller_balance", event.CallerBalance),
		zap.Int64("recipient_balance", event.RecipientBalance))

	l.emit(event)
	return nil
}

// Credit mints amount to the recipient. Only the configured mint authority
// may call it.
func (l *Ledger) Credit(ctx context.Context, caller, to store.AccountID, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: credit amount %d is negative", store.ErrInvalidAmount, amount)
	}
	if caller != l.authority {
		zap.L().Warn("Credit rejected: caller is not the mint authority",
			zap.String("caller", string(caller)),
			zap.String("to", string(to)),
			zap.Int64("amount", amount))
		return fmt.Errorf("%w: %s does not hold mint authority", store.ErrUnauthorized, caller)
	}

	l.mu.Lock()

	if amount > math.MaxInt64-l.total {
		l.mu.Unlock()
		return fmt.Errorf("%w: minting %d would overflow total supply %d", store.ErrInvalidAmount, amount, l.total)
	}

	if amount == 0 {
		l.mu.Unlock()
		return nil
	}

	l.balances[to] += amount
	l.total += amount

	event := store.Event{
		Operation:        store.OpMint,
		Caller:           caller,
		Recipient:        to,
		Amount:           amount,
		CallerBalance:    l.balances[caller],
		RecipientBalance: l.balances[to],
		TotalSupply:      l.total,
		Timestamp:        time.Now().UTC(),
	}
	l.mu.Unlock()

	zap.L().Info("Credit applied",
		zap.String("to", string(to)),
		zap.Int64("amount", amount),
		zap.Int64("recipient_balance", event.RecipientBalance),
		zap.Int64("total_supply", event.TotalSupply))

	l.emit(event)
	return nil
}

// BalanceOf returns the balance for an account. Unknown accounts have a
// balance of zero; asking about them is not an error.
func (l *Ledger) BalanceOf(owner store.AccountID) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[owner]
}

// TotalSupply returns the sum of all balances.
func (l *Ledger) TotalSupply() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Snapshot returns a copy of every non-zero balance, for reporting.
func (l *Ledger) Snapshot() map[store.AccountID]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(map[store.AccountID]int64, len(l.balances))
	for account, balance := range l.balances {
		if balance != 0 {
			snapshot[account] = balance
		}
	}
	return snapshot
}

func (l *Ledger) emit(event store.Event) {
	if l.sink != nil {
		l.sink.Emit(event)
	}
}

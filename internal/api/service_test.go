package api

import (
	"context"
	"errors"
	"testing"

	"token-ledger-go/internal/ledger"
	"token-ledger-go/internal/store"
)

func TestLedgerService_EndToEnd(t *testing.T) {
	const authority = store.AccountID("authority")
	service := NewLedgerService(ledger.New(authority, nil))
	ctx := context.Background()

	if err := service.Credit(ctx, authority, "alice", 100); err != nil {
		t.Fatalf("Credit failed: %v", err)
	}
	if err := service.Transfer(ctx, "alice", "bob", 60); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	if got := service.BalanceOf("alice"); got != 40 {
		t.Errorf("Expected alice balance 40, got %d", got)
	}
	if got := service.BalanceOf("bob"); got != 60 {
		t.Errorf("Expected bob balance 60, got %d", got)
	}
	if got := service.TotalSupply(); got != 100 {
		t.Errorf("Expected total supply 100, got %d", got)
	}

	if err := service.Transfer(ctx, "", "bob", 1); err == nil {
		t.Errorf("Expected error for empty caller")
	}
	if err := service.Credit(ctx, "alice", "alice", 1); !errors.Is(err, store.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized, got %v", err)
	}
}

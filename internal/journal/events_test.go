package journal

import (
	"context"
	"testing"
	"time"

	"token-ledger-go/internal/models"
	"token-ledger-go/internal/store"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestJournal(t *testing.T) (*Service, func()) {
	t.Helper()

	// A single connection keeps all queries on the same in-memory database.
	service, err := NewService(context.Background(), models.JournalConfig{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		ConnMaxIdleTime: time.Minute,
		PingTimeout:     5 * time.Second,
		EventBufferSize: 16,
	})
	if err != nil {
		t.Fatalf("Failed to open test journal: %v", err)
	}

	cleanup := func() {
		service.Close()
	}
	return service, cleanup
}

func mintEvent(to store.AccountID, amount, recipientBalance, totalSupply int64) store.Event {
	return store.Event{
		Operation:        store.OpMint,
		Caller:           "authority",
		Recipient:        to,
		Amount:           amount,
		CallerBalance:    0,
		RecipientBalance: recipientBalance,
		TotalSupply:      totalSupply,
		Timestamp:        time.Now().UTC(),
	}
}

func TestAppendAndAccountHistory(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Append(ctx, mintEvent("alice", 100, 100, 100)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := service.Append(ctx, store.Event{
		Operation:        store.OpTransfer,
		Caller:           "alice",
		Recipient:        "bob",
		Amount:           40,
		CallerBalance:    60,
		RecipientBalance: 40,
		TotalSupply:      100,
		Timestamp:        time.Now().UTC(),
	}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	history, err := service.AccountHistory(ctx, "alice", 10, 0)
	if err != nil {
		t.Fatalf("AccountHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 events for alice, got %d", len(history))
	}
	// Most recent first.
	if history[0].Operation != store.OpTransfer {
		t.Errorf("Expected transfer first, got %s", history[0].Operation)
	}
	if history[0].CallerBalance != 60 || history[0].RecipientBalance != 40 {
		t.Errorf("Expected resulting balances 60/40, got %d/%d", history[0].CallerBalance, history[0].RecipientBalance)
	}

	history, err = service.AccountHistory(ctx, "carol", 10, 0)
	if err != nil {
		t.Fatalf("AccountHistory failed: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("Expected no events for carol, got %d", len(history))
	}
}

func TestReplay_RebuildsBalances(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	ctx := context.Background()

	events := []store.Event{
		mintEvent("alice", 100, 100, 100),
		mintEvent("bob", 50, 50, 150),
		{
			Operation: store.OpTransfer, Caller: "alice", Recipient: "bob",
			Amount: 70, CallerBalance: 30, RecipientBalance: 120,
			TotalSupply: 150, Timestamp: time.Now().UTC(),
		},
		{
			Operation: store.OpTransfer, Caller: "bob", Recipient: "carol",
			Amount: 5, CallerBalance: 115, RecipientBalance: 5,
			TotalSupply: 150, Timestamp: time.Now().UTC(),
		},
	}
	for _, event := range events {
		if err := service.Append(ctx, event); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	balances, total, err := service.Replay(ctx)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	if total != 150 {
		t.Errorf("Expected total supply 150, got %d", total)
	}
	expected := map[store.AccountID]int64{"alice": 30, "bob": 115, "carol": 5}
	for account, want := range expected {
		if got := balances[account]; got != want {
			t.Errorf("Expected %s balance %d, got %d", account, want, got)
		}
	}
}

func TestReplay_EmptyJournal(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	balances, total, err := service.Replay(context.Background())
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected total supply 0, got %d", total)
	}
	if len(balances) != 0 {
		t.Errorf("Expected no balances, got %d", len(balances))
	}
}

func TestReconcile(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	ctx := context.Background()

	if err := service.Append(ctx, mintEvent("alice", 100, 100, 100)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := service.Append(ctx, mintEvent("bob", 25, 25, 125)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := service.Reconcile(ctx, 125); err != nil {
		t.Errorf("Expected reconciliation to pass: %v", err)
	}
	if err := service.Reconcile(ctx, 124); err == nil {
		t.Errorf("Expected reconciliation mismatch to fail")
	}
}

func TestMostRecentEventTime(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	ctx := context.Background()

	when, err := service.MostRecentEventTime(ctx)
	if err != nil {
		t.Fatalf("MostRecentEventTime failed: %v", err)
	}
	if !when.IsZero() {
		t.Errorf("Expected zero time for empty journal, got %v", when)
	}

	if err := service.Append(ctx, mintEvent("alice", 1, 1, 1)); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	when, err = service.MostRecentEventTime(ctx)
	if err != nil {
		t.Fatalf("MostRecentEventTime failed: %v", err)
	}
	if when.IsZero() {
		t.Errorf("Expected non-zero time after append")
	}
}

func TestEmit_FlushedOnStop(t *testing.T) {
	service, cleanup := setupTestJournal(t)
	defer cleanup()

	ctx := context.Background()
	service.Start(ctx)

	service.Emit(mintEvent("alice", 100, 100, 100))
	service.Emit(store.Event{
		Operation: store.OpTransfer, Caller: "alice", Recipient: "bob",
		Amount: 10, CallerBalance: 90, RecipientBalance: 10,
		TotalSupply: 100, Timestamp: time.Now().UTC(),
	})

	// Stop drains the buffer before returning.
	service.Stop()

	balances, total, err := service.Replay(ctx)
	if err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if total != 100 {
		t.Errorf("Expected total supply 100 after flush, got %d", total)
	}
	if balances["alice"] != 90 || balances["bob"] != 10 {
		t.Errorf("Expected balances 90/10 after flush, got %d/%d", balances["alice"], balances["bob"])
	}
}

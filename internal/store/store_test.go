package store

import (
	"testing"
)

// Compile-time checks that the contract types are importable and usable.
func TestLedgerContractExists(t *testing.T) {
	_ = ErrInsufficientBalance
	_ = ErrUnauthorized
	_ = ErrInvalidAmount
	_ = Event{}

	var _ Ledger
	var _ EventSink
}

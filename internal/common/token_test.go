package common

import "testing"

func TestParseAmount(t *testing.T) {
	units, err := ParseAmount("1.25", 6)
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if units != 1_250_000 {
		t.Errorf("Expected 1250000 units, got %d", units)
	}

	units, err = ParseAmount("100", 0)
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if units != 100 {
		t.Errorf("Expected 100 units, got %d", units)
	}

	if _, err := ParseAmount("0.1234567", 6); err == nil {
		t.Errorf("Expected error for excess precision")
	}
	if _, err := ParseAmount("not-a-number", 6); err == nil {
		t.Errorf("Expected error for garbage input")
	}
	if _, err := ParseAmount("99999999999999999999", 6); err == nil {
		t.Errorf("Expected error for out-of-range amount")
	}

	// Negative amounts parse; rejecting them is the ledger's job.
	units, err = ParseAmount("-2.5", 2)
	if err != nil {
		t.Fatalf("ParseAmount failed: %v", err)
	}
	if units != -250 {
		t.Errorf("Expected -250 units, got %d", units)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(1_250_000, 6); got != "1.25" {
		t.Errorf("Expected 1.25, got %s", got)
	}
	if got := FormatAmount(0, 6); got != "0" {
		t.Errorf("Expected 0, got %s", got)
	}
	if got := FormatAmount(42, 0); got != "42" {
		t.Errorf("Expected 42, got %s", got)
	}
}

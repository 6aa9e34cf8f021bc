package common

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGenesisFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("Failed to write genesis file: %v", err)
	}
	return path
}

func TestLoadGenesis(t *testing.T) {
	path := writeGenesisFile(t, `
token:
  symbol: TOK
  decimals: 6
allocations:
  - account: alice
    amount: "1000"
  - account: bob
    amount: "250.5"
`)

	genesis, err := LoadGenesis(path)
	if err != nil {
		t.Fatalf("LoadGenesis failed: %v", err)
	}

	if genesis.Token.Symbol != "TOK" || genesis.Token.Decimals != 6 {
		t.Errorf("Unexpected token config: %+v", genesis.Token)
	}
	if len(genesis.Allocations) != 2 {
		t.Fatalf("Expected 2 allocations, got %d", len(genesis.Allocations))
	}
	if genesis.Allocations[1].Account != "bob" || genesis.Allocations[1].Amount != "250.5" {
		t.Errorf("Unexpected allocation: %+v", genesis.Allocations[1])
	}
}

func TestLoadGenesis_Validation(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"missing symbol", "token:\n  decimals: 6\n"},
		{"decimals out of range", "token:\n  symbol: TOK\n  decimals: 19\n"},
		{"allocation missing account", "token:\n  symbol: TOK\n  decimals: 6\nallocations:\n  - amount: \"10\"\n"},
		{"allocation missing amount", "token:\n  symbol: TOK\n  decimals: 6\nallocations:\n  - account: alice\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeGenesisFile(t, tc.contents)
			if _, err := LoadGenesis(path); err == nil {
				t.Errorf("Expected validation error for %s", tc.name)
			}
		})
	}
}

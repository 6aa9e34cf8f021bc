package models

import "time"

// Config represents the application configuration
type Config struct {
	Ledger  LedgerConfig
	Journal JournalConfig
}

// LedgerConfig holds the ledger core settings
type LedgerConfig struct {
	MintAuthority string
	GenesisFile   string
}

// JournalConfig holds audit journal database settings
type JournalConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
	EventBufferSize int
}

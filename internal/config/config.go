/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"token-ledger-go/internal/models"
)

func Load() (*models.Config, error) {
	mintAuthority := getEnvString("LEDGER_MINT_AUTHORITY", "")
	if mintAuthority == "" {
		return nil, fmt.Errorf("LEDGER_MINT_AUTHORITY must be set")
	}

	connMaxLifetime, err := getEnvDuration("JOURNAL_CONN_MAX_LIFETIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	connMaxIdleTime, err := getEnvDuration("JOURNAL_CONN_MAX_IDLE_TIME", 30*time.Second)
	if err != nil {
		return nil, err
	}

	pingTimeout, err := getEnvDuration("JOURNAL_PING_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	return &models.Config{
		Ledger: models.LedgerConfig{
			MintAuthority: mintAuthority,
			GenesisFile:   getEnvString("LEDGER_GENESIS_FILE", "genesis.yaml"),
		},
		Journal: models.JournalConfig{
			Path:            getEnvString("JOURNAL_PATH", "ledger.db"),
			MaxOpenConns:    getEnvInt("JOURNAL_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("JOURNAL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: connMaxLifetime,
			ConnMaxIdleTime: connMaxIdleTime,
			PingTimeout:     pingTimeout,
			EventBufferSize: getEnvInt("JOURNAL_EVENT_BUFFER_SIZE", 1024),
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	if value := os.Getenv(key); value != "" {
		duration, err := time.ParseDuration(value)
		if err != nil {
			return 0, fmt.Errorf("invalid duration for %s: %q (%w)", key, value, err)
		}
		return duration, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

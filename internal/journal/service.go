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

package journal

import (
	"context"
	"database/sql"
	"fmt"

	"token-ledger-go/internal/models"
	"token-ledger-go/internal/store"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Compile-time check: *Service must satisfy store.EventSink.
var _ store.EventSink = (*Service)(nil)

// Service is the durable audit journal. Every successful ledger mutation is
// appended as one event row; the rows carry resulting balances, so the
// journal doubles as the recovery source for rebuilding the in-memory
// ledger at startup.
type Service struct {
	db       *sql.DB
	events   chan store.Event
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewService(ctx context.Context, cfg models.JournalConfig) (*Service, error) {
	// Validate configuration
	if cfg.Path == "" {
		return nil, fmt.Errorf("journal path cannot be empty")
	}
	if cfg.MaxOpenConns <= 0 {
		return nil, fmt.Errorf("max open connections must be positive, got %d", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns < 0 {
		return nil, fmt.Errorf("max idle connections cannot be negative, got %d", cfg.MaxIdleConns)
	}
	if cfg.PingTimeout <= 0 {
		return nil, fmt.Errorf("ping timeout must be positive, got %v", cfg.PingTimeout)
	}
	if cfg.EventBufferSize <= 0 {
		return nil, fmt.Errorf("event buffer size must be positive, got %d", cfg.EventBufferSize)
	}

	zap.L().Info("Opening journal database", zap.String("file", cfg.Path))
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=1000")
	if err != nil {
		return nil, fmt.Errorf("unable to open journal database: %w", err)
	}

	// Set connection timeouts and limits
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("unable to ping journal database: %w", err)
	}

	service := &Service{
		db:       db,
		events:   make(chan store.Event, cfg.EventBufferSize),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
	if err := service.initSchema(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, closeErr
		}
		return nil, fmt.Errorf("unable to initialize journal schema: %w", err)
	}

	zap.L().Info("Journal service initialized successfully")
	return service, nil
}

func (s *Service) initSchema() error {
	schema := `
	-- Audit trail of successful ledger mutations (append-only)
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		operation TEXT NOT NULL,
		caller TEXT NOT NULL,
		recipient TEXT NOT NULL,
		amount INTEGER NOT NULL,
		caller_balance INTEGER NOT NULL,
		recipient_balance INTEGER NOT NULL,
		total_supply INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_events_caller ON events(caller);
	CREATE INDEX IF NOT EXISTS idx_events_recipient ON events(recipient);
	CREATE INDEX IF NOT EXISTS idx_events_operation ON events(operation);
	CREATE INDEX IF NOT EXISTS idx_events_created_at ON events(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Start begins the background writer that drains the event buffer.
func (s *Service) Start(ctx context.Context) {
	go s.writeLoop(ctx)
	zap.L().Info("Journal writer started")
}

// Stop flushes buffered events and stops the background writer.
func (s *Service) Stop() {
	zap.L().Info("Stopping journal writer")
	close(s.stopChan)
	<-s.doneChan
	zap.L().Info("Journal writer stopped")
}

func (s *Service) Close() {
	if err := s.db.Close(); err != nil {
		zap.L().Warn("Failed to close journal database", zap.Error(err))
	}
}

// Emit enqueues an event for persistence. It never blocks: when the buffer
// is full the event is dropped with a warning, since a stalled audit trail
// must not stall the ledger itself.
func (s *Service) Emit(event store.Event) {
	select {
	case s.events <- event:
	default:
		zap.L().Warn("Journal buffer full, dropping event",
			zap.String("operation", event.Operation),
			zap.String("caller", string(event.Caller)),
			zap.String("recipient", string(event.Recipient)),
			zap.Int64("amount", event.Amount))
	}
}

func (s *Service) writeLoop(ctx context.Context) {
	defer close(s.doneChan)

	for {
		select {
		case event := <-s.events:
			if err := s.Append(ctx, event); err != nil {
				zap.L().Error("Failed to append event", zap.Error(err))
			}
		case <-s.stopChan:
			s.drain(ctx)
			return
		case <-ctx.Done():
			return
		}
	}
}

// drain persists whatever is still buffered at shutdown.
func (s *Service) drain(ctx context.Context) {
	for {
		select {
		case event := <-s.events:
			if err := s.Append(ctx, event); err != nil {
				zap.L().Error("Failed to append event during drain", zap.Error(err))
			}
		default:
			return
		}
	}
}

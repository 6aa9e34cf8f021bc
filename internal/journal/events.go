package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"token-ledger-go/internal/models"
	"token-ledger-go/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Append writes one event row synchronously.
func (s *Service) Append(ctx context.Context, event store.Event) error {
	eventId := uuid.New().String()

	_, err := s.db.ExecContext(ctx, queryInsertEvent,
		eventId, event.Operation, string(event.Caller), string(event.Recipient), event.Amount,
		event.CallerBalance, event.RecipientBalance, event.TotalSupply, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	zap.L().Debug("Event journaled",
		zap.String("event_id", eventId),
		zap.String("operation", event.Operation),
		zap.String("caller", string(event.Caller)),
		zap.String("recipient", string(event.Recipient)),
		zap.Int64("amount", event.Amount))
	return nil
}

// Replay rebuilds the balance mapping and total supply from the journal by
// applying the recorded resulting balances in insertion order.
func (s *Service) Replay(ctx context.Context) (map[store.AccountID]int64, int64, error) {
	rows, err := s.db.QueryContext(ctx, queryGetAllEvents)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read events for replay: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	balances := make(map[store.AccountID]int64)
	var total int64
	var count int

	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}

		balances[store.AccountID(record.Caller)] = record.CallerBalance
		balances[store.AccountID(record.Recipient)] = record.RecipientBalance
		total = record.TotalSupply
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating event rows: %w", err)
	}

	zap.L().Info("Journal replay complete",
		zap.Int("events", count),
		zap.Int("accounts", len(balances)),
		zap.Int64("total_supply", total))
	return balances, total, nil
}

// AccountHistory returns paginated events naming the account as caller or
// recipient, most recent first.
func (s *Service) AccountHistory(ctx context.Context, account store.AccountID, limit, offset int) ([]models.EventRecord, error) {
	zap.L().Debug("Getting account history",
		zap.String("account", string(account)),
		zap.Int("limit", limit),
		zap.Int("offset", offset))

	rows, err := s.db.QueryContext(ctx, queryGetAccountHistory, string(account), string(account), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get account history: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Warn("Failed to close rows", zap.Error(err))
		}
	}(rows)

	var records []models.EventRecord
	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return records, nil
}

// Reconcile verifies that the live total supply matches the sum of all
// minted amounts in the journal. Transfers net out to zero by construction,
// so minted supply is the whole story.
func (s *Service) Reconcile(ctx context.Context, liveTotalSupply int64) error {
	var mintedSupply int64
	if err := s.db.QueryRowContext(ctx, querySumMinted).Scan(&mintedSupply); err != nil {
		return fmt.Errorf("failed to calculate minted supply: %w", err)
	}

	if mintedSupply != liveTotalSupply {
		zap.L().Error("Supply reconciliation failed",
			zap.Int64("live_total_supply", liveTotalSupply),
			zap.Int64("journal_minted_supply", mintedSupply),
			zap.Int64("difference", liveTotalSupply-mintedSupply))
		return fmt.Errorf("supply mismatch: live=%d, journal=%d", liveTotalSupply, mintedSupply)
	}

	zap.L().Info("Supply reconciliation successful", zap.Int64("total_supply", liveTotalSupply))
	return nil
}

// MostRecentEventTime returns the timestamp of the latest journaled event,
// or the zero time if the journal is empty.
func (s *Service) MostRecentEventTime(ctx context.Context) (time.Time, error) {
	var timestampStr sql.NullString
	if err := s.db.QueryRowContext(ctx, queryMostRecentEventTime).Scan(&timestampStr); err != nil {
		return time.Time{}, fmt.Errorf("failed to get most recent event time: %w", err)
	}

	if !timestampStr.Valid || timestampStr.String == "" {
		return time.Time{}, nil
	}

	// SQLite returns aggregated timestamps as text; try its native format
	// first, then RFC3339 variants.
	for _, layout := range []string{
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05-07:00",
		time.RFC3339Nano,
		time.RFC3339,
	} {
		if parsed, err := time.Parse(layout, timestampStr.String); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse timestamp %q", timestampStr.String)
}

func scanEvent(rows *sql.Rows) (models.EventRecord, error) {
	var record models.EventRecord
	err := rows.Scan(&record.Id, &record.Operation, &record.Caller, &record.Recipient,
		&record.Amount, &record.CallerBalance, &record.RecipientBalance,
		&record.TotalSupply, &record.CreatedAt)
	if err != nil {
		return models.EventRecord{}, fmt.Errorf("failed to scan event: %w", err)
	}
	return record, nil
}

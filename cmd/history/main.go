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

package main

import (
	"context"
	"flag"
	"fmt"

	"token-ledger-go/internal/common"
	"token-ledger-go/internal/config"
	"token-ledger-go/internal/models"
	"token-ledger-go/internal/store"

	"go.uber.org/zap"
)

func formatEventId(eventId string) string {
	if len(eventId) > 8 {
		return eventId[:8] + "..."
	}
	return eventId
}

func printEvent(record models.EventRecord, decimals int32, symbol string, isLast bool) {
	direction := fmt.Sprintf("%s -> %s", record.Caller, record.Recipient)
	if record.Operation == store.OpMint {
		direction = fmt.Sprintf("mint -> %s", record.Recipient)
	}

	fmt.Printf("%s %-10s %-40s %15s %s (supply: %s, id: %s, at: %s)\n",
		common.BoxPrefix(isLast),
		record.Operation,
		direction,
		common.FormatAmount(record.Amount, decimals),
		symbol,
		common.FormatAmount(record.TotalSupply, decimals),
		formatEventId(record.Id),
		record.CreatedAt.Format("2006-01-02 15:04:05"))
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	accountFlag := flag.String("account", "", "Account to show history for (required)")
	limitFlag := flag.Int("limit", 20, "Maximum number of events to show")
	offsetFlag := flag.Int("offset", 0, "Number of events to skip")
	flag.Parse()

	if *accountFlag == "" {
		logger.Fatal("--account is required")
	}

	limit := *limitFlag
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := *offsetFlag
	if offset < 0 {
		offset = 0
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	genesis, err := common.LoadGenesis(cfg.Ledger.GenesisFile)
	if err != nil {
		logger.Fatal("Failed to load genesis file", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	records, err := services.Journal.AccountHistory(ctx, store.AccountID(*accountFlag), limit, offset)
	if err != nil {
		logger.Fatal("Failed to get account history", zap.Error(err))
	}

	common.PrintHeader(fmt.Sprintf("EVENT HISTORY: %s", *accountFlag), common.WideWidth)

	if len(records) == 0 {
		fmt.Println("No events recorded for this account.")
	}
	for i, record := range records {
		printEvent(record, genesis.Token.Decimals, genesis.Token.Symbol, i == len(records)-1)
	}

	common.PrintFooter(fmt.Sprintf("SUMMARY: %d events (offset %d)", len(records), offset), common.WideWidth)

	logger.Info("History query completed",
		zap.String("account", *accountFlag),
		zap.Int("events", len(records)))
}

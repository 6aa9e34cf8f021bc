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
	"sort"

	"token-ledger-go/internal/common"
	"token-ledger-go/internal/config"
	"token-ledger-go/internal/store"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	accountFlag := flag.String("account", "", "Filter by a specific account (optional)")
	flag.Parse()

	logger.Info("Starting balance query")

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

	common.PrintHeader(fmt.Sprintf("ACCOUNT BALANCE REPORT: %s", genesis.Token.Symbol), common.DefaultWidth)

	if *accountFlag != "" {
		balance := services.Ledger.BalanceOf(store.AccountID(*accountFlag))
		fmt.Printf("%s %-30s %20s %s\n", common.BoxPrefix(true), *accountFlag,
			common.FormatAmount(balance, genesis.Token.Decimals), genesis.Token.Symbol)
		common.PrintFooter("SUMMARY: 1 account queried", common.DefaultWidth)
		return
	}

	snapshot := services.Ledger.Snapshot()
	accounts := make([]store.AccountID, 0, len(snapshot))
	for account := range snapshot {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i] < accounts[j] })

	for i, account := range accounts {
		isLast := i == len(accounts)-1
		fmt.Printf("%s %-30s %20s %s\n", common.BoxPrefix(isLast), account,
			common.FormatAmount(snapshot[account], genesis.Token.Decimals), genesis.Token.Symbol)
	}

	totalSupply := common.FormatAmount(services.Ledger.TotalSupply(), genesis.Token.Decimals)
	common.PrintFooter(fmt.Sprintf("SUMMARY: %d accounts, total supply %s %s",
		len(accounts), totalSupply, genesis.Token.Symbol), common.DefaultWidth)

	logger.Info("Balance query completed",
		zap.Int("accounts", len(accounts)),
		zap.Int64("total_supply_units", services.Ledger.TotalSupply()))
}

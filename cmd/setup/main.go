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
	"fmt"

	"token-ledger-go/internal/api"
	"token-ledger-go/internal/common"
	"token-ledger-go/internal/config"
	"token-ledger-go/internal/store"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	logger.Info("Starting ledger setup")

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

	if services.Ledger.TotalSupply() != 0 {
		logger.Fatal("Ledger already initialized, refusing to re-apply genesis",
			zap.Int64("total_supply", services.Ledger.TotalSupply()))
	}

	ledgerService := api.NewLedgerService(services.Ledger)
	authority := store.AccountID(cfg.Ledger.MintAuthority)

	common.PrintHeader(fmt.Sprintf("GENESIS SETUP: %s", genesis.Token.Symbol), common.DefaultWidth)
	fmt.Printf("Mint authority: %s\n", authority)
	fmt.Printf("Journal:        %s\n", cfg.Journal.Path)

	minted := 0
	for i, allocation := range genesis.Allocations {
		units, err := common.ParseAmount(allocation.Amount, genesis.Token.Decimals)
		if err != nil {
			logger.Fatal("Invalid genesis allocation",
				zap.String("account", allocation.Account),
				zap.String("amount", allocation.Amount),
				zap.Error(err))
		}

		if err := ledgerService.Credit(ctx, authority, store.AccountID(allocation.Account), units); err != nil {
			logger.Fatal("Failed to mint genesis allocation",
				zap.String("account", allocation.Account),
				zap.String("amount", allocation.Amount),
				zap.Error(err))
		}

		isLast := i == len(genesis.Allocations)-1
		fmt.Printf("%s %-30s %15s %s\n",
			common.BoxPrefix(isLast), allocation.Account, allocation.Amount, genesis.Token.Symbol)
		minted++
	}

	totalSupply := common.FormatAmount(ledgerService.TotalSupply(), genesis.Token.Decimals)
	common.PrintFooter(fmt.Sprintf("SETUP COMPLETE: %d allocations, total supply %s %s",
		minted, totalSupply, genesis.Token.Symbol), common.DefaultWidth)

	logger.Info("Ledger setup completed",
		zap.Int("allocations", minted),
		zap.Int64("total_supply_units", ledgerService.TotalSupply()))
}

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
	"errors"
	"flag"
	"fmt"
	"os"

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

	callerFlag := flag.String("caller", os.Getenv("LEDGER_CALLER"), "Calling account (defaults to LEDGER_CALLER)")
	toFlag := flag.String("to", "", "Beneficiary account (required)")
	amountFlag := flag.String("amount", "", "Token amount to mint (required)")
	flag.Parse()

	if *toFlag == "" || *amountFlag == "" {
		logger.Fatal("All flags are required: --to, --amount")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Without an explicit caller the mint authority itself is assumed to be
	// running this tool.
	caller := store.AccountID(*callerFlag)
	if caller == "" {
		caller = store.AccountID(cfg.Ledger.MintAuthority)
	}

	genesis, err := common.LoadGenesis(cfg.Ledger.GenesisFile)
	if err != nil {
		logger.Fatal("Failed to load genesis file", zap.Error(err))
	}

	units, err := common.ParseAmount(*amountFlag, genesis.Token.Decimals)
	if err != nil {
		logger.Fatal("Invalid amount", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	ledgerService := api.NewLedgerService(services.Ledger)

	err = ledgerService.Credit(ctx, caller, store.AccountID(*toFlag), units)
	switch {
	case errors.Is(err, store.ErrUnauthorized):
		logger.Fatal("Caller does not hold mint authority",
			zap.String("caller", string(caller)),
			zap.String("mint_authority", cfg.Ledger.MintAuthority))
	case errors.Is(err, store.ErrInvalidAmount):
		logger.Fatal("Invalid amount", zap.Error(err))
	case err != nil:
		logger.Fatal("Credit failed", zap.Error(err))
	}

	common.PrintHeader("CREDIT COMPLETE", common.DefaultWidth)
	fmt.Printf("│  To:           %s\n", *toFlag)
	fmt.Printf("│  Amount:       %s %s\n", *amountFlag, genesis.Token.Symbol)
	fmt.Printf("│  New balance:  %s %s\n",
		common.FormatAmount(ledgerService.BalanceOf(store.AccountID(*toFlag)), genesis.Token.Decimals),
		genesis.Token.Symbol)
	fmt.Printf("%s Total supply: %s %s\n", common.BoxPrefix(true),
		common.FormatAmount(ledgerService.TotalSupply(), genesis.Token.Decimals), genesis.Token.Symbol)

	logger.Info("Credit completed",
		zap.String("to", *toFlag),
		zap.Int64("amount_units", units),
		zap.Int64("total_supply_units", ledgerService.TotalSupply()))
}

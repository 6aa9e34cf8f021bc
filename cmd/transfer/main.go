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

type transferRequest struct {
	from   store.AccountID
	to     store.AccountID
	amount string
}

// parseAndValidateFlags reads the transfer parameters. The sending identity
// comes from the LEDGER_CALLER environment variable (or the -from override),
// standing in for the authentication layer that would supply it in a
// networked deployment.
func parseAndValidateFlags() (*transferRequest, error) {
	fromFlag := flag.String("from", os.Getenv("LEDGER_CALLER"), "Sending account (defaults to LEDGER_CALLER)")
	toFlag := flag.String("to", "", "Recipient account (required)")
	amountFlag := flag.String("amount", "", "Token amount to transfer (required)")
	flag.Parse()

	if *fromFlag == "" {
		return nil, fmt.Errorf("sender is required: set LEDGER_CALLER or pass --from")
	}
	if *toFlag == "" || *amountFlag == "" {
		return nil, fmt.Errorf("all flags are required: --to, --amount")
	}

	return &transferRequest{
		from:   store.AccountID(*fromFlag),
		to:     store.AccountID(*toFlag),
		amount: *amountFlag,
	}, nil
}

func main() {
	ctx := context.Background()

	logger, loggerCleanup := common.InitializeLogger()
	defer loggerCleanup()

	request, err := parseAndValidateFlags()
	if err != nil {
		logger.Fatal("Invalid arguments", zap.Error(err))
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	genesis, err := common.LoadGenesis(cfg.Ledger.GenesisFile)
	if err != nil {
		logger.Fatal("Failed to load genesis file", zap.Error(err))
	}

	units, err := common.ParseAmount(request.amount, genesis.Token.Decimals)
	if err != nil {
		logger.Fatal("Invalid amount", zap.Error(err))
	}

	services, err := common.InitializeServices(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}
	defer services.Close()

	ledgerService := api.NewLedgerService(services.Ledger)

	err = ledgerService.Transfer(ctx, request.from, request.to, units)
	switch {
	case errors.Is(err, store.ErrInsufficientBalance):
		balance := common.FormatAmount(ledgerService.BalanceOf(request.from), genesis.Token.Decimals)
		logger.Fatal("Insufficient balance",
			zap.String("from", string(request.from)),
			zap.String("balance", balance),
			zap.String("requested", request.amount))
	case errors.Is(err, store.ErrInvalidAmount):
		logger.Fatal("Invalid amount", zap.Error(err))
	case err != nil:
		logger.Fatal("Transfer failed", zap.Error(err))
	}

	common.PrintHeader("TRANSFER COMPLETE", common.DefaultWidth)
	fmt.Printf("│  From:   %s\n", request.from)
	fmt.Printf("│  To:     %s\n", request.to)
	fmt.Printf("│  Amount: %s %s\n", request.amount, genesis.Token.Symbol)
	common.PrintBoxSeparator(common.DefaultWidth - 2)
	fmt.Printf("│  %-30s %15s %s\n", request.from,
		common.FormatAmount(ledgerService.BalanceOf(request.from), genesis.Token.Decimals), genesis.Token.Symbol)
	fmt.Printf("%s %-30s %15s %s\n", common.BoxPrefix(true), request.to,
		common.FormatAmount(ledgerService.BalanceOf(request.to), genesis.Token.Decimals), genesis.Token.Symbol)

	logger.Info("Transfer completed",
		zap.String("from", string(request.from)),
		zap.String("to", string(request.to)),
		zap.Int64("amount_units", units))
}

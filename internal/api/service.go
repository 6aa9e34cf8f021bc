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

package api

import (
	"context"
	"fmt"

	"token-ledger-go/internal/ledger"
	"token-ledger-go/internal/store"

	"go.uber.org/zap"
)

// LedgerService is the boundary between external callers and the ledger
// core. The caller identity it threads through is the verified identity
// supplied by whatever authenticated the request; it is never taken from
// request payload.
type LedgerService struct {
	ledger *ledger.Ledger
}

func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{
		ledger: l,
	}
}

// Transfer moves amount (base units) from caller to recipient.
func (s *LedgerService) Transfer(ctx context.Context, caller, to store.AccountID, amount int64) error {
	if caller == "" || to == "" {
		return fmt.Errorf("caller and recipient are required")
	}

	if err := s.ledger.Transfer(ctx, caller, to, amount); err != nil {
		zap.L().Error("Transfer failed",
			zap.String("caller", string(caller)),
			zap.String("to", string(to)),
			zap.Int64("amount", amount),
			zap.Error(err))
		return err
	}
	return nil
}

// Credit mints amount (base units) to the recipient on behalf of caller.
func (s *LedgerService) Credit(ctx context.Context, caller, to store.AccountID, amount int64) error {
	if caller == "" || to == "" {
		return fmt.Errorf("caller and recipient are required")
	}

	if err := s.ledger.Credit(ctx, caller, to, amount); err != nil {
		zap.L().Error("Credit failed",
			zap.String("caller", string(caller)),
			zap.String("to", string(to)),
			zap.Int64("amount", amount),
			zap.Error(err))
		return err
	}
	return nil
}

// BalanceOf returns the balance for an account in base units. Unknown
// accounts report zero.
func (s *LedgerService) BalanceOf(owner store.AccountID) int64 {
	return s.ledger.BalanceOf(owner)
}

// TotalSupply returns the sum of all balances in base units.
func (s *LedgerService) TotalSupply() int64 {
	return s.ledger.TotalSupply()
}
